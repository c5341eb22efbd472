package repository

import (
	"context"
	"time"

	"staffing/internal/database"
	"staffing/internal/domain/staffing"

	"github.com/google/uuid"
)

type LeaveRepository interface {
	List(ctx context.Context) ([]staffing.LeaveRequest, error)
	GetByID(ctx context.Context, id uuid.UUID) (staffing.LeaveRequest, error)
	Create(ctx context.Context, lr staffing.LeaveRequest) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status staffing.LeaveStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresLeaveRepository struct {
	db database.DB
}

func NewPostgresLeaveRepository(db database.DB) *PostgresLeaveRepository {
	return &PostgresLeaveRepository{db: db}
}

const leaveColumns = `id, resource_id, start_day, end_day, kind, status, created_at`

func (r *PostgresLeaveRepository) List(ctx context.Context) ([]staffing.LeaveRequest, error) {
	rows, err := r.db.Query(ctx, `SELECT `+leaveColumns+` FROM leave_requests ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]staffing.LeaveRequest, 0)
	for rows.Next() {
		lr, err := scanLeave(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, lr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresLeaveRepository) GetByID(ctx context.Context, id uuid.UUID) (staffing.LeaveRequest, error) {
	row := r.db.QueryRow(ctx, `SELECT `+leaveColumns+` FROM leave_requests WHERE id = $1`, id)
	lr, err := scanLeave(row)
	if err != nil {
		return staffing.LeaveRequest{}, ErrNotFound
	}
	return lr, nil
}

func (r *PostgresLeaveRepository) Create(ctx context.Context, lr staffing.LeaveRequest) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO leave_requests (id, resource_id, start_day, end_day, kind, status)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		lr.ID, lr.ResourceID, lr.StartDay, lr.EndDay, lr.Kind, string(lr.Status),
	)
	return err
}

func (r *PostgresLeaveRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status staffing.LeaveStatus) error {
	n, err := r.db.Exec(ctx, `UPDATE leave_requests SET status = $2 WHERE id = $1`, id, string(status))
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresLeaveRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM leave_requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanLeave(row database.Row) (staffing.LeaveRequest, error) {
	var lr staffing.LeaveRequest
	var start, end time.Time
	var status string
	if err := row.Scan(&lr.ID, &lr.ResourceID, &start, &end, &lr.Kind, &status, &lr.CreatedAt); err != nil {
		return staffing.LeaveRequest{}, err
	}
	lr.StartDay = start.Format(staffing.DayFormat)
	lr.EndDay = end.Format(staffing.DayFormat)
	lr.Status = staffing.LeaveStatus(status)
	return lr, nil
}
