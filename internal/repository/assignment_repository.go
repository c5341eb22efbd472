package repository

import (
	"context"
	"time"

	"staffing/internal/database"
	"staffing/internal/domain/staffing"

	"github.com/google/uuid"
)

type AssignmentRepository interface {
	ListAll(ctx context.Context) ([]staffing.Assignment, error)
	ListByResource(ctx context.Context, resourceID uuid.UUID) ([]staffing.Assignment, error)
	GetByID(ctx context.Context, id uuid.UUID) (staffing.Assignment, error)
	Create(ctx context.Context, a staffing.Assignment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type AllocationRepository interface {
	ListAll(ctx context.Context) (staffing.AllocationSet, error)
	ListByAssignment(ctx context.Context, assignmentID uuid.UUID) (map[string]int, error)
	PutDay(ctx context.Context, assignmentID uuid.UUID, day string, percentage int) error
	PutDays(ctx context.Context, assignmentID uuid.UUID, days map[string]int) error
}

type PostgresAssignmentRepository struct {
	db database.DB
}

func NewPostgresAssignmentRepository(db database.DB) *PostgresAssignmentRepository {
	return &PostgresAssignmentRepository{db: db}
}

func (r *PostgresAssignmentRepository) ListAll(ctx context.Context) ([]staffing.Assignment, error) {
	return r.list(ctx, `SELECT id, resource_id, project_id FROM assignments`)
}

func (r *PostgresAssignmentRepository) ListByResource(ctx context.Context, resourceID uuid.UUID) ([]staffing.Assignment, error) {
	return r.list(ctx, `SELECT id, resource_id, project_id FROM assignments WHERE resource_id = $1`, resourceID)
}

func (r *PostgresAssignmentRepository) list(ctx context.Context, query string, args ...any) ([]staffing.Assignment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]staffing.Assignment, 0)
	for rows.Next() {
		var a staffing.Assignment
		if err := rows.Scan(&a.ID, &a.ResourceID, &a.ProjectID); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresAssignmentRepository) GetByID(ctx context.Context, id uuid.UUID) (staffing.Assignment, error) {
	var a staffing.Assignment
	err := r.db.QueryRow(ctx, `SELECT id, resource_id, project_id FROM assignments WHERE id = $1`, id).
		Scan(&a.ID, &a.ResourceID, &a.ProjectID)
	if err != nil {
		return staffing.Assignment{}, ErrNotFound
	}
	return a, nil
}

func (r *PostgresAssignmentRepository) Create(ctx context.Context, a staffing.Assignment) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO assignments (id, resource_id, project_id) VALUES ($1, $2, $3)`,
		a.ID, a.ResourceID, a.ProjectID,
	)
	return err
}

// Delete removes the assignment and, through the FK cascade, every allocation
// recorded against it.
func (r *PostgresAssignmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM assignments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type PostgresAllocationRepository struct {
	db database.DB
}

func NewPostgresAllocationRepository(db database.DB) *PostgresAllocationRepository {
	return &PostgresAllocationRepository{db: db}
}

func (r *PostgresAllocationRepository) ListAll(ctx context.Context) (staffing.AllocationSet, error) {
	rows, err := r.db.Query(ctx, `SELECT assignment_id, day, percentage FROM allocations`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(staffing.AllocationSet)
	for rows.Next() {
		var id uuid.UUID
		var day time.Time
		var pct int16
		if err := rows.Scan(&id, &day, &pct); err != nil {
			return nil, err
		}
		byDay := out[id]
		if byDay == nil {
			byDay = make(map[string]int)
			out[id] = byDay
		}
		byDay[day.Format(staffing.DayFormat)] = int(pct)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresAllocationRepository) ListByAssignment(ctx context.Context, assignmentID uuid.UUID) (map[string]int, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT day, percentage FROM allocations WHERE assignment_id = $1 ORDER BY day ASC`,
		assignmentID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var day time.Time
		var pct int16
		if err := rows.Scan(&day, &pct); err != nil {
			return nil, err
		}
		out[day.Format(staffing.DayFormat)] = int(pct)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresAllocationRepository) PutDay(ctx context.Context, assignmentID uuid.UUID, day string, percentage int) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO allocations (assignment_id, day, percentage) VALUES ($1, $2, $3)
		 ON CONFLICT (assignment_id, day) DO UPDATE SET percentage = EXCLUDED.percentage`,
		assignmentID, day, int16(percentage),
	)
	return err
}

// PutDays writes a bulk range in one transaction so a partial write never
// becomes visible.
func (r *PostgresAllocationRepository) PutDays(ctx context.Context, assignmentID uuid.UUID, days map[string]int) error {
	if len(days) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for day, pct := range days {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO allocations (assignment_id, day, percentage) VALUES ($1, $2, $3)
			 ON CONFLICT (assignment_id, day) DO UPDATE SET percentage = EXCLUDED.percentage`,
			assignmentID, day, int16(pct),
		); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
