package repository

import (
	"context"
	"time"

	"staffing/internal/database"
	"staffing/internal/domain/staffing"
)

type HolidayRepository interface {
	List(ctx context.Context) ([]staffing.Holiday, error)
	Create(ctx context.Context, h staffing.Holiday) error
	Delete(ctx context.Context, h staffing.Holiday) error
}

type PostgresHolidayRepository struct {
	db database.DB
}

func NewPostgresHolidayRepository(db database.DB) *PostgresHolidayRepository {
	return &PostgresHolidayRepository{db: db}
}

func (r *PostgresHolidayRepository) List(ctx context.Context) ([]staffing.Holiday, error) {
	rows, err := r.db.Query(ctx, `SELECT day, location FROM holidays ORDER BY day ASC, location ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]staffing.Holiday, 0)
	for rows.Next() {
		var day time.Time
		var h staffing.Holiday
		if err := rows.Scan(&day, &h.Location); err != nil {
			return nil, err
		}
		h.Day = day.Format(staffing.DayFormat)
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresHolidayRepository) Create(ctx context.Context, h staffing.Holiday) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO holidays (day, location) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		h.Day, h.Location,
	)
	return err
}

func (r *PostgresHolidayRepository) Delete(ctx context.Context, h staffing.Holiday) error {
	n, err := r.db.Exec(ctx, `DELETE FROM holidays WHERE day = $1 AND location = $2`, h.Day, h.Location)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
