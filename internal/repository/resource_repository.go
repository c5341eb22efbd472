package repository

import (
	"context"
	"errors"

	"staffing/internal/database"
	"staffing/internal/domain/staffing"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("not found")

type ResourceRepository interface {
	List(ctx context.Context) ([]staffing.Resource, error)
	GetByID(ctx context.Context, id uuid.UUID) (staffing.Resource, error)
	Create(ctx context.Context, r staffing.Resource) error
	Update(ctx context.Context, r staffing.Resource) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresResourceRepository struct {
	db database.DB
}

func NewPostgresResourceRepository(db database.DB) *PostgresResourceRepository {
	return &PostgresResourceRepository{db: db}
}

func (r *PostgresResourceRepository) List(ctx context.Context) ([]staffing.Resource, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, email, location FROM resources ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]staffing.Resource, 0)
	for rows.Next() {
		var res staffing.Resource
		if err := rows.Scan(&res.ID, &res.Name, &res.Email, &res.Location); err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresResourceRepository) GetByID(ctx context.Context, id uuid.UUID) (staffing.Resource, error) {
	var res staffing.Resource
	err := r.db.QueryRow(ctx, `SELECT id, name, email, location FROM resources WHERE id = $1`, id).
		Scan(&res.ID, &res.Name, &res.Email, &res.Location)
	if err != nil {
		return staffing.Resource{}, ErrNotFound
	}
	return res, nil
}

func (r *PostgresResourceRepository) Create(ctx context.Context, res staffing.Resource) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO resources (id, name, email, location) VALUES ($1, $2, $3, $4)`,
		res.ID, res.Name, res.Email, res.Location,
	)
	return err
}

func (r *PostgresResourceRepository) Update(ctx context.Context, res staffing.Resource) error {
	n, err := r.db.Exec(
		ctx,
		`UPDATE resources SET name = $2, email = $3, location = $4 WHERE id = $1`,
		res.ID, res.Name, res.Email, res.Location,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresResourceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM resources WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
