package repository

import (
	"context"

	"staffing/internal/database"
	"staffing/internal/domain/staffing"

	"github.com/google/uuid"
)

type ClientRepository interface {
	List(ctx context.Context) ([]staffing.Client, error)
	Create(ctx context.Context, c staffing.Client) error
	Update(ctx context.Context, c staffing.Client) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ContractRepository interface {
	List(ctx context.Context) ([]staffing.Contract, error)
	Create(ctx context.Context, c staffing.Contract) error
	Update(ctx context.Context, c staffing.Contract) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresClientRepository struct {
	db database.DB
}

func NewPostgresClientRepository(db database.DB) *PostgresClientRepository {
	return &PostgresClientRepository{db: db}
}

func (r *PostgresClientRepository) List(ctx context.Context) ([]staffing.Client, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM clients ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]staffing.Client, 0)
	for rows.Next() {
		var c staffing.Client
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresClientRepository) Create(ctx context.Context, c staffing.Client) error {
	_, err := r.db.Exec(ctx, `INSERT INTO clients (id, name) VALUES ($1, $2)`, c.ID, c.Name)
	return err
}

func (r *PostgresClientRepository) Update(ctx context.Context, c staffing.Client) error {
	n, err := r.db.Exec(ctx, `UPDATE clients SET name = $2 WHERE id = $1`, c.ID, c.Name)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type PostgresContractRepository struct {
	db database.DB
}

func NewPostgresContractRepository(db database.DB) *PostgresContractRepository {
	return &PostgresContractRepository{db: db}
}

func (r *PostgresContractRepository) List(ctx context.Context) ([]staffing.Contract, error) {
	rows, err := r.db.Query(ctx, `SELECT id, client_id, name FROM contracts ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]staffing.Contract, 0)
	for rows.Next() {
		var c staffing.Contract
		if err := rows.Scan(&c.ID, &c.ClientID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresContractRepository) Create(ctx context.Context, c staffing.Contract) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO contracts (id, client_id, name) VALUES ($1, $2, $3)`,
		c.ID, c.ClientID, c.Name,
	)
	return err
}

func (r *PostgresContractRepository) Update(ctx context.Context, c staffing.Contract) error {
	n, err := r.db.Exec(
		ctx,
		`UPDATE contracts SET client_id = $2, name = $3 WHERE id = $1`,
		c.ID, c.ClientID, c.Name,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresContractRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM contracts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
