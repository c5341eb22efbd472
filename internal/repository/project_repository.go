package repository

import (
	"context"

	"staffing/internal/database"
	"staffing/internal/domain/staffing"

	"github.com/google/uuid"
)

type ProjectRepository interface {
	List(ctx context.Context) ([]staffing.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (staffing.Project, error)
	Create(ctx context.Context, p staffing.Project) error
	Update(ctx context.Context, p staffing.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListContractLinks(ctx context.Context) ([]staffing.ProjectContract, error)
}

type PostgresProjectRepository struct {
	db database.DB
}

func NewPostgresProjectRepository(db database.DB) *PostgresProjectRepository {
	return &PostgresProjectRepository{db: db}
}

func (r *PostgresProjectRepository) List(ctx context.Context) ([]staffing.Project, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, client_id, contract_id FROM projects ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]staffing.Project, 0)
	for rows.Next() {
		var p staffing.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.ClientID, &p.ContractID); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (staffing.Project, error) {
	var p staffing.Project
	err := r.db.QueryRow(ctx, `SELECT id, name, client_id, contract_id FROM projects WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &p.ClientID, &p.ContractID)
	if err != nil {
		return staffing.Project{}, ErrNotFound
	}
	return p, nil
}

func (r *PostgresProjectRepository) Create(ctx context.Context, p staffing.Project) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO projects (id, name, client_id, contract_id) VALUES ($1, $2, $3, $4)`,
		p.ID, p.Name, p.ClientID, p.ContractID,
	)
	return err
}

func (r *PostgresProjectRepository) Update(ctx context.Context, p staffing.Project) error {
	n, err := r.db.Exec(
		ctx,
		`UPDATE projects SET name = $2, client_id = $3, contract_id = $4 WHERE id = $1`,
		p.ID, p.Name, p.ClientID, p.ContractID,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresProjectRepository) ListContractLinks(ctx context.Context) ([]staffing.ProjectContract, error) {
	rows, err := r.db.Query(ctx, `SELECT project_id, contract_id FROM project_contracts`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]staffing.ProjectContract, 0)
	for rows.Next() {
		var pc staffing.ProjectContract
		if err := rows.Scan(&pc.ProjectID, &pc.ContractID); err != nil {
			return nil, err
		}
		out = append(out, pc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
