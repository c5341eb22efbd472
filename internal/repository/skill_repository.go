package repository

import (
	"context"

	"staffing/internal/database"
	"staffing/internal/domain/staffing"

	"github.com/google/uuid"
)

type SkillRepository interface {
	List(ctx context.Context) ([]staffing.Skill, error)
	Create(ctx context.Context, s staffing.Skill) error
	Update(ctx context.Context, s staffing.Skill) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

func (r *PostgresSkillRepository) List(ctx context.Context) ([]staffing.Skill, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, is_certification FROM skills ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]staffing.Skill, 0)
	for rows.Next() {
		var s staffing.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.IsCertification); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSkillRepository) Create(ctx context.Context, s staffing.Skill) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO skills (id, name, is_certification) VALUES ($1, $2, $3)`,
		s.ID, s.Name, s.IsCertification,
	)
	return err
}

func (r *PostgresSkillRepository) Update(ctx context.Context, s staffing.Skill) error {
	n, err := r.db.Exec(
		ctx,
		`UPDATE skills SET name = $2, is_certification = $3 WHERE id = $1`,
		s.ID, s.Name, s.IsCertification,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the skill; resource_skills and project_skills rows go with
// it through the FK cascade.
func (r *PostgresSkillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
