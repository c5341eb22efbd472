package repository

import (
	"context"

	"staffing/internal/database"
	"staffing/internal/domain/staffing"

	"github.com/google/uuid"
)

type ResourceSkillRepository interface {
	ListAll(ctx context.Context) ([]staffing.ResourceSkill, error)
	ListByResource(ctx context.Context, resourceID uuid.UUID) ([]staffing.ResourceSkill, error)
	Upsert(ctx context.Context, rs staffing.ResourceSkill) error
	Delete(ctx context.Context, resourceID, skillID uuid.UUID) error
}

type ProjectSkillRepository interface {
	ListAll(ctx context.Context) ([]staffing.ProjectSkill, error)
	Put(ctx context.Context, ps staffing.ProjectSkill) error
	Delete(ctx context.Context, projectID, skillID uuid.UUID) error
}

type PostgresResourceSkillRepository struct {
	db database.DB
}

func NewPostgresResourceSkillRepository(db database.DB) *PostgresResourceSkillRepository {
	return &PostgresResourceSkillRepository{db: db}
}

func (r *PostgresResourceSkillRepository) ListAll(ctx context.Context) ([]staffing.ResourceSkill, error) {
	return r.list(ctx, `SELECT resource_id, skill_id, level, acquired_at, expires_at FROM resource_skills`)
}

func (r *PostgresResourceSkillRepository) ListByResource(ctx context.Context, resourceID uuid.UUID) ([]staffing.ResourceSkill, error) {
	return r.list(
		ctx,
		`SELECT resource_id, skill_id, level, acquired_at, expires_at FROM resource_skills WHERE resource_id = $1`,
		resourceID,
	)
}

func (r *PostgresResourceSkillRepository) list(ctx context.Context, query string, args ...any) ([]staffing.ResourceSkill, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]staffing.ResourceSkill, 0)
	for rows.Next() {
		var rs staffing.ResourceSkill
		var level int16
		if err := rows.Scan(&rs.ResourceID, &rs.SkillID, &level, &rs.AcquiredAt, &rs.ExpiresAt); err != nil {
			return nil, err
		}
		rs.Level = staffing.Level(level)
		out = append(out, rs)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresResourceSkillRepository) Upsert(ctx context.Context, rs staffing.ResourceSkill) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO resource_skills (resource_id, skill_id, level, acquired_at, expires_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (resource_id, skill_id)
		 DO UPDATE SET level = EXCLUDED.level, acquired_at = EXCLUDED.acquired_at, expires_at = EXCLUDED.expires_at`,
		rs.ResourceID, rs.SkillID, int16(rs.Level), rs.AcquiredAt, rs.ExpiresAt,
	)
	return err
}

func (r *PostgresResourceSkillRepository) Delete(ctx context.Context, resourceID, skillID uuid.UUID) error {
	n, err := r.db.Exec(
		ctx,
		`DELETE FROM resource_skills WHERE resource_id = $1 AND skill_id = $2`,
		resourceID, skillID,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type PostgresProjectSkillRepository struct {
	db database.DB
}

func NewPostgresProjectSkillRepository(db database.DB) *PostgresProjectSkillRepository {
	return &PostgresProjectSkillRepository{db: db}
}

func (r *PostgresProjectSkillRepository) ListAll(ctx context.Context) ([]staffing.ProjectSkill, error) {
	rows, err := r.db.Query(ctx, `SELECT project_id, skill_id FROM project_skills`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]staffing.ProjectSkill, 0)
	for rows.Next() {
		var ps staffing.ProjectSkill
		if err := rows.Scan(&ps.ProjectID, &ps.SkillID); err != nil {
			return nil, err
		}
		out = append(out, ps)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresProjectSkillRepository) Put(ctx context.Context, ps staffing.ProjectSkill) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO project_skills (project_id, skill_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		ps.ProjectID, ps.SkillID,
	)
	return err
}

func (r *PostgresProjectSkillRepository) Delete(ctx context.Context, projectID, skillID uuid.UUID) error {
	n, err := r.db.Exec(
		ctx,
		`DELETE FROM project_skills WHERE project_id = $1 AND skill_id = $2`,
		projectID, skillID,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
