package repository

import (
	"context"
	"time"

	"staffing/internal/database"
)

type AuditEntry struct {
	ID       int64
	Actor    string
	Action   string
	Entity   string
	EntityID string
	At       time.Time
}

type AuditRepository interface {
	Append(ctx context.Context, e AuditEntry) error
	List(ctx context.Context, limit, offset int) ([]AuditEntry, error)
}

type PostgresAuditRepository struct {
	db database.DB
}

func NewPostgresAuditRepository(db database.DB) *PostgresAuditRepository {
	return &PostgresAuditRepository{db: db}
}

func (r *PostgresAuditRepository) Append(ctx context.Context, e AuditEntry) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO audit_log (actor, action, entity, entity_id) VALUES ($1, $2, $3, $4)`,
		e.Actor, e.Action, e.Entity, e.EntityID,
	)
	return err
}

func (r *PostgresAuditRepository) List(ctx context.Context, limit, offset int) ([]AuditEntry, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, actor, action, entity, entity_id, at FROM audit_log ORDER BY at DESC, id DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]AuditEntry, 0, limit)
	for rows.Next() {
		var e AuditEntry
		if err := rows.Scan(&e.ID, &e.Actor, &e.Action, &e.Entity, &e.EntityID, &e.At); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
