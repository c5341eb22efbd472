package seeder

import (
	"context"
	"fmt"

	"staffing/internal/database"
)

// SchemaSeeder bootstraps the staffing tables. Every statement is idempotent
// so the seeder can run on each start.
type SchemaSeeder struct{}

func (SchemaSeeder) Name() string { return "schema" }

func (SchemaSeeder) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS resources (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL DEFAULT '',
			location TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS clients (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS contracts (
			id UUID PRIMARY KEY,
			client_id UUID NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
			name TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS projects (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			client_id UUID NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
			contract_id UUID NULL REFERENCES contracts(id) ON DELETE SET NULL
		)`,
		`CREATE TABLE IF NOT EXISTS project_contracts (
			project_id UUID NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
			contract_id UUID NOT NULL REFERENCES contracts(id) ON DELETE CASCADE,
			PRIMARY KEY (project_id, contract_id)
		)`,
		`CREATE TABLE IF NOT EXISTS skills (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			is_certification BOOLEAN NOT NULL DEFAULT FALSE
		)`,
		`CREATE TABLE IF NOT EXISTS resource_skills (
			resource_id UUID NOT NULL REFERENCES resources(id) ON DELETE CASCADE,
			skill_id UUID NOT NULL REFERENCES skills(id) ON DELETE CASCADE,
			level SMALLINT NOT NULL DEFAULT 1,
			acquired_at DATE NULL,
			expires_at DATE NULL,
			PRIMARY KEY (resource_id, skill_id)
		)`,
		`CREATE TABLE IF NOT EXISTS project_skills (
			project_id UUID NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
			skill_id UUID NOT NULL REFERENCES skills(id) ON DELETE CASCADE,
			PRIMARY KEY (project_id, skill_id)
		)`,
		`CREATE TABLE IF NOT EXISTS assignments (
			id UUID PRIMARY KEY,
			resource_id UUID NOT NULL REFERENCES resources(id) ON DELETE CASCADE,
			project_id UUID NOT NULL REFERENCES projects(id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS allocations (
			assignment_id UUID NOT NULL REFERENCES assignments(id) ON DELETE CASCADE,
			day DATE NOT NULL,
			percentage SMALLINT NOT NULL CHECK (percentage >= 0 AND percentage <= 100),
			PRIMARY KEY (assignment_id, day)
		)`,
		`CREATE TABLE IF NOT EXISTS skill_thresholds (
			level SMALLINT PRIMARY KEY CHECK (level >= 1 AND level <= 5),
			min_days DOUBLE PRECISION NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS holidays (
			day DATE NOT NULL,
			location TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (day, location)
		)`,
		`CREATE TABLE IF NOT EXISTS leave_requests (
			id UUID PRIMARY KEY,
			resource_id UUID NOT NULL REFERENCES resources(id) ON DELETE CASCADE,
			start_day DATE NOT NULL,
			end_day DATE NOT NULL,
			kind TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'PENDING',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS audit_log (
			id BIGSERIAL PRIMARY KEY,
			actor TEXT NOT NULL DEFAULT '',
			action TEXT NOT NULL,
			entity TEXT NOT NULL,
			entity_id TEXT NOT NULL DEFAULT '',
			at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_assignments_resource ON assignments(resource_id)`,
		`CREATE INDEX IF NOT EXISTS idx_assignments_project ON assignments(project_id)`,
		`CREATE INDEX IF NOT EXISTS idx_allocations_day ON allocations(day)`,
		`CREATE INDEX IF NOT EXISTS idx_audit_log_at ON audit_log(at DESC)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema bootstrap: %w", err)
		}
	}

	if err := EnsureTableColumns(ctx, db, "allocations", "assignment_id", "day", "percentage"); err != nil {
		return err
	}
	return EnsureTableColumns(ctx, db, "skill_thresholds", "level", "min_days")
}

func EnsureTableColumns(ctx context.Context, db database.DB, table string, columns ...string) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	if table == "" {
		return fmt.Errorf("empty table")
	}
	for _, col := range columns {
		if col == "" {
			return fmt.Errorf("empty column")
		}
	}

	rows, err := db.Query(
		ctx,
		`SELECT column_name FROM information_schema.columns WHERE table_schema='public' AND table_name=$1`,
		table,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	existing := map[string]struct{}{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return err
		}
		existing[c] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, col := range columns {
		if _, ok := existing[col]; !ok {
			return fmt.Errorf("schema mismatch: missing column %s.%s", table, col)
		}
	}
	return nil
}
