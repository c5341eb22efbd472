package repository

import (
	"context"

	"staffing/internal/database"
	"staffing/internal/domain/staffing"
)

type ThresholdRepository interface {
	Get(ctx context.Context) (staffing.Thresholds, error)
	Put(ctx context.Context, th staffing.Thresholds) error
}

type PostgresThresholdRepository struct {
	db database.DB
}

func NewPostgresThresholdRepository(db database.DB) *PostgresThresholdRepository {
	return &PostgresThresholdRepository{db: db}
}

// Get loads the configured cutoffs. Levels missing from the table keep the
// defaults, so a half-seeded table still yields a usable set.
func (r *PostgresThresholdRepository) Get(ctx context.Context) (staffing.Thresholds, error) {
	th := staffing.DefaultThresholds()

	rows, err := r.db.Query(ctx, `SELECT level, min_days FROM skill_thresholds ORDER BY level ASC`)
	if err != nil {
		return staffing.Thresholds{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var level int16
		var minDays float64
		if err := rows.Scan(&level, &minDays); err != nil {
			return staffing.Thresholds{}, err
		}
		switch staffing.Level(level) {
		case staffing.LevelNovice:
			th.Novice = minDays
		case staffing.LevelJunior:
			th.Junior = minDays
		case staffing.LevelMiddle:
			th.Middle = minDays
		case staffing.LevelSenior:
			th.Senior = minDays
		case staffing.LevelExpert:
			th.Expert = minDays
		}
	}
	if err := rows.Err(); err != nil {
		return staffing.Thresholds{}, err
	}
	return th, nil
}

func (r *PostgresThresholdRepository) Put(ctx context.Context, th staffing.Thresholds) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, l := range []staffing.Level{
		staffing.LevelNovice,
		staffing.LevelJunior,
		staffing.LevelMiddle,
		staffing.LevelSenior,
		staffing.LevelExpert,
	} {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO skill_thresholds (level, min_days) VALUES ($1, $2)
			 ON CONFLICT (level) DO UPDATE SET min_days = EXCLUDED.min_days`,
			int16(l), th.MinDays(l),
		); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
