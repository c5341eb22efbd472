package seeder

import (
	"context"
	"fmt"

	"staffing/internal/database"
	"staffing/internal/domain/staffing"
)

// ThresholdsSeeder installs the default skill-level cutoffs when none are
// configured yet. Admin edits are never overwritten.
type ThresholdsSeeder struct{}

func (ThresholdsSeeder) Name() string { return "skill_thresholds" }

func (ThresholdsSeeder) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}

	var count int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM skill_thresholds`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	th := staffing.DefaultThresholds()
	for _, l := range []staffing.Level{
		staffing.LevelNovice,
		staffing.LevelJunior,
		staffing.LevelMiddle,
		staffing.LevelSenior,
		staffing.LevelExpert,
	} {
		if _, err := db.Exec(
			ctx,
			`INSERT INTO skill_thresholds (level, min_days) VALUES ($1, $2) ON CONFLICT (level) DO NOTHING`,
			int(l), th.MinDays(l),
		); err != nil {
			return err
		}
	}
	return nil
}
