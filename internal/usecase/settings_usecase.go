package usecase

import (
	"context"
	"time"

	"staffing/internal/domain/staffing"
	"staffing/internal/repository"
)

type SettingsUsecase interface {
	Thresholds(ctx context.Context) (staffing.Thresholds, error)
	PutThresholds(ctx context.Context, actor string, th staffing.Thresholds) error

	Holidays(ctx context.Context) ([]staffing.Holiday, error)
	AddHoliday(ctx context.Context, actor string, h staffing.Holiday) error
	RemoveHoliday(ctx context.Context, actor string, h staffing.Holiday) error

	AuditLog(ctx context.Context, limit, offset int) ([]repository.AuditEntry, error)
}

type Settings struct {
	thresholds repository.ThresholdRepository
	holidays   repository.HolidayRepository
	audit      repository.AuditRepository
	rec        Recorder
}

func NewSettingsUsecase(
	thresholds repository.ThresholdRepository,
	holidays repository.HolidayRepository,
	audit repository.AuditRepository,
	rec Recorder,
) *Settings {
	return &Settings{thresholds: thresholds, holidays: holidays, audit: audit, rec: rec}
}

func (u *Settings) Thresholds(ctx context.Context) (staffing.Thresholds, error) {
	th, err := u.thresholds.Get(ctx)
	if err != nil {
		return staffing.Thresholds{}, ErrInternal
	}
	return th, nil
}

// PutThresholds stores new cutoffs. Writes are validated: NOVICE is pinned to
// zero and each level above must cost strictly more days than the one below,
// so the stored configuration always yields monotonic level assignment. The
// inference engine itself stays permissive about whatever it is handed.
func (u *Settings) PutThresholds(ctx context.Context, actor string, th staffing.Thresholds) error {
	if th.Novice != 0 {
		return ErrInvalidInput
	}
	if !(th.Novice < th.Junior && th.Junior < th.Middle && th.Middle < th.Senior && th.Senior < th.Expert) {
		return ErrInvalidInput
	}

	if err := u.thresholds.Put(ctx, th); err != nil {
		return ErrInternal
	}

	u.rec.recordChange(ctx, actor, "update", "skill_thresholds", "")
	return nil
}

func (u *Settings) Holidays(ctx context.Context) ([]staffing.Holiday, error) {
	out, err := u.holidays.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Settings) AddHoliday(ctx context.Context, actor string, h staffing.Holiday) error {
	if _, err := time.Parse(staffing.DayFormat, h.Day); err != nil {
		return ErrInvalidInput
	}

	if err := u.holidays.Create(ctx, h); err != nil {
		return ErrInternal
	}

	u.rec.recordChange(ctx, actor, "create", "holiday", h.Day+":"+h.Location)
	return nil
}

func (u *Settings) RemoveHoliday(ctx context.Context, actor string, h staffing.Holiday) error {
	if err := u.holidays.Delete(ctx, h); err != nil {
		if err == repository.ErrNotFound {
			return ErrNotFound
		}
		return ErrInternal
	}

	u.rec.recordChange(ctx, actor, "delete", "holiday", h.Day+":"+h.Location)
	return nil
}

func (u *Settings) AuditLog(ctx context.Context, limit, offset int) ([]repository.AuditEntry, error) {
	if limit <= 0 || limit > 500 || offset < 0 {
		return nil, ErrInvalidInput
	}
	out, err := u.audit.List(ctx, limit, offset)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}
