package usecase

import (
	"context"
	"errors"
	"testing"

	"staffing/internal/domain/staffing"
)

func TestSettingsUsecase_PutThresholds_RejectsNonIncreasing(t *testing.T) {
	uc := NewSettingsUsecase(mockThresholdRepo{}, mockHolidayRepo{}, nil, Recorder{})

	cases := []staffing.Thresholds{
		{Novice: 0, Junior: 50, Middle: 10, Senior: 540, Expert: 1080}, // junior above middle
		{Novice: 0, Junior: 30, Middle: 30, Senior: 540, Expert: 1080}, // equal cutoffs
		{Novice: 5, Junior: 30, Middle: 180, Senior: 540, Expert: 1080}, // novice not zero
	}
	for _, th := range cases {
		if err := uc.PutThresholds(context.Background(), "admin", th); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", th, err)
		}
	}
}

func TestSettingsUsecase_PutThresholds_AcceptsIncreasing(t *testing.T) {
	uc := NewSettingsUsecase(mockThresholdRepo{}, mockHolidayRepo{}, nil, Recorder{})

	th := staffing.Thresholds{Novice: 0, Junior: 1, Middle: 3, Senior: 5, Expert: 10}
	if err := uc.PutThresholds(context.Background(), "admin", th); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestSettingsUsecase_AddHoliday_InvalidDay(t *testing.T) {
	uc := NewSettingsUsecase(mockThresholdRepo{}, mockHolidayRepo{}, nil, Recorder{})

	err := uc.AddHoliday(context.Background(), "admin", staffing.Holiday{Day: "25/12/2024"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSettingsUsecase_AuditLog_InvalidPaging(t *testing.T) {
	uc := NewSettingsUsecase(mockThresholdRepo{}, mockHolidayRepo{}, nil, Recorder{})

	if _, err := uc.AuditLog(context.Background(), 0, 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero limit, got %v", err)
	}
	if _, err := uc.AuditLog(context.Background(), 10, -1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative offset, got %v", err)
	}
}
