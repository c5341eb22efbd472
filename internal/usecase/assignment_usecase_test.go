package usecase

import (
	"context"
	"errors"
	"testing"

	"staffing/internal/domain/staffing"

	"github.com/google/uuid"
)

type capturingAllocationRepo struct {
	mockAllocationRepo
	written map[string]int
}

func (m *capturingAllocationRepo) PutDays(_ context.Context, _ uuid.UUID, days map[string]int) error {
	m.written = days
	return nil
}

func TestAssignmentUsecase_SetAllocationRange_WeekdaysOnly(t *testing.T) {
	a := staffing.Assignment{ID: uuid.New(), ResourceID: uuid.New(), ProjectID: uuid.New()}
	allocs := &capturingAllocationRepo{}
	uc := NewAssignmentUsecase(mockAssignmentRepo{items: []staffing.Assignment{a}}, allocs, Recorder{})

	// 2024-01-01 is a Monday; the range spans two full weeks.
	n, err := uc.SetAllocationRange(context.Background(), "pm", a.ID, AllocationRangeInput{
		From:       "2024-01-01",
		To:         "2024-01-14",
		Percentage: 80,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if n != 10 {
		t.Fatalf("wrote %d days, want 10 weekdays", n)
	}
	if len(allocs.written) != 10 {
		t.Fatalf("repo got %d days, want 10", len(allocs.written))
	}
	if _, ok := allocs.written["2024-01-06"]; ok {
		t.Fatalf("saturday must not be written")
	}
	if pct := allocs.written["2024-01-10"]; pct != 80 {
		t.Fatalf("wednesday pct = %d, want 80", pct)
	}
}

func TestAssignmentUsecase_SetAllocationRange_Validation(t *testing.T) {
	a := staffing.Assignment{ID: uuid.New()}
	uc := NewAssignmentUsecase(mockAssignmentRepo{items: []staffing.Assignment{a}}, &capturingAllocationRepo{}, Recorder{})

	cases := []AllocationRangeInput{
		{From: "2024-01-02", To: "2024-01-01", Percentage: 50}, // reversed
		{From: "bogus", To: "2024-01-05", Percentage: 50},
		{From: "2024-01-02", To: "2024-01-05", Percentage: 101},
		{From: "2024-01-02", To: "2024-01-05", Percentage: -1},
	}
	for _, in := range cases {
		if _, err := uc.SetAllocationRange(context.Background(), "pm", a.ID, in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", in, err)
		}
	}
}

func TestAssignmentUsecase_SetAllocation_UnknownAssignment(t *testing.T) {
	uc := NewAssignmentUsecase(mockAssignmentRepo{}, &capturingAllocationRepo{}, Recorder{})

	err := uc.SetAllocation(context.Background(), "pm", uuid.New(), "2024-01-02", 50)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAssignmentUsecase_SetAllocationRange_WeekendOnlyRange(t *testing.T) {
	a := staffing.Assignment{ID: uuid.New()}
	allocs := &capturingAllocationRepo{}
	uc := NewAssignmentUsecase(mockAssignmentRepo{items: []staffing.Assignment{a}}, allocs, Recorder{})

	n, err := uc.SetAllocationRange(context.Background(), "pm", a.ID, AllocationRangeInput{
		From:       "2024-01-06", // Saturday
		To:         "2024-01-07", // Sunday
		Percentage: 100,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if n != 0 {
		t.Fatalf("wrote %d days, want 0", n)
	}
}
