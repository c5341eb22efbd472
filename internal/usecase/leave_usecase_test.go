package usecase

import (
	"context"
	"errors"
	"testing"

	"staffing/internal/domain/staffing"
	"staffing/internal/repository"

	"github.com/google/uuid"
)

type mockLeaveRepo struct {
	items  map[uuid.UUID]staffing.LeaveRequest
	status staffing.LeaveStatus
}

func (m *mockLeaveRepo) List(context.Context) ([]staffing.LeaveRequest, error) { return nil, nil }
func (m *mockLeaveRepo) GetByID(_ context.Context, id uuid.UUID) (staffing.LeaveRequest, error) {
	lr, ok := m.items[id]
	if !ok {
		return staffing.LeaveRequest{}, repository.ErrNotFound
	}
	return lr, nil
}
func (m *mockLeaveRepo) Create(_ context.Context, lr staffing.LeaveRequest) error {
	if m.items == nil {
		m.items = make(map[uuid.UUID]staffing.LeaveRequest)
	}
	m.items[lr.ID] = lr
	return nil
}
func (m *mockLeaveRepo) UpdateStatus(_ context.Context, id uuid.UUID, status staffing.LeaveStatus) error {
	lr := m.items[id]
	lr.Status = status
	m.items[id] = lr
	m.status = status
	return nil
}
func (m *mockLeaveRepo) Delete(context.Context, uuid.UUID) error { return nil }

func TestLeaveUsecase_CreateAndApprove(t *testing.T) {
	repo := &mockLeaveRepo{}
	uc := NewLeaveUsecase(repo, Recorder{})

	lr, err := uc.Create(context.Background(), "hr", LeaveInput{
		ResourceID: uuid.New(),
		StartDay:   "2024-08-05",
		EndDay:     "2024-08-09",
		Kind:       "vacation",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if lr.Status != staffing.LeavePending {
		t.Fatalf("new request status = %s, want PENDING", lr.Status)
	}

	decided, err := uc.Decide(context.Background(), "hr", lr.ID, true)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if decided.Status != staffing.LeaveApproved {
		t.Fatalf("status = %s, want APPROVED", decided.Status)
	}
}

func TestLeaveUsecase_DecideTwiceConflicts(t *testing.T) {
	repo := &mockLeaveRepo{}
	uc := NewLeaveUsecase(repo, Recorder{})

	lr, err := uc.Create(context.Background(), "hr", LeaveInput{
		ResourceID: uuid.New(),
		StartDay:   "2024-08-05",
		EndDay:     "2024-08-05",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, err := uc.Decide(context.Background(), "hr", lr.ID, false); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := uc.Decide(context.Background(), "hr", lr.ID, true); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestLeaveUsecase_Create_Validation(t *testing.T) {
	uc := NewLeaveUsecase(&mockLeaveRepo{}, Recorder{})

	cases := []LeaveInput{
		{ResourceID: uuid.Nil, StartDay: "2024-08-05", EndDay: "2024-08-06"},
		{ResourceID: uuid.New(), StartDay: "2024-08-06", EndDay: "2024-08-05"},
		{ResourceID: uuid.New(), StartDay: "bogus", EndDay: "2024-08-05"},
	}
	for _, in := range cases {
		if _, err := uc.Create(context.Background(), "hr", in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", in, err)
		}
	}
}
