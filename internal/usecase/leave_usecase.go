package usecase

import (
	"context"
	"time"

	"staffing/internal/domain/staffing"
	"staffing/internal/repository"

	"github.com/google/uuid"
)

type LeaveInput struct {
	ResourceID uuid.UUID
	StartDay   string
	EndDay     string
	Kind       string
}

type LeaveUsecase interface {
	List(ctx context.Context) ([]staffing.LeaveRequest, error)
	Create(ctx context.Context, actor string, in LeaveInput) (staffing.LeaveRequest, error)
	Decide(ctx context.Context, actor string, id uuid.UUID, approve bool) (staffing.LeaveRequest, error)
	Delete(ctx context.Context, actor string, id uuid.UUID) error
}

type Leave struct {
	repo repository.LeaveRepository
	rec  Recorder
}

func NewLeaveUsecase(repo repository.LeaveRepository, rec Recorder) *Leave {
	return &Leave{repo: repo, rec: rec}
}

func (u *Leave) List(ctx context.Context) ([]staffing.LeaveRequest, error) {
	out, err := u.repo.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Leave) Create(ctx context.Context, actor string, in LeaveInput) (staffing.LeaveRequest, error) {
	if in.ResourceID == uuid.Nil {
		return staffing.LeaveRequest{}, ErrInvalidInput
	}
	start, err := time.Parse(staffing.DayFormat, in.StartDay)
	if err != nil {
		return staffing.LeaveRequest{}, ErrInvalidInput
	}
	end, err := time.Parse(staffing.DayFormat, in.EndDay)
	if err != nil {
		return staffing.LeaveRequest{}, ErrInvalidInput
	}
	if end.Before(start) {
		return staffing.LeaveRequest{}, ErrInvalidInput
	}

	lr := staffing.LeaveRequest{
		ID:         uuid.New(),
		ResourceID: in.ResourceID,
		StartDay:   in.StartDay,
		EndDay:     in.EndDay,
		Kind:       in.Kind,
		Status:     staffing.LeavePending,
	}
	if err := u.repo.Create(ctx, lr); err != nil {
		return staffing.LeaveRequest{}, ErrInternal
	}

	u.rec.recordChange(ctx, actor, "create", "leave_request", lr.ID.String())
	return lr, nil
}

// Decide moves a pending request to APPROVED or REJECTED. Any other
// transition is a conflict.
func (u *Leave) Decide(ctx context.Context, actor string, id uuid.UUID, approve bool) (staffing.LeaveRequest, error) {
	lr, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return staffing.LeaveRequest{}, ErrNotFound
	}
	if lr.Status != staffing.LeavePending {
		return staffing.LeaveRequest{}, ErrConflict
	}

	status := staffing.LeaveRejected
	action := "reject"
	if approve {
		status = staffing.LeaveApproved
		action = "approve"
	}

	if err := u.repo.UpdateStatus(ctx, id, status); err != nil {
		return staffing.LeaveRequest{}, ErrInternal
	}
	lr.Status = status

	u.rec.recordChange(ctx, actor, action, "leave_request", id.String())
	return lr, nil
}

func (u *Leave) Delete(ctx context.Context, actor string, id uuid.UUID) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return ErrNotFound
		}
		return ErrInternal
	}

	u.rec.recordChange(ctx, actor, "delete", "leave_request", id.String())
	return nil
}
