package usecase

import (
	"context"
	"time"

	"staffing/internal/domain/staffing"
	"staffing/internal/repository"

	"github.com/google/uuid"
)

type AllocationRangeInput struct {
	From       string
	To         string
	Percentage int
}

type AssignmentUsecase interface {
	List(ctx context.Context) ([]staffing.Assignment, error)
	Create(ctx context.Context, actor string, resourceID, projectID uuid.UUID) (staffing.Assignment, error)
	Delete(ctx context.Context, actor string, id uuid.UUID) error

	Allocations(ctx context.Context, assignmentID uuid.UUID) (map[string]int, error)
	SetAllocation(ctx context.Context, actor string, assignmentID uuid.UUID, day string, percentage int) error
	SetAllocationRange(ctx context.Context, actor string, assignmentID uuid.UUID, in AllocationRangeInput) (int, error)
}

type Assignment struct {
	repo   repository.AssignmentRepository
	allocs repository.AllocationRepository
	rec    Recorder
}

func NewAssignmentUsecase(repo repository.AssignmentRepository, allocs repository.AllocationRepository, rec Recorder) *Assignment {
	return &Assignment{repo: repo, allocs: allocs, rec: rec}
}

func (u *Assignment) List(ctx context.Context) ([]staffing.Assignment, error) {
	out, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Assignment) Create(ctx context.Context, actor string, resourceID, projectID uuid.UUID) (staffing.Assignment, error) {
	if resourceID == uuid.Nil || projectID == uuid.Nil {
		return staffing.Assignment{}, ErrInvalidInput
	}

	a := staffing.Assignment{ID: uuid.New(), ResourceID: resourceID, ProjectID: projectID}
	if err := u.repo.Create(ctx, a); err != nil {
		return staffing.Assignment{}, ErrInternal
	}

	u.rec.recordChange(ctx, actor, "create", "assignment", a.ID.String())
	return a, nil
}

// Delete removes the assignment together with all its allocations.
func (u *Assignment) Delete(ctx context.Context, actor string, id uuid.UUID) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return ErrNotFound
		}
		return ErrInternal
	}

	u.rec.recordChange(ctx, actor, "delete", "assignment", id.String())
	return nil
}

func (u *Assignment) Allocations(ctx context.Context, assignmentID uuid.UUID) (map[string]int, error) {
	if _, err := u.repo.GetByID(ctx, assignmentID); err != nil {
		return nil, ErrNotFound
	}
	out, err := u.allocs.ListByAssignment(ctx, assignmentID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Assignment) SetAllocation(ctx context.Context, actor string, assignmentID uuid.UUID, day string, percentage int) error {
	if percentage < 0 || percentage > 100 {
		return ErrInvalidInput
	}
	if _, err := time.Parse(staffing.DayFormat, day); err != nil {
		return ErrInvalidInput
	}
	if _, err := u.repo.GetByID(ctx, assignmentID); err != nil {
		return ErrNotFound
	}

	if err := u.allocs.PutDay(ctx, assignmentID, day, percentage); err != nil {
		return ErrInternal
	}

	u.rec.recordChange(ctx, actor, "set_allocation", "allocation", assignmentID.String()+":"+day)
	return nil
}

// SetAllocationRange writes the percentage onto every weekday in [From, To]
// and returns how many days were written. Weekends are skipped; holidays are
// not, since an allocation on a holiday is simply ignored by the month view.
func (u *Assignment) SetAllocationRange(ctx context.Context, actor string, assignmentID uuid.UUID, in AllocationRangeInput) (int, error) {
	if in.Percentage < 0 || in.Percentage > 100 {
		return 0, ErrInvalidInput
	}
	from, err := time.Parse(staffing.DayFormat, in.From)
	if err != nil {
		return 0, ErrInvalidInput
	}
	to, err := time.Parse(staffing.DayFormat, in.To)
	if err != nil {
		return 0, ErrInvalidInput
	}
	if to.Before(from) {
		return 0, ErrInvalidInput
	}
	if _, err := u.repo.GetByID(ctx, assignmentID); err != nil {
		return 0, ErrNotFound
	}

	days := make(map[string]int)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		days[d.Format(staffing.DayFormat)] = in.Percentage
	}
	if len(days) == 0 {
		return 0, nil
	}

	if err := u.allocs.PutDays(ctx, assignmentID, days); err != nil {
		return 0, ErrInternal
	}

	u.rec.recordChange(ctx, actor, "set_allocation_range", "allocation", assignmentID.String())
	return len(days), nil
}
