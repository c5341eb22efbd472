package usecase

import (
	"context"
	"strings"
	"time"

	"staffing/internal/domain/staffing"
	"staffing/internal/repository"

	"github.com/google/uuid"
)

type ResourceInput struct {
	Name     string
	Email    string
	Location string
}

type ManualSkillInput struct {
	Level      int
	AcquiredAt *time.Time
	ExpiresAt  *time.Time
}

type ResourceUsecase interface {
	List(ctx context.Context) ([]staffing.Resource, error)
	Get(ctx context.Context, id uuid.UUID) (staffing.Resource, error)
	Create(ctx context.Context, actor string, in ResourceInput) (staffing.Resource, error)
	Update(ctx context.Context, actor string, id uuid.UUID, in ResourceInput) (staffing.Resource, error)
	Delete(ctx context.Context, actor string, id uuid.UUID) error

	AssignSkill(ctx context.Context, actor string, resourceID, skillID uuid.UUID, in ManualSkillInput) error
	RemoveSkill(ctx context.Context, actor string, resourceID, skillID uuid.UUID) error
}

type Resource struct {
	repo   repository.ResourceRepository
	skills repository.ResourceSkillRepository
	rec    Recorder
}

func NewResourceUsecase(repo repository.ResourceRepository, skills repository.ResourceSkillRepository, rec Recorder) *Resource {
	return &Resource{repo: repo, skills: skills, rec: rec}
}

func (u *Resource) List(ctx context.Context) ([]staffing.Resource, error) {
	out, err := u.repo.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Resource) Get(ctx context.Context, id uuid.UUID) (staffing.Resource, error) {
	res, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return staffing.Resource{}, ErrNotFound
	}
	return res, nil
}

func (u *Resource) Create(ctx context.Context, actor string, in ResourceInput) (staffing.Resource, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return staffing.Resource{}, ErrInvalidInput
	}

	res := staffing.Resource{
		ID:       uuid.New(),
		Name:     name,
		Email:    strings.TrimSpace(in.Email),
		Location: strings.TrimSpace(in.Location),
	}
	if err := u.repo.Create(ctx, res); err != nil {
		return staffing.Resource{}, ErrInternal
	}

	u.rec.recordChange(ctx, actor, "create", "resource", res.ID.String())
	return res, nil
}

func (u *Resource) Update(ctx context.Context, actor string, id uuid.UUID, in ResourceInput) (staffing.Resource, error) {
	name := strings.TrimSpace(in.Name)
	if id == uuid.Nil || name == "" {
		return staffing.Resource{}, ErrInvalidInput
	}

	res := staffing.Resource{
		ID:       id,
		Name:     name,
		Email:    strings.TrimSpace(in.Email),
		Location: strings.TrimSpace(in.Location),
	}
	if err := u.repo.Update(ctx, res); err != nil {
		if err == repository.ErrNotFound {
			return staffing.Resource{}, ErrNotFound
		}
		return staffing.Resource{}, ErrInternal
	}

	u.rec.recordChange(ctx, actor, "update", "resource", id.String())
	return res, nil
}

func (u *Resource) Delete(ctx context.Context, actor string, id uuid.UUID) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return ErrNotFound
		}
		return ErrInternal
	}

	u.rec.recordChange(ctx, actor, "delete", "resource", id.String())
	return nil
}

func (u *Resource) AssignSkill(ctx context.Context, actor string, resourceID, skillID uuid.UUID, in ManualSkillInput) error {
	if resourceID == uuid.Nil || skillID == uuid.Nil {
		return ErrInvalidInput
	}
	if in.Level < int(staffing.LevelNovice) || in.Level > int(staffing.LevelExpert) {
		return ErrInvalidInput
	}
	if _, err := u.repo.GetByID(ctx, resourceID); err != nil {
		return ErrNotFound
	}

	rs := staffing.ResourceSkill{
		ResourceID: resourceID,
		SkillID:    skillID,
		Level:      staffing.Level(in.Level),
		AcquiredAt: in.AcquiredAt,
		ExpiresAt:  in.ExpiresAt,
	}
	if err := u.skills.Upsert(ctx, rs); err != nil {
		return ErrInternal
	}

	u.rec.recordChange(ctx, actor, "assign_skill", "resource_skill", resourceID.String()+":"+skillID.String())
	return nil
}

func (u *Resource) RemoveSkill(ctx context.Context, actor string, resourceID, skillID uuid.UUID) error {
	if err := u.skills.Delete(ctx, resourceID, skillID); err != nil {
		if err == repository.ErrNotFound {
			return ErrNotFound
		}
		return ErrInternal
	}

	u.rec.recordChange(ctx, actor, "remove_skill", "resource_skill", resourceID.String()+":"+skillID.String())
	return nil
}
