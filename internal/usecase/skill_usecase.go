package usecase

import (
	"context"
	"strings"

	"staffing/internal/domain/staffing"
	"staffing/internal/repository"

	"github.com/google/uuid"
)

type SkillInput struct {
	Name            string
	IsCertification bool
}

type SkillUsecase interface {
	List(ctx context.Context) ([]staffing.Skill, error)
	Create(ctx context.Context, actor string, in SkillInput) (staffing.Skill, error)
	Update(ctx context.Context, actor string, id uuid.UUID, in SkillInput) (staffing.Skill, error)
	Delete(ctx context.Context, actor string, id uuid.UUID) error
}

type Skill struct {
	repo repository.SkillRepository
	rec  Recorder
}

func NewSkillUsecase(repo repository.SkillRepository, rec Recorder) *Skill {
	return &Skill{repo: repo, rec: rec}
}

func (u *Skill) List(ctx context.Context) ([]staffing.Skill, error) {
	out, err := u.repo.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Skill) Create(ctx context.Context, actor string, in SkillInput) (staffing.Skill, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return staffing.Skill{}, ErrInvalidInput
	}

	s := staffing.Skill{ID: uuid.New(), Name: name, IsCertification: in.IsCertification}
	if err := u.repo.Create(ctx, s); err != nil {
		return staffing.Skill{}, ErrConflict
	}

	u.rec.recordChange(ctx, actor, "create", "skill", s.ID.String())
	return s, nil
}

func (u *Skill) Update(ctx context.Context, actor string, id uuid.UUID, in SkillInput) (staffing.Skill, error) {
	name := strings.TrimSpace(in.Name)
	if id == uuid.Nil || name == "" {
		return staffing.Skill{}, ErrInvalidInput
	}

	s := staffing.Skill{ID: id, Name: name, IsCertification: in.IsCertification}
	if err := u.repo.Update(ctx, s); err != nil {
		if err == repository.ErrNotFound {
			return staffing.Skill{}, ErrNotFound
		}
		return staffing.Skill{}, ErrInternal
	}

	u.rec.recordChange(ctx, actor, "update", "skill", id.String())
	return s, nil
}

// Delete cascades to the resource-skill and project-skill links.
func (u *Skill) Delete(ctx context.Context, actor string, id uuid.UUID) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return ErrNotFound
		}
		return ErrInternal
	}

	u.rec.recordChange(ctx, actor, "delete", "skill", id.String())
	return nil
}
