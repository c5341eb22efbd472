package usecase

import (
	"context"
	"strings"

	"staffing/internal/domain/staffing"
	"staffing/internal/repository"

	"github.com/google/uuid"
)

type ProjectInput struct {
	Name       string
	ClientID   uuid.UUID
	ContractID *uuid.UUID
}

type ProjectUsecase interface {
	List(ctx context.Context) ([]staffing.Project, error)
	Get(ctx context.Context, id uuid.UUID) (staffing.Project, error)
	Create(ctx context.Context, actor string, in ProjectInput) (staffing.Project, error)
	Update(ctx context.Context, actor string, id uuid.UUID, in ProjectInput) (staffing.Project, error)
	Delete(ctx context.Context, actor string, id uuid.UUID) error

	RequireSkill(ctx context.Context, actor string, projectID, skillID uuid.UUID) error
	DropSkill(ctx context.Context, actor string, projectID, skillID uuid.UUID) error
}

type Project struct {
	repo   repository.ProjectRepository
	skills repository.ProjectSkillRepository
	rec    Recorder
}

func NewProjectUsecase(repo repository.ProjectRepository, skills repository.ProjectSkillRepository, rec Recorder) *Project {
	return &Project{repo: repo, skills: skills, rec: rec}
}

func (u *Project) List(ctx context.Context) ([]staffing.Project, error) {
	out, err := u.repo.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Project) Get(ctx context.Context, id uuid.UUID) (staffing.Project, error) {
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return staffing.Project{}, ErrNotFound
	}
	return p, nil
}

func (u *Project) Create(ctx context.Context, actor string, in ProjectInput) (staffing.Project, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.ClientID == uuid.Nil {
		return staffing.Project{}, ErrInvalidInput
	}

	p := staffing.Project{
		ID:         uuid.New(),
		Name:       name,
		ClientID:   in.ClientID,
		ContractID: in.ContractID,
	}
	if err := u.repo.Create(ctx, p); err != nil {
		return staffing.Project{}, ErrInternal
	}

	u.rec.recordChange(ctx, actor, "create", "project", p.ID.String())
	return p, nil
}

func (u *Project) Update(ctx context.Context, actor string, id uuid.UUID, in ProjectInput) (staffing.Project, error) {
	name := strings.TrimSpace(in.Name)
	if id == uuid.Nil || name == "" || in.ClientID == uuid.Nil {
		return staffing.Project{}, ErrInvalidInput
	}

	p := staffing.Project{ID: id, Name: name, ClientID: in.ClientID, ContractID: in.ContractID}
	if err := u.repo.Update(ctx, p); err != nil {
		if err == repository.ErrNotFound {
			return staffing.Project{}, ErrNotFound
		}
		return staffing.Project{}, ErrInternal
	}

	u.rec.recordChange(ctx, actor, "update", "project", id.String())
	return p, nil
}

func (u *Project) Delete(ctx context.Context, actor string, id uuid.UUID) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return ErrNotFound
		}
		return ErrInternal
	}

	u.rec.recordChange(ctx, actor, "delete", "project", id.String())
	return nil
}

func (u *Project) RequireSkill(ctx context.Context, actor string, projectID, skillID uuid.UUID) error {
	if projectID == uuid.Nil || skillID == uuid.Nil {
		return ErrInvalidInput
	}
	if _, err := u.repo.GetByID(ctx, projectID); err != nil {
		return ErrNotFound
	}

	if err := u.skills.Put(ctx, staffing.ProjectSkill{ProjectID: projectID, SkillID: skillID}); err != nil {
		return ErrInternal
	}

	u.rec.recordChange(ctx, actor, "require_skill", "project_skill", projectID.String()+":"+skillID.String())
	return nil
}

func (u *Project) DropSkill(ctx context.Context, actor string, projectID, skillID uuid.UUID) error {
	if err := u.skills.Delete(ctx, projectID, skillID); err != nil {
		if err == repository.ErrNotFound {
			return ErrNotFound
		}
		return ErrInternal
	}

	u.rec.recordChange(ctx, actor, "drop_skill", "project_skill", projectID.String()+":"+skillID.String())
	return nil
}
