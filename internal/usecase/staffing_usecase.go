package usecase

import (
	"context"
	"log"
	"time"

	"staffing/internal/domain/staffing"
	"staffing/internal/repository"

	"github.com/google/uuid"
)

// ComputedSkillItem is the wire shape of one derived skill record. It is
// what gets cached in redis, so every field carries a JSON tag.
type ComputedSkillItem struct {
	SkillID         uuid.UUID  `json:"skill_id"`
	SkillName       string     `json:"skill_name"`
	IsCertification bool       `json:"is_certification"`
	ManualLevel     *int       `json:"manual_level,omitempty"`
	AcquiredAt      *time.Time `json:"acquired_at,omitempty"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
	InferredDays    float64    `json:"inferred_days"`
	InferredLevel   int        `json:"inferred_level"`
	InferredName    string     `json:"inferred_level_name"`
	ProjectCount    int        `json:"project_count"`
}

type StaffingUsecase interface {
	ComputedSkills(ctx context.Context, resourceID uuid.UUID) ([]ComputedSkillItem, error)
	FlowGraph(ctx context.Context, month staffing.Month) (staffing.FlowGraph, error)
}

type Staffing struct {
	resources      repository.ResourceRepository
	projects       repository.ProjectRepository
	clients        repository.ClientRepository
	contracts      repository.ContractRepository
	skills         repository.SkillRepository
	resourceSkills repository.ResourceSkillRepository
	projectSkills  repository.ProjectSkillRepository
	assignments    repository.AssignmentRepository
	allocations    repository.AllocationRepository
	thresholds     repository.ThresholdRepository
	holidays       repository.HolidayRepository

	cache    Cache
	cacheTTL time.Duration
	logger   *log.Logger
}

type StaffingDeps struct {
	Resources      repository.ResourceRepository
	Projects       repository.ProjectRepository
	Clients        repository.ClientRepository
	Contracts      repository.ContractRepository
	Skills         repository.SkillRepository
	ResourceSkills repository.ResourceSkillRepository
	ProjectSkills  repository.ProjectSkillRepository
	Assignments    repository.AssignmentRepository
	Allocations    repository.AllocationRepository
	Thresholds     repository.ThresholdRepository
	Holidays       repository.HolidayRepository

	Cache    Cache
	CacheTTL time.Duration
	Logger   *log.Logger
}

func NewStaffingUsecase(d StaffingDeps) *Staffing {
	return &Staffing{
		resources:      d.Resources,
		projects:       d.Projects,
		clients:        d.Clients,
		contracts:      d.Contracts,
		skills:         d.Skills,
		resourceSkills: d.ResourceSkills,
		projectSkills:  d.ProjectSkills,
		assignments:    d.Assignments,
		allocations:    d.Allocations,
		thresholds:     d.Thresholds,
		holidays:       d.Holidays,
		cache:          d.Cache,
		cacheTTL:       d.CacheTTL,
		logger:         d.Logger,
	}
}

// ComputedSkills rebuilds the derived skill records for one resource from the
// current snapshot. The result is a pure projection: it is cached only as an
// HTTP response cache and is recomputed after any staffing write.
func (u *Staffing) ComputedSkills(ctx context.Context, resourceID uuid.UUID) ([]ComputedSkillItem, error) {
	if resourceID == uuid.Nil {
		return nil, ErrInvalidInput
	}

	if u.cache != nil {
		var cached []ComputedSkillItem
		if hit, err := u.cache.GetJSON(ctx, cacheKeySkillsPrefix+resourceID.String(), &cached); err == nil && hit {
			return cached, nil
		}
	}

	if _, err := u.resources.GetByID(ctx, resourceID); err != nil {
		return nil, ErrNotFound
	}

	assignments, err := u.assignments.ListByResource(ctx, resourceID)
	if err != nil {
		return nil, ErrInternal
	}
	allocs, err := u.allocations.ListAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	skills, err := u.skills.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	manual, err := u.resourceSkills.ListByResource(ctx, resourceID)
	if err != nil {
		return nil, ErrInternal
	}
	projectSkills, err := u.projectSkills.ListAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	th, err := u.thresholds.Get(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	computed := staffing.InferSkills(resourceID, assignments, allocs, skills, manual, projectSkills, th)

	out := make([]ComputedSkillItem, 0, len(computed))
	for _, cs := range computed {
		item := ComputedSkillItem{
			SkillID:         cs.Skill.ID,
			SkillName:       cs.Skill.Name,
			IsCertification: cs.Skill.IsCertification,
			InferredDays:    cs.InferredDays,
			InferredLevel:   int(cs.InferredLevel),
			InferredName:    cs.InferredLevel.String(),
			ProjectCount:    cs.ProjectCount,
		}
		if cs.Manual != nil {
			lvl := int(cs.Manual.Level)
			item.ManualLevel = &lvl
			item.AcquiredAt = cs.Manual.AcquiredAt
			item.ExpiresAt = cs.Manual.ExpiresAt
		}
		out = append(out, item)
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, cacheKeySkillsPrefix+resourceID.String(), out, u.cacheTTL)
	}
	return out, nil
}

// FlowGraph builds the month-scoped staffing flow graph from the current
// snapshot.
func (u *Staffing) FlowGraph(ctx context.Context, month staffing.Month) (staffing.FlowGraph, error) {
	if u.cache != nil {
		var cached staffing.FlowGraph
		if hit, err := u.cache.GetJSON(ctx, cacheKeyFlowPrefix+month.String(), &cached); err == nil && hit {
			return cached, nil
		}
	}

	in := staffing.FlowInput{}
	var err error
	if in.Resources, err = u.resources.List(ctx); err != nil {
		return staffing.FlowGraph{}, ErrInternal
	}
	if in.Projects, err = u.projects.List(ctx); err != nil {
		return staffing.FlowGraph{}, ErrInternal
	}
	if in.Clients, err = u.clients.List(ctx); err != nil {
		return staffing.FlowGraph{}, ErrInternal
	}
	if in.Contracts, err = u.contracts.List(ctx); err != nil {
		return staffing.FlowGraph{}, ErrInternal
	}
	if in.ProjectContracts, err = u.projects.ListContractLinks(ctx); err != nil {
		return staffing.FlowGraph{}, ErrInternal
	}
	if in.Assignments, err = u.assignments.ListAll(ctx); err != nil {
		return staffing.FlowGraph{}, ErrInternal
	}
	if in.Allocations, err = u.allocations.ListAll(ctx); err != nil {
		return staffing.FlowGraph{}, ErrInternal
	}
	if in.Holidays, err = u.holidays.List(ctx); err != nil {
		return staffing.FlowGraph{}, ErrInternal
	}

	g := staffing.BuildFlowGraph(in, month)

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, cacheKeyFlowPrefix+month.String(), g, u.cacheTTL)
	}
	return g, nil
}
