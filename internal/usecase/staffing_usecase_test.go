package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"staffing/internal/domain/staffing"
	"staffing/internal/repository"

	"github.com/google/uuid"
)

type mockResourceRepo struct {
	items []staffing.Resource
}

func (m mockResourceRepo) List(context.Context) ([]staffing.Resource, error) { return m.items, nil }
func (m mockResourceRepo) GetByID(_ context.Context, id uuid.UUID) (staffing.Resource, error) {
	for _, r := range m.items {
		if r.ID == id {
			return r, nil
		}
	}
	return staffing.Resource{}, repository.ErrNotFound
}
func (m mockResourceRepo) Create(context.Context, staffing.Resource) error { return nil }
func (m mockResourceRepo) Update(context.Context, staffing.Resource) error { return nil }
func (m mockResourceRepo) Delete(context.Context, uuid.UUID) error         { return nil }

type mockProjectRepo struct {
	items []staffing.Project
	links []staffing.ProjectContract
}

func (m mockProjectRepo) List(context.Context) ([]staffing.Project, error) { return m.items, nil }
func (m mockProjectRepo) GetByID(_ context.Context, id uuid.UUID) (staffing.Project, error) {
	for _, p := range m.items {
		if p.ID == id {
			return p, nil
		}
	}
	return staffing.Project{}, repository.ErrNotFound
}
func (m mockProjectRepo) Create(context.Context, staffing.Project) error { return nil }
func (m mockProjectRepo) Update(context.Context, staffing.Project) error { return nil }
func (m mockProjectRepo) Delete(context.Context, uuid.UUID) error        { return nil }
func (m mockProjectRepo) ListContractLinks(context.Context) ([]staffing.ProjectContract, error) {
	return m.links, nil
}

type mockClientRepo struct{ items []staffing.Client }

func (m mockClientRepo) List(context.Context) ([]staffing.Client, error) { return m.items, nil }
func (m mockClientRepo) Create(context.Context, staffing.Client) error   { return nil }
func (m mockClientRepo) Update(context.Context, staffing.Client) error   { return nil }
func (m mockClientRepo) Delete(context.Context, uuid.UUID) error         { return nil }

type mockContractRepo struct{ items []staffing.Contract }

func (m mockContractRepo) List(context.Context) ([]staffing.Contract, error) { return m.items, nil }
func (m mockContractRepo) Create(context.Context, staffing.Contract) error   { return nil }
func (m mockContractRepo) Update(context.Context, staffing.Contract) error   { return nil }
func (m mockContractRepo) Delete(context.Context, uuid.UUID) error           { return nil }

type mockSkillRepo struct{ items []staffing.Skill }

func (m mockSkillRepo) List(context.Context) ([]staffing.Skill, error) { return m.items, nil }
func (m mockSkillRepo) Create(context.Context, staffing.Skill) error   { return nil }
func (m mockSkillRepo) Update(context.Context, staffing.Skill) error   { return nil }
func (m mockSkillRepo) Delete(context.Context, uuid.UUID) error        { return nil }

type mockResourceSkillRepo struct{ items []staffing.ResourceSkill }

func (m mockResourceSkillRepo) ListAll(context.Context) ([]staffing.ResourceSkill, error) {
	return m.items, nil
}
func (m mockResourceSkillRepo) ListByResource(_ context.Context, id uuid.UUID) ([]staffing.ResourceSkill, error) {
	out := make([]staffing.ResourceSkill, 0)
	for _, rs := range m.items {
		if rs.ResourceID == id {
			out = append(out, rs)
		}
	}
	return out, nil
}
func (m mockResourceSkillRepo) Upsert(context.Context, staffing.ResourceSkill) error { return nil }
func (m mockResourceSkillRepo) Delete(context.Context, uuid.UUID, uuid.UUID) error   { return nil }

type mockProjectSkillRepo struct{ items []staffing.ProjectSkill }

func (m mockProjectSkillRepo) ListAll(context.Context) ([]staffing.ProjectSkill, error) {
	return m.items, nil
}
func (m mockProjectSkillRepo) Put(context.Context, staffing.ProjectSkill) error   { return nil }
func (m mockProjectSkillRepo) Delete(context.Context, uuid.UUID, uuid.UUID) error { return nil }

type mockAssignmentRepo struct{ items []staffing.Assignment }

func (m mockAssignmentRepo) ListAll(context.Context) ([]staffing.Assignment, error) {
	return m.items, nil
}
func (m mockAssignmentRepo) ListByResource(_ context.Context, id uuid.UUID) ([]staffing.Assignment, error) {
	out := make([]staffing.Assignment, 0)
	for _, a := range m.items {
		if a.ResourceID == id {
			out = append(out, a)
		}
	}
	return out, nil
}
func (m mockAssignmentRepo) GetByID(_ context.Context, id uuid.UUID) (staffing.Assignment, error) {
	for _, a := range m.items {
		if a.ID == id {
			return a, nil
		}
	}
	return staffing.Assignment{}, repository.ErrNotFound
}
func (m mockAssignmentRepo) Create(context.Context, staffing.Assignment) error { return nil }
func (m mockAssignmentRepo) Delete(context.Context, uuid.UUID) error           { return nil }

type mockAllocationRepo struct{ set staffing.AllocationSet }

func (m mockAllocationRepo) ListAll(context.Context) (staffing.AllocationSet, error) {
	return m.set, nil
}
func (m mockAllocationRepo) ListByAssignment(_ context.Context, id uuid.UUID) (map[string]int, error) {
	return m.set[id], nil
}
func (m mockAllocationRepo) PutDay(context.Context, uuid.UUID, string, int) error { return nil }
func (m mockAllocationRepo) PutDays(context.Context, uuid.UUID, map[string]int) error {
	return nil
}

type mockThresholdRepo struct{ th staffing.Thresholds }

func (m mockThresholdRepo) Get(context.Context) (staffing.Thresholds, error) { return m.th, nil }
func (m mockThresholdRepo) Put(context.Context, staffing.Thresholds) error   { return nil }

type mockHolidayRepo struct{ items []staffing.Holiday }

func (m mockHolidayRepo) List(context.Context) ([]staffing.Holiday, error) { return m.items, nil }
func (m mockHolidayRepo) Create(context.Context, staffing.Holiday) error   { return nil }
func (m mockHolidayRepo) Delete(context.Context, staffing.Holiday) error   { return nil }

func newStaffingFixture() (StaffingDeps, staffing.Resource, staffing.Project, staffing.Skill, staffing.Assignment) {
	resource := staffing.Resource{ID: uuid.New(), Name: "Ada", Location: "MXP"}
	client := staffing.Client{ID: uuid.New(), Name: "Acme"}
	contract := staffing.Contract{ID: uuid.New(), ClientID: client.ID, Name: "FY24"}
	contractID := contract.ID
	project := staffing.Project{ID: uuid.New(), Name: "Rollout", ClientID: client.ID, ContractID: &contractID}
	skill := staffing.Skill{ID: uuid.New(), Name: "Go"}
	assignment := staffing.Assignment{ID: uuid.New(), ResourceID: resource.ID, ProjectID: project.ID}

	deps := StaffingDeps{
		Resources:      mockResourceRepo{items: []staffing.Resource{resource}},
		Projects:       mockProjectRepo{items: []staffing.Project{project}},
		Clients:        mockClientRepo{items: []staffing.Client{client}},
		Contracts:      mockContractRepo{items: []staffing.Contract{contract}},
		Skills:         mockSkillRepo{items: []staffing.Skill{skill}},
		ResourceSkills: mockResourceSkillRepo{},
		ProjectSkills:  mockProjectSkillRepo{items: []staffing.ProjectSkill{{ProjectID: project.ID, SkillID: skill.ID}}},
		Assignments:    mockAssignmentRepo{items: []staffing.Assignment{assignment}},
		Allocations:    mockAllocationRepo{set: staffing.AllocationSet{assignment.ID: {"2024-01-02": 100, "2024-01-03": 50}}},
		Thresholds:     mockThresholdRepo{th: staffing.Thresholds{Novice: 0, Junior: 1, Middle: 3, Senior: 5, Expert: 10}},
		Holidays:       mockHolidayRepo{},
	}
	return deps, resource, project, skill, assignment
}

func TestStaffingUsecase_ComputedSkills(t *testing.T) {
	deps, resource, _, skill, _ := newStaffingFixture()
	uc := NewStaffingUsecase(deps)

	items, err := uc.ComputedSkills(context.Background(), resource.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	it := items[0]
	if it.SkillID != skill.ID {
		t.Fatalf("unexpected skill id")
	}
	if math.Abs(it.InferredDays-1.5) > 1e-9 {
		t.Fatalf("inferred days = %v, want 1.5", it.InferredDays)
	}
	if it.InferredLevel != 2 || it.InferredName != "JUNIOR" {
		t.Fatalf("level = %d (%s), want 2 (JUNIOR)", it.InferredLevel, it.InferredName)
	}
	if it.ProjectCount != 1 {
		t.Fatalf("project count = %d, want 1", it.ProjectCount)
	}
}

func TestStaffingUsecase_ComputedSkills_UnknownResource(t *testing.T) {
	deps, _, _, _, _ := newStaffingFixture()
	uc := NewStaffingUsecase(deps)

	_, err := uc.ComputedSkills(context.Background(), uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStaffingUsecase_ComputedSkills_NilID(t *testing.T) {
	deps, _, _, _, _ := newStaffingFixture()
	uc := NewStaffingUsecase(deps)

	_, err := uc.ComputedSkills(context.Background(), uuid.Nil)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestStaffingUsecase_FlowGraph(t *testing.T) {
	deps, resource, project, _, _ := newStaffingFixture()
	uc := NewStaffingUsecase(deps)

	g, err := uc.FlowGraph(context.Background(), staffing.Month{Year: 2024, Month: 1})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(g.Nodes) != 4 || len(g.Links) != 3 {
		t.Fatalf("expected 4 nodes / 3 links, got %d / %d", len(g.Nodes), len(g.Links))
	}

	found := false
	for _, l := range g.Links {
		if l.Source == resource.ID && l.Target == project.ID {
			found = true
			if math.Abs(l.Days-1.5) > 1e-9 {
				t.Fatalf("resource -> project weight = %v, want 1.5", l.Days)
			}
		}
	}
	if !found {
		t.Fatalf("missing resource -> project link")
	}
}

func TestStaffingUsecase_FlowGraph_EmptyMonth(t *testing.T) {
	deps, _, _, _, _ := newStaffingFixture()
	uc := NewStaffingUsecase(deps)

	g, err := uc.FlowGraph(context.Background(), staffing.Month{Year: 2024, Month: 2})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(g.Nodes) != 0 || len(g.Links) != 0 {
		t.Fatalf("expected empty graph, got %d nodes %d links", len(g.Nodes), len(g.Links))
	}
}
