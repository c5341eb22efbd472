package staffing

import (
	"math"
	"testing"

	"github.com/google/uuid"
)

func TestInferSkills_ProjectExposure(t *testing.T) {
	// Resource with one assignment: 100% on 2024-01-02 plus 50% on
	// 2024-01-03 gives 1.5 days, which lands on JUNIOR with these cutoffs.
	resource := uuid.New()
	project := uuid.New()
	skill := Skill{ID: uuid.New(), Name: "Go"}
	assignment := Assignment{ID: uuid.New(), ResourceID: resource, ProjectID: project}

	th := Thresholds{Novice: 0, Junior: 1, Middle: 3, Senior: 5, Expert: 10}

	got := InferSkills(
		resource,
		[]Assignment{assignment},
		AllocationSet{assignment.ID: {"2024-01-02": 100, "2024-01-03": 50}},
		[]Skill{skill},
		nil,
		[]ProjectSkill{{ProjectID: project, SkillID: skill.ID}},
		th,
	)

	if len(got) != 1 {
		t.Fatalf("expected 1 computed skill, got %d", len(got))
	}
	cs := got[0]
	if cs.Skill.ID != skill.ID {
		t.Fatalf("unexpected skill id")
	}
	if math.Abs(cs.InferredDays-1.5) > 1e-9 {
		t.Fatalf("inferred days = %v, want 1.5", cs.InferredDays)
	}
	if cs.InferredLevel != LevelJunior {
		t.Fatalf("inferred level = %v, want %v", cs.InferredLevel, LevelJunior)
	}
	if cs.ProjectCount != 1 {
		t.Fatalf("project count = %d, want 1", cs.ProjectCount)
	}
	if cs.Manual != nil {
		t.Fatalf("expected no manual record")
	}
}

func TestInferSkills_ManualOnly(t *testing.T) {
	resource := uuid.New()
	skill := Skill{ID: uuid.New(), Name: "Kubernetes"}

	got := InferSkills(
		resource,
		nil,
		nil,
		[]Skill{skill},
		[]ResourceSkill{{ResourceID: resource, SkillID: skill.ID, Level: LevelSenior}},
		nil,
		DefaultThresholds(),
	)

	if len(got) != 1 {
		t.Fatalf("expected 1 computed skill, got %d", len(got))
	}
	cs := got[0]
	if cs.Manual == nil || cs.Manual.Level != LevelSenior {
		t.Fatalf("manual record missing or wrong: %+v", cs.Manual)
	}
	if cs.InferredDays != 0 {
		t.Fatalf("inferred days = %v, want 0", cs.InferredDays)
	}
	if cs.InferredLevel != LevelNovice {
		t.Fatalf("inferred level = %v, want %v", cs.InferredLevel, LevelNovice)
	}
	if cs.ProjectCount != 0 {
		t.Fatalf("project count = %d, want 0", cs.ProjectCount)
	}
}

func TestInferSkills_UnknownSkillDropped(t *testing.T) {
	resource := uuid.New()
	project := uuid.New()
	assignment := Assignment{ID: uuid.New(), ResourceID: resource, ProjectID: project}
	ghost := uuid.New()

	got := InferSkills(
		resource,
		[]Assignment{assignment},
		AllocationSet{assignment.ID: {"2024-01-02": 100}},
		nil, // skill table does not know the id at all
		[]ResourceSkill{{ResourceID: resource, SkillID: ghost}},
		[]ProjectSkill{{ProjectID: project, SkillID: ghost}},
		DefaultThresholds(),
	)

	if len(got) != 0 {
		t.Fatalf("expected unknown skill ids to be dropped, got %v", got)
	}
}

func TestInferSkills_ZeroEffortAssignmentIgnored(t *testing.T) {
	resource := uuid.New()
	project := uuid.New()
	skill := Skill{ID: uuid.New(), Name: "Terraform"}
	assignment := Assignment{ID: uuid.New(), ResourceID: resource, ProjectID: project}

	got := InferSkills(
		resource,
		[]Assignment{assignment},
		AllocationSet{}, // no recorded days
		[]Skill{skill},
		nil,
		[]ProjectSkill{{ProjectID: project, SkillID: skill.ID}},
		DefaultThresholds(),
	)

	if len(got) != 0 {
		t.Fatalf("expected no exposure from a zero-effort assignment, got %v", got)
	}
}

func TestInferSkills_OtherResourcesIgnored(t *testing.T) {
	me := uuid.New()
	someoneElse := uuid.New()
	project := uuid.New()
	skill := Skill{ID: uuid.New(), Name: "Rust"}
	theirs := Assignment{ID: uuid.New(), ResourceID: someoneElse, ProjectID: project}

	got := InferSkills(
		me,
		[]Assignment{theirs},
		AllocationSet{theirs.ID: {"2024-01-02": 100}},
		[]Skill{skill},
		[]ResourceSkill{{ResourceID: someoneElse, SkillID: skill.ID, Level: LevelExpert}},
		[]ProjectSkill{{ProjectID: project, SkillID: skill.ID}},
		DefaultThresholds(),
	)

	if len(got) != 0 {
		t.Fatalf("expected nothing for an uninvolved resource, got %v", got)
	}
}

func TestInferSkills_OrderedByName(t *testing.T) {
	resource := uuid.New()
	skills := []Skill{
		{ID: uuid.New(), Name: "zsh"},
		{ID: uuid.New(), Name: "Ansible"},
		{ID: uuid.New(), Name: "make"},
	}
	manual := make([]ResourceSkill, 0, len(skills))
	for _, s := range skills {
		manual = append(manual, ResourceSkill{ResourceID: resource, SkillID: s.ID, Level: LevelMiddle})
	}

	got := InferSkills(resource, nil, nil, skills, manual, nil, DefaultThresholds())
	if len(got) != 3 {
		t.Fatalf("expected 3 computed skills, got %d", len(got))
	}
	if got[0].Skill.Name != "Ansible" || got[1].Skill.Name != "make" || got[2].Skill.Name != "zsh" {
		t.Fatalf("unexpected order: %s, %s, %s", got[0].Skill.Name, got[1].Skill.Name, got[2].Skill.Name)
	}
}

func TestInferSkills_MultipleProjectsAccumulate(t *testing.T) {
	resource := uuid.New()
	skill := Skill{ID: uuid.New(), Name: "SQL"}
	p1, p2 := uuid.New(), uuid.New()
	a1 := Assignment{ID: uuid.New(), ResourceID: resource, ProjectID: p1}
	a2 := Assignment{ID: uuid.New(), ResourceID: resource, ProjectID: p2}

	th := Thresholds{Novice: 0, Junior: 1, Middle: 3, Senior: 5, Expert: 10}
	got := InferSkills(
		resource,
		[]Assignment{a1, a2},
		AllocationSet{
			a1.ID: {"2024-01-02": 100, "2024-01-03": 100},
			a2.ID: {"2024-01-04": 100},
		},
		[]Skill{skill},
		nil,
		[]ProjectSkill{
			{ProjectID: p1, SkillID: skill.ID},
			{ProjectID: p2, SkillID: skill.ID},
		},
		th,
	)

	if len(got) != 1 {
		t.Fatalf("expected 1 computed skill, got %d", len(got))
	}
	if math.Abs(got[0].InferredDays-3.0) > 1e-9 {
		t.Fatalf("inferred days = %v, want 3", got[0].InferredDays)
	}
	if got[0].InferredLevel != LevelMiddle {
		t.Fatalf("inferred level = %v, want %v", got[0].InferredLevel, LevelMiddle)
	}
	if got[0].ProjectCount != 2 {
		t.Fatalf("project count = %d, want 2", got[0].ProjectCount)
	}
}
