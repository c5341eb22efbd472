package staffing

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// ComputedSkill is a derived, never-persisted view of one skill for one
// resource: the manual assertion if any, plus project-exposure figures.
type ComputedSkill struct {
	Skill         Skill
	Manual        *ResourceSkill
	InferredDays  float64
	InferredLevel Level
	ProjectCount  int
}

// InferSkills computes every skill the resource touches, either by manual
// assignment or by exposure through projects it worked on. Exposure is
// lifetime-scoped: all recorded allocation days count. Skill ids with no row
// in the skill table are dropped silently. Results are ordered by skill name,
// then id, so repeated calls over the same snapshot agree byte for byte.
func InferSkills(
	resourceID uuid.UUID,
	assignments []Assignment,
	allocs AllocationSet,
	skills []Skill,
	resourceSkills []ResourceSkill,
	projectSkills []ProjectSkill,
	th Thresholds,
) []ComputedSkill {
	skillByID := make(map[uuid.UUID]Skill, len(skills))
	for _, s := range skills {
		skillByID[s.ID] = s
	}

	skillsByProject := make(map[uuid.UUID][]uuid.UUID)
	for _, ps := range projectSkills {
		skillsByProject[ps.ProjectID] = append(skillsByProject[ps.ProjectID], ps.SkillID)
	}

	own := make([]Assignment, 0, len(assignments))
	for _, a := range assignments {
		if a.ResourceID == resourceID {
			own = append(own, a)
		}
	}
	effortByProject := AggregateEffort(own, allocs)

	type exposure struct {
		days     float64
		projects map[uuid.UUID]struct{}
	}
	exposureBySkill := make(map[uuid.UUID]*exposure)

	projectIDs := make([]uuid.UUID, 0, len(effortByProject))
	for pid := range effortByProject {
		projectIDs = append(projectIDs, pid)
	}
	sort.Slice(projectIDs, func(i, j int) bool {
		return projectIDs[i].String() < projectIDs[j].String()
	})

	for _, pid := range projectIDs {
		days := effortByProject[pid]
		for _, sid := range skillsByProject[pid] {
			e := exposureBySkill[sid]
			if e == nil {
				e = &exposure{projects: make(map[uuid.UUID]struct{})}
				exposureBySkill[sid] = e
			}
			e.days += days
			e.projects[pid] = struct{}{}
		}
	}

	manualBySkill := make(map[uuid.UUID]ResourceSkill)
	for _, rs := range resourceSkills {
		if rs.ResourceID == resourceID {
			manualBySkill[rs.SkillID] = rs
		}
	}

	union := make(map[uuid.UUID]struct{}, len(manualBySkill)+len(exposureBySkill))
	for sid := range manualBySkill {
		union[sid] = struct{}{}
	}
	for sid := range exposureBySkill {
		union[sid] = struct{}{}
	}

	out := make([]ComputedSkill, 0, len(union))
	for sid := range union {
		s, ok := skillByID[sid]
		if !ok {
			continue
		}

		cs := ComputedSkill{Skill: s, InferredLevel: LevelNovice}
		if rs, ok := manualBySkill[sid]; ok {
			manual := rs
			cs.Manual = &manual
		}
		if e, ok := exposureBySkill[sid]; ok {
			cs.InferredDays = e.days
			cs.ProjectCount = len(e.projects)
		}
		cs.InferredLevel = th.LevelFor(cs.InferredDays)

		out = append(out, cs)
	}

	sort.Slice(out, func(i, j int) bool {
		ni := strings.ToLower(out[i].Skill.Name)
		nj := strings.ToLower(out[j].Skill.Name)
		if ni != nj {
			return ni < nj
		}
		return out[i].Skill.ID.String() < out[j].Skill.ID.String()
	})
	return out
}
