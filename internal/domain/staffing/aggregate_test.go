package staffing

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/uuid"
)

func TestAggregateEffort_SumsPerProject(t *testing.T) {
	resource := uuid.New()
	projectA := uuid.New()
	projectB := uuid.New()
	a1 := Assignment{ID: uuid.New(), ResourceID: resource, ProjectID: projectA}
	a2 := Assignment{ID: uuid.New(), ResourceID: resource, ProjectID: projectA}
	a3 := Assignment{ID: uuid.New(), ResourceID: resource, ProjectID: projectB}

	allocs := AllocationSet{
		a1.ID: {"2024-01-02": 100, "2024-01-03": 50},
		a2.ID: {"2024-02-01": 25},
		a3.ID: {"2024-01-02": 100},
	}

	got := AggregateEffort([]Assignment{a1, a2, a3}, allocs)
	if len(got) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(got))
	}
	if math.Abs(got[projectA]-1.75) > 1e-9 {
		t.Fatalf("project A days = %v, want 1.75", got[projectA])
	}
	if math.Abs(got[projectB]-1.0) > 1e-9 {
		t.Fatalf("project B days = %v, want 1", got[projectB])
	}
}

func TestAggregateEffort_ZeroEffortExcluded(t *testing.T) {
	resource := uuid.New()
	empty := Assignment{ID: uuid.New(), ResourceID: resource, ProjectID: uuid.New()}
	allZero := Assignment{ID: uuid.New(), ResourceID: resource, ProjectID: uuid.New()}

	allocs := AllocationSet{
		allZero.ID: {"2024-01-02": 0, "2024-01-03": 0},
	}

	got := AggregateEffort([]Assignment{empty, allZero}, allocs)
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}

func TestAggregateEffort_NoDateFilter(t *testing.T) {
	// Lifetime scope: past and future days all count.
	resource := uuid.New()
	project := uuid.New()
	a := Assignment{ID: uuid.New(), ResourceID: resource, ProjectID: project}

	allocs := AllocationSet{
		a.ID: {"1999-12-31": 100, "2099-01-01": 100},
	}

	got := AggregateEffort([]Assignment{a}, allocs)
	if math.Abs(got[project]-2.0) > 1e-9 {
		t.Fatalf("days = %v, want 2", got[project])
	}
}

func TestAggregateEffort_Deterministic(t *testing.T) {
	resource := uuid.New()
	project := uuid.New()
	a := Assignment{ID: uuid.New(), ResourceID: resource, ProjectID: project}

	byDay := make(map[string]int)
	for d := 1; d <= 28; d++ {
		byDay[fmt.Sprintf("2024-03-%02d", d)] = (d * 37) % 101
	}
	allocs := AllocationSet{a.ID: byDay}

	first := AggregateEffort([]Assignment{a}, allocs)[project]
	for i := 0; i < 50; i++ {
		if again := AggregateEffort([]Assignment{a}, allocs)[project]; again != first {
			t.Fatalf("sum changed between runs: %v vs %v", first, again)
		}
	}
}
