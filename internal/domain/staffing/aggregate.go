package staffing

import (
	"sort"

	"github.com/google/uuid"
)

// AggregateEffort sums recorded allocation days per project for the given
// assignments. Every recorded day counts, past or future; a percentage of 100
// on one day contributes one person-day. Assignments whose allocations sum to
// zero are excluded from the result. Date keys are walked in sorted order so
// the floating-point sums are reproducible.
func AggregateEffort(assignments []Assignment, allocs AllocationSet) map[uuid.UUID]float64 {
	out := make(map[uuid.UUID]float64)
	for _, a := range assignments {
		days := assignmentDays(allocs[a.ID])
		if days <= 0 {
			continue
		}
		out[a.ProjectID] += days
	}
	return out
}

func assignmentDays(byDay map[string]int) float64 {
	if len(byDay) == 0 {
		return 0
	}
	keys := make([]string, 0, len(byDay))
	for d := range byDay {
		keys = append(keys, d)
	}
	sort.Strings(keys)

	var days float64
	for _, d := range keys {
		days += float64(byDay[d]) / 100
	}
	return days
}
