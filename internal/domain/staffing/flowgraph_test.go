package staffing

import (
	"math"
	"testing"

	"github.com/google/uuid"
)

type flowFixture struct {
	resource Resource
	client   Client
	contract Contract
	project  Project
	assign   Assignment
	input    FlowInput
}

func newFlowFixture(byDay map[string]int) flowFixture {
	f := flowFixture{
		resource: Resource{ID: uuid.New(), Name: "Ada", Location: "MXP"},
		client:   Client{ID: uuid.New(), Name: "Acme"},
	}
	f.contract = Contract{ID: uuid.New(), ClientID: f.client.ID, Name: "FY24"}
	contractID := f.contract.ID
	f.project = Project{ID: uuid.New(), Name: "Rollout", ClientID: f.client.ID, ContractID: &contractID}
	f.assign = Assignment{ID: uuid.New(), ResourceID: f.resource.ID, ProjectID: f.project.ID}
	f.input = FlowInput{
		Resources:   []Resource{f.resource},
		Projects:    []Project{f.project},
		Clients:     []Client{f.client},
		Contracts:   []Contract{f.contract},
		Assignments: []Assignment{f.assign},
		Allocations: AllocationSet{f.assign.ID: byDay},
	}
	return f
}

func linkDays(g FlowGraph, source, target uuid.UUID) (float64, bool) {
	for _, l := range g.Links {
		if l.Source == source && l.Target == target {
			return l.Days, true
		}
	}
	return 0, false
}

func TestBuildFlowGraph_ThreeTiers(t *testing.T) {
	// 2024-01-02 and 2024-01-03 are Tuesday and Wednesday.
	f := newFlowFixture(map[string]int{"2024-01-02": 100, "2024-01-03": 50})

	g := BuildFlowGraph(f.input, Month{Year: 2024, Month: 1})

	if len(g.Nodes) != 4 {
		t.Fatalf("expected 4 nodes, got %d", len(g.Nodes))
	}
	if len(g.Links) != 3 {
		t.Fatalf("expected 3 links, got %d", len(g.Links))
	}
	for _, pair := range [][2]uuid.UUID{
		{f.resource.ID, f.project.ID},
		{f.project.ID, f.client.ID},
		{f.client.ID, f.contract.ID},
	} {
		d, ok := linkDays(g, pair[0], pair[1])
		if !ok {
			t.Fatalf("missing link %s -> %s", pair[0], pair[1])
		}
		if math.Abs(d-1.5) > 1e-9 {
			t.Fatalf("link weight = %v, want 1.5", d)
		}
	}
}

func TestBuildFlowGraph_EmptyMonth(t *testing.T) {
	f := newFlowFixture(map[string]int{"2024-01-02": 100, "2024-01-03": 50})

	g := BuildFlowGraph(f.input, Month{Year: 2024, Month: 2})

	if g.Nodes == nil || g.Links == nil {
		t.Fatalf("nodes and links must be non-nil empties")
	}
	if len(g.Nodes) != 0 || len(g.Links) != 0 {
		t.Fatalf("expected empty graph, got %d nodes %d links", len(g.Nodes), len(g.Links))
	}
}

func TestBuildFlowGraph_MonthScoping(t *testing.T) {
	// January days must not bleed into the February total.
	f := newFlowFixture(map[string]int{
		"2024-01-31": 100, // Wednesday, January
		"2024-02-01": 50,  // Thursday, February
	})

	g := BuildFlowGraph(f.input, Month{Year: 2024, Month: 2})
	d, ok := linkDays(g, f.resource.ID, f.project.ID)
	if !ok {
		t.Fatalf("missing resource -> project link")
	}
	if math.Abs(d-0.5) > 1e-9 {
		t.Fatalf("february weight = %v, want 0.5", d)
	}
}

func TestBuildFlowGraph_SkipsWeekends(t *testing.T) {
	// 2024-01-06 and 2024-01-07 are Saturday and Sunday.
	f := newFlowFixture(map[string]int{
		"2024-01-05": 100, // Friday
		"2024-01-06": 100,
		"2024-01-07": 100,
	})

	g := BuildFlowGraph(f.input, Month{Year: 2024, Month: 1})
	d, _ := linkDays(g, f.resource.ID, f.project.ID)
	if math.Abs(d-1.0) > 1e-9 {
		t.Fatalf("weight = %v, want 1 (weekend days skipped)", d)
	}
}

func TestBuildFlowGraph_SkipsHolidaysByLocation(t *testing.T) {
	f := newFlowFixture(map[string]int{
		"2024-01-02": 100,
		"2024-01-03": 100,
		"2024-01-04": 100,
	})
	f.input.Holidays = []Holiday{
		{Day: "2024-01-02", Location: ""},    // company-wide
		{Day: "2024-01-03", Location: "MXP"}, // the resource's location
		{Day: "2024-01-04", Location: "JFK"}, // elsewhere, does not apply
	}

	g := BuildFlowGraph(f.input, Month{Year: 2024, Month: 1})
	d, _ := linkDays(g, f.resource.ID, f.project.ID)
	if math.Abs(d-1.0) > 1e-9 {
		t.Fatalf("weight = %v, want 1 (holidays skipped)", d)
	}
}

func TestBuildFlowGraph_NoOrphanNodesOrDanglingLinks(t *testing.T) {
	f := newFlowFixture(map[string]int{"2024-01-02": 100})
	g := BuildFlowGraph(f.input, Month{Year: 2024, Month: 1})

	inLinks := make(map[uuid.UUID]bool)
	for _, l := range g.Links {
		inLinks[l.Source] = true
		inLinks[l.Target] = true
	}
	inNodes := make(map[uuid.UUID]bool)
	for _, n := range g.Nodes {
		inNodes[n.ID] = true
		if !inLinks[n.ID] {
			t.Fatalf("orphan node %s", n.ID)
		}
	}
	for id := range inLinks {
		if !inNodes[id] {
			t.Fatalf("dangling link endpoint %s", id)
		}
	}
}

func TestBuildFlowGraph_MissingContractStopsAtClient(t *testing.T) {
	f := newFlowFixture(map[string]int{"2024-01-02": 100})
	f.project.ContractID = nil
	f.input.Projects = []Project{f.project}
	f.input.Contracts = nil

	g := BuildFlowGraph(f.input, Month{Year: 2024, Month: 1})

	if len(g.Links) != 2 {
		t.Fatalf("expected 2 links (no client -> contract), got %d", len(g.Links))
	}
	if _, ok := linkDays(g, f.client.ID, f.contract.ID); ok {
		t.Fatalf("unexpected client -> contract link")
	}
	for _, n := range g.Nodes {
		if n.Kind == NodeContract {
			t.Fatalf("contract node should be pruned")
		}
	}
}

func TestBuildFlowGraph_DirectContractBeatsJoinTable(t *testing.T) {
	f := newFlowFixture(map[string]int{"2024-01-02": 100})
	other := Contract{ID: uuid.New(), ClientID: f.client.ID, Name: "FY23"}
	f.input.Contracts = append(f.input.Contracts, other)
	f.input.ProjectContracts = []ProjectContract{{ProjectID: f.project.ID, ContractID: other.ID}}

	g := BuildFlowGraph(f.input, Month{Year: 2024, Month: 1})

	if _, ok := linkDays(g, f.client.ID, f.contract.ID); !ok {
		t.Fatalf("direct contract reference should win")
	}
	if _, ok := linkDays(g, f.client.ID, other.ID); ok {
		t.Fatalf("join-table contract must not be used when a direct one exists")
	}
}

func TestBuildFlowGraph_JoinTableFallback(t *testing.T) {
	f := newFlowFixture(map[string]int{"2024-01-02": 100})
	f.project.ContractID = nil
	f.input.Projects = []Project{f.project}
	f.input.ProjectContracts = []ProjectContract{{ProjectID: f.project.ID, ContractID: f.contract.ID}}

	g := BuildFlowGraph(f.input, Month{Year: 2024, Month: 1})
	if _, ok := linkDays(g, f.client.ID, f.contract.ID); !ok {
		t.Fatalf("expected join-table contract resolution")
	}
}

func TestBuildFlowGraph_SharedContractSums(t *testing.T) {
	// Two projects of one client on the same contract merge into a single
	// client -> contract edge carrying the summed days.
	f := newFlowFixture(map[string]int{"2024-01-02": 100})
	contractID := f.contract.ID
	second := Project{ID: uuid.New(), Name: "Phase 2", ClientID: f.client.ID, ContractID: &contractID}
	a2 := Assignment{ID: uuid.New(), ResourceID: f.resource.ID, ProjectID: second.ID}
	f.input.Projects = append(f.input.Projects, second)
	f.input.Assignments = append(f.input.Assignments, a2)
	f.input.Allocations[a2.ID] = map[string]int{"2024-01-03": 50}

	g := BuildFlowGraph(f.input, Month{Year: 2024, Month: 1})

	d, ok := linkDays(g, f.client.ID, f.contract.ID)
	if !ok {
		t.Fatalf("missing client -> contract link")
	}
	if math.Abs(d-1.5) > 1e-9 {
		t.Fatalf("summed weight = %v, want 1.5", d)
	}
}

func TestBuildFlowGraph_UnknownResourceSkipped(t *testing.T) {
	f := newFlowFixture(map[string]int{"2024-01-02": 100})
	f.input.Resources = nil

	g := BuildFlowGraph(f.input, Month{Year: 2024, Month: 1})
	if len(g.Nodes) != 0 || len(g.Links) != 0 {
		t.Fatalf("expected empty graph for unknown resource, got %d/%d", len(g.Nodes), len(g.Links))
	}
}
