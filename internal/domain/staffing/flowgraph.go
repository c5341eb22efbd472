package staffing

import (
	"sort"

	"github.com/google/uuid"
)

type NodeKind string

const (
	NodeResource NodeKind = "resource"
	NodeProject  NodeKind = "project"
	NodeClient   NodeKind = "client"
	NodeContract NodeKind = "contract"
)

type FlowNode struct {
	ID    uuid.UUID `json:"id"`
	Kind  NodeKind  `json:"kind"`
	Label string    `json:"label"`
}

type FlowLink struct {
	Source uuid.UUID `json:"source"`
	Target uuid.UUID `json:"target"`
	Days   float64   `json:"days"`
}

// FlowGraph is the month-scoped staffing flow across organizational tiers.
// Nodes and Links are never nil; a month with no activity yields both empty.
type FlowGraph struct {
	Nodes []FlowNode `json:"nodes"`
	Links []FlowLink `json:"links"`
}

// FlowInput is the read-only snapshot the builder works from.
type FlowInput struct {
	Resources        []Resource
	Projects         []Project
	Clients          []Client
	Contracts        []Contract
	ProjectContracts []ProjectContract
	Assignments      []Assignment
	Allocations      AllocationSet
	Holidays         []Holiday
}

// BuildFlowGraph aggregates allocations of the given month into a weighted
// resource -> project -> client -> contract graph. Only working days count
// (weekends and the resource location's holidays are skipped). Zero-weight
// edges are never emitted, and the node set is exactly the endpoints of the
// emitted edges. Unresolvable references drop the affected edge silently: a
// project without a known client stops at the project tier, one without a
// resolvable contract stops at the client tier.
func BuildFlowGraph(in FlowInput, month Month) FlowGraph {
	resourceByID := make(map[uuid.UUID]Resource, len(in.Resources))
	for _, r := range in.Resources {
		resourceByID[r.ID] = r
	}
	projectByID := make(map[uuid.UUID]Project, len(in.Projects))
	for _, p := range in.Projects {
		projectByID[p.ID] = p
	}
	clientByID := make(map[uuid.UUID]Client, len(in.Clients))
	for _, c := range in.Clients {
		clientByID[c.ID] = c
	}
	contractByID := make(map[uuid.UUID]Contract, len(in.Contracts))
	for _, c := range in.Contracts {
		contractByID[c.ID] = c
	}
	linkedContract := make(map[uuid.UUID]uuid.UUID, len(in.ProjectContracts))
	for _, pc := range in.ProjectContracts {
		if _, ok := linkedContract[pc.ProjectID]; !ok {
			linkedContract[pc.ProjectID] = pc.ContractID
		}
	}

	cal := NewCalendar(in.Holidays)

	type pair struct{ a, b uuid.UUID }

	resourceProject := make(map[pair]float64)
	for _, a := range in.Assignments {
		res, ok := resourceByID[a.ResourceID]
		if !ok {
			continue
		}
		if _, ok := projectByID[a.ProjectID]; !ok {
			continue
		}
		days := monthDays(in.Allocations[a.ID], month, cal, res.Location)
		if days <= 0 {
			continue
		}
		resourceProject[pair{a.ResourceID, a.ProjectID}] += days
	}

	projectTotal := make(map[uuid.UUID]float64)
	for k, days := range resourceProject {
		projectTotal[k.b] += days
	}

	projectClient := make(map[pair]float64)
	clientContract := make(map[pair]float64)
	for pid, days := range projectTotal {
		p := projectByID[pid]
		if _, ok := clientByID[p.ClientID]; !ok {
			continue
		}
		projectClient[pair{pid, p.ClientID}] = days

		cid, ok := resolveContract(p, linkedContract)
		if !ok {
			continue
		}
		if _, ok := contractByID[cid]; !ok {
			continue
		}
		clientContract[pair{p.ClientID, cid}] += days
	}

	g := FlowGraph{Nodes: []FlowNode{}, Links: []FlowLink{}}
	seen := make(map[uuid.UUID]struct{})
	addNode := func(id uuid.UUID, kind NodeKind, label string) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		g.Nodes = append(g.Nodes, FlowNode{ID: id, Kind: kind, Label: label})
	}

	for k, days := range resourceProject {
		addNode(k.a, NodeResource, resourceByID[k.a].Name)
		addNode(k.b, NodeProject, projectByID[k.b].Name)
		g.Links = append(g.Links, FlowLink{Source: k.a, Target: k.b, Days: days})
	}
	for k, days := range projectClient {
		addNode(k.a, NodeProject, projectByID[k.a].Name)
		addNode(k.b, NodeClient, clientByID[k.b].Name)
		g.Links = append(g.Links, FlowLink{Source: k.a, Target: k.b, Days: days})
	}
	for k, days := range clientContract {
		addNode(k.a, NodeClient, clientByID[k.a].Name)
		addNode(k.b, NodeContract, contractByID[k.b].Name)
		g.Links = append(g.Links, FlowLink{Source: k.a, Target: k.b, Days: days})
	}

	sort.Slice(g.Nodes, func(i, j int) bool {
		return g.Nodes[i].ID.String() < g.Nodes[j].ID.String()
	})
	sort.Slice(g.Links, func(i, j int) bool {
		if g.Links[i].Source != g.Links[j].Source {
			return g.Links[i].Source.String() < g.Links[j].Source.String()
		}
		return g.Links[i].Target.String() < g.Links[j].Target.String()
	})
	return g
}

func resolveContract(p Project, linked map[uuid.UUID]uuid.UUID) (uuid.UUID, bool) {
	if p.ContractID != nil && *p.ContractID != uuid.Nil {
		return *p.ContractID, true
	}
	cid, ok := linked[p.ID]
	return cid, ok
}

func monthDays(byDay map[string]int, month Month, cal Calendar, location string) float64 {
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
		if !month.Contains(d) {
			continue
		}
		if !cal.IsWorkingDay(d, location) {
			continue
		}
		days += float64(byDay[d]) / 100
	}
	return days
}
