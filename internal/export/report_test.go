package export

import (
	"encoding/csv"
	"strings"
	"testing"

	"staffing/internal/domain/staffing"

	"github.com/google/uuid"
)

func TestBuildMonthlyReport(t *testing.T) {
	resource := uuid.New()
	project := uuid.New()
	client := uuid.New()
	contract := uuid.New()

	g := staffing.FlowGraph{
		Nodes: []staffing.FlowNode{
			{ID: resource, Kind: staffing.NodeResource, Label: "Ada"},
			{ID: project, Kind: staffing.NodeProject, Label: "Rollout"},
			{ID: client, Kind: staffing.NodeClient, Label: "Acme"},
			{ID: contract, Kind: staffing.NodeContract, Label: "FY24"},
		},
		Links: []staffing.FlowLink{
			{Source: resource, Target: project, Days: 1.5},
			{Source: project, Target: client, Days: 1.5},
			{Source: client, Target: contract, Days: 1.5},
		},
	}

	b, err := BuildMonthlyReport(g, staffing.Month{Year: 2024, Month: 1})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(string(b))).ReadAll()
	if err != nil {
		t.Fatalf("invalid csv: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header + 1 row, got %d records", len(records))
	}
	want := []string{"2024-01", "Ada", "Rollout", "Acme", "FY24", "1.5"}
	for i, cell := range want {
		if records[1][i] != cell {
			t.Fatalf("row cell %d = %q, want %q", i, records[1][i], cell)
		}
	}
}

func TestBuildMonthlyReport_EmptyGraph(t *testing.T) {
	b, err := BuildMonthlyReport(staffing.FlowGraph{Nodes: []staffing.FlowNode{}, Links: []staffing.FlowLink{}}, staffing.Month{Year: 2024, Month: 2})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(string(b))).ReadAll()
	if err != nil {
		t.Fatalf("invalid csv: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected header only, got %d records", len(records))
	}
}

func TestReportFileName(t *testing.T) {
	got := ReportFileName(staffing.Month{Year: 2024, Month: 9})
	if got != "staffing-report-2024-09.csv" {
		t.Fatalf("file name = %q", got)
	}
}
