package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"

	"staffing/internal/domain/staffing"

	"github.com/google/uuid"
)

// BuildMonthlyReport renders the month's flow graph as CSV, one row per
// resource -> project edge enriched with the client and contract the project
// rolls up to. Rows are sorted by resource, then project label, so repeated
// exports of the same month diff cleanly.
func BuildMonthlyReport(g staffing.FlowGraph, month staffing.Month) ([]byte, error) {
	labelByID := make(map[uuid.UUID]string, len(g.Nodes))
	kindByID := make(map[uuid.UUID]staffing.NodeKind, len(g.Nodes))
	for _, n := range g.Nodes {
		labelByID[n.ID] = n.Label
		kindByID[n.ID] = n.Kind
	}

	clientOfProject := make(map[uuid.UUID]uuid.UUID)
	contractOfClient := make(map[uuid.UUID]uuid.UUID)
	for _, l := range g.Links {
		switch {
		case kindByID[l.Source] == staffing.NodeProject && kindByID[l.Target] == staffing.NodeClient:
			clientOfProject[l.Source] = l.Target
		case kindByID[l.Source] == staffing.NodeClient && kindByID[l.Target] == staffing.NodeContract:
			contractOfClient[l.Source] = l.Target
		}
	}

	type row struct {
		resource, project, client, contract string
		days                                float64
	}
	rows := make([]row, 0, len(g.Links))
	for _, l := range g.Links {
		if kindByID[l.Source] != staffing.NodeResource {
			continue
		}
		r := row{
			resource: labelByID[l.Source],
			project:  labelByID[l.Target],
			days:     l.Days,
		}
		if cid, ok := clientOfProject[l.Target]; ok {
			r.client = labelByID[cid]
			if kid, ok := contractOfClient[cid]; ok {
				r.contract = labelByID[kid]
			}
		}
		rows = append(rows, r)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].resource != rows[j].resource {
			return rows[i].resource < rows[j].resource
		}
		return rows[i].project < rows[j].project
	})

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"month", "resource", "project", "client", "contract", "days"}); err != nil {
		return nil, err
	}
	for _, r := range rows {
		rec := []string{
			month.String(),
			r.resource,
			r.project,
			r.client,
			r.contract,
			strconv.FormatFloat(r.days, 'f', -1, 64),
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ReportFileName is the remote name for a month's export.
func ReportFileName(month staffing.Month) string {
	return fmt.Sprintf("staffing-report-%s.csv", month.String())
}
