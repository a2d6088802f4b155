// Package board is the presentation core of the pipeline: it buckets leads
// into stage columns and models the drag-and-drop interaction as explicit,
// per-instance state. Nothing here touches the store directly; mutations go
// through the injected usecases.
package board

import (
	"github.com/edhorizon/pipeline-service/internal/entity"
)

// Column is one rendered stage with its bucketed leads.
type Column struct {
	Stage entity.Stage  `json:"stage"`
	Leads []entity.Lead `json:"leads"`
	Count int           `json:"count"`
}

// View is the board as rendered: one column per stage, in stage order.
// Leads whose status matches no stage slug are not placed anywhere.
type View struct {
	Columns []Column `json:"columns"`
}

// BuildView groups leads under stage columns, preserving both the stage
// order and the lead order as listed. A lead lands in every column whose
// slug equals its status, so duplicate slugs show the lead more than once,
// same as the source board.
func BuildView(stages []entity.Stage, leads []entity.Lead) View {
	columns := make([]Column, 0, len(stages))
	for _, stage := range stages {
		column := Column{Stage: stage, Leads: []entity.Lead{}}
		for _, lead := range leads {
			if lead.Status == stage.Slug {
				column.Leads = append(column.Leads, lead)
			}
		}
		column.Count = len(column.Leads)
		columns = append(columns, column)
	}
	return View{Columns: columns}
}

// FindLead returns the first lead with the given id, or nil.
func (v View) FindLead(id string) *entity.Lead {
	for ci := range v.Columns {
		for li := range v.Columns[ci].Leads {
			if v.Columns[ci].Leads[li].ID == id {
				return &v.Columns[ci].Leads[li]
			}
		}
	}
	return nil
}
