package display

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/backmassage/splitmux/internal/planner"
)

// RenderPlan returns the plan as a table: one row per unit with its output
// name, track, album, and (for chapters) the trim range.
func RenderPlan(plan *planner.Plan) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	trim := len(plan.Units) > 0 && plan.Units[0].Trim
	header := table.Row{"#", "Output", "Track", "Album"}
	if trim {
		header = append(header, "Start", "End")
	}
	tw.AppendHeader(header)

	for _, u := range plan.Units {
		row := table.Row{u.Index, u.Name, u.Tags.Track, u.Tags.Album}
		if trim {
			row = append(row, FormatTimestamp(u.Start), FormatTimestamp(u.End))
		}
		tw.AppendRow(row)
	}

	configs := []table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	}
	if trim {
		configs = append(configs,
			table.ColumnConfig{Number: 5, Align: text.AlignRight, AlignHeader: text.AlignLeft},
			table.ColumnConfig{Number: 6, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		)
	}
	tw.SetColumnConfigs(configs)
	return tw.Render()
}

// PrintPlan writes RenderPlan(plan) followed by a newline.
func PrintPlan(w io.Writer, plan *planner.Plan) {
	_, _ = io.WriteString(w, RenderPlan(plan)+"\n")
}
