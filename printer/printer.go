package printer

import (
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"kubesql/executor"
	"kubesql/parser"
)

// Print lays the results out as one table: one row per resource kind, one
// column per context, each cell listing namespace/name pairs. Empty cells
// render as "-".
func Print(out io.Writer, plan *parser.QueryPlan, results []executor.Result) {
	var kinds []parser.ResourceType
	seen := make(map[parser.ResourceType]bool)
	for _, r := range results {
		if !seen[r.Kind] {
			seen[r.Kind] = true
			kinds = append(kinds, r.Kind)
		}
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader(append([]string{"KIND / CONTEXT"}, plan.Contexts...))
	table.SetAutoWrapText(false)
	table.SetRowLine(true)

	for _, kind := range kinds {
		row := []string{kind.String()}
		for _, context := range plan.Contexts {
			row = append(row, cell(results, kind, context))
		}
		table.Append(row)
	}
	table.Render()
}

func cell(results []executor.Result, kind parser.ResourceType, context string) string {
	var lines []string
	for _, r := range results {
		if r.Kind != kind || r.Context != context {
			continue
		}
		for _, name := range r.Names {
			lines = append(lines, r.Namespace+"/"+name)
		}
	}
	if len(lines) == 0 {
		return "-"
	}
	return strings.Join(lines, "\n")
}
