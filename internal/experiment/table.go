package experiment

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#3cc5ff"))

// RenderTable - Renders the summary as a bordered console table with the same columns as the CSV
func RenderTable(rows []SummaryRow) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(SummaryColumns...)

	for _, row := range rows {
		t.Row(row.fields()...)
	}

	return t.String()
}
