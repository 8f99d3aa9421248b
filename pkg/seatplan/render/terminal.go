package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	summaryStyle = lipgloss.NewStyle().Bold(true)
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	ruleStyle    = lipgloss.NewStyle().Faint(true)
	roomStyle    = lipgloss.NewStyle().Bold(true)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

// columnTitles match the on-screen table head of the arrangement.
var columnTitles = [5]string{
	"Room No.", "Dept.", "Roll No.", "Total No. of Students", "Left-Handed Chairs Required",
}

// ErrorBanner renders a single-line error message. Validation, transport
// and service failures all surface through this one style.
func ErrorBanner(message string) string {
	return errorStyle.Render(message)
}

// Terminal renders the table for an ANSI terminal. Room groups are merged
// visually: continuation rows leave the room column blank, and a horizontal
// rule marks the boundary between one room's rows and the next.
func (t Table) Terminal() string {
	widths := t.columnWidths()

	var b strings.Builder
	b.WriteString(summaryStyle.Render(fmt.Sprintf(
		"Total Halls: %d    Total Students: %d", t.Summary.RoomsUsed, t.Summary.TotalAllocated)))
	b.WriteByte('\n')
	b.WriteString(summaryStyle.Render(fmt.Sprintf(
		"Date: %s    Time: %s", t.Summary.Date, t.Summary.TimeRange)))
	b.WriteString("\n\n")

	headerCells := make([]string, len(columnTitles))
	for i, title := range columnTitles {
		headerCells[i] = pad(title, widths[i])
	}
	b.WriteString(headerStyle.Render(strings.Join(headerCells, "  ")))
	b.WriteByte('\n')
	b.WriteString(rule(widths))
	b.WriteByte('\n')

	for i, row := range t.Rows {
		if i > 0 && !row.ContinuesRoom {
			b.WriteString(rule(widths))
			b.WriteByte('\n')
		}
		cells := []string{
			roomStyle.Render(pad(row.RoomID, widths[0])),
			pad(row.Branch, widths[1]),
			pad(row.RollRange, widths[2]),
			pad(fmt.Sprintf("%d", row.TotalStudents), widths[3]),
			pad(row.LeftHandedChairs, widths[4]),
		}
		b.WriteString(strings.Join(cells, "  "))
		b.WriteByte('\n')
	}

	return b.String()
}

// columnWidths sizes each column to its widest cell, headers included.
func (t Table) columnWidths() [5]int {
	var widths [5]int
	for i, title := range columnTitles {
		widths[i] = len(title)
	}
	for _, row := range t.Rows {
		cells := [5]string{
			row.RoomID, row.Branch, row.RollRange,
			fmt.Sprintf("%d", row.TotalStudents), row.LeftHandedChairs,
		}
		for i, cell := range cells {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	return widths
}

// rule draws a horizontal merge-boundary line across all columns.
func rule(widths [5]int) string {
	total := 0
	for _, w := range widths {
		total += w
	}
	total += 2 * (len(widths) - 1)
	return ruleStyle.Render(strings.Repeat("─", total))
}

// pad right-pads a cell to the column width.
func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
