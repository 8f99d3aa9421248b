// Package export writes a grouped allocation to a spreadsheet document.
package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"seatplan/pkg/seatplan/group"
	"seatplan/pkg/seatplan/models"
	"seatplan/pkg/seatplan/render"
)

// Header holds the three institutional header lines printed at the top of
// the document.
type Header struct {
	Institution string
	University  string
	Title       string
}

// DefaultHeader returns the standard institutional header.
func DefaultHeader() Header {
	return Header{
		Institution: "SCMS SCHOOL OF ENGINEERING AND TECHNOLOGY",
		University:  "APJ ABDUL KALAM TECHNOLOGICAL UNIVERSITY",
		Title:       "Internal Examination - Seating Arrangement",
	}
}

// Options configures document generation.
type Options struct {
	// Header is the institutional header; zero fields fall back to
	// DefaultHeader.
	Header Header
	// SheetName names the single sheet. Defaults to "Seating Arrangement".
	SheetName string
}

// columnTitles is the body table head.
var columnTitles = [5]string{
	"Room No.", "Dept.", "Roll No.", "Total Students", "Left-Handed Chairs",
}

// columnWidths holds per-column display widths.
var columnWidths = [5]float64{14, 16, 24, 18, 22}

// headerFillColor matches the on-screen table head color.
const headerFillColor = "#667EEA"

// Filename returns the artifact name for an exam date, replacing the
// path-unsafe date separators with dashes.
func Filename(date string) string {
	return "seating_arrangement_" + strings.ReplaceAll(date, "/", "-") + ".xlsx"
}

// Document builds the seating-arrangement workbook for a grouped
// allocation and returns its serialized bytes. The body uses a blank room
// cell for continuation rows; the top border of each group's first row is
// the merge-boundary rule.
func Document(g group.Grouped, sum render.Summary, sched models.ExamSchedule, opts Options) ([]byte, error) {
	if opts.SheetName == "" {
		opts.SheetName = "Seating Arrangement"
	}
	if (opts.Header == Header{}) {
		opts.Header = DefaultHeader()
	}

	f := excelize.NewFile()
	// WriteToBuffer needs the file open, so Close only on error paths.
	sheet := opts.SheetName
	index, err := f.NewSheet(sheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	if err := writeTitleBlock(f, sheet, opts.Header); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeMetadataBlock(f, sheet, sum, sched); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeBody(f, sheet, g); err != nil {
		f.Close()
		return nil, err
	}

	for i := range columnTitles {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to convert column number: %w", err)
		}
		if err := f.SetColWidth(sheet, col, col, columnWidths[i]); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	f.Close()
	return buf.Bytes(), nil
}

// writeTitleBlock writes the three centered institutional header lines,
// each merged across the table width.
func writeTitleBlock(f *excelize.File, sheet string, h Header) error {
	lines := []struct {
		row  int
		text string
		size float64
	}{
		{1, h.Institution, 16},
		{2, h.University, 12},
		{3, h.Title, 14},
	}

	for _, line := range lines {
		style, err := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{
				Bold: true,
				Size: line.size,
			},
			Alignment: &excelize.Alignment{
				Horizontal: "center",
				Vertical:   "center",
			},
		})
		if err != nil {
			return fmt.Errorf("failed to create title style: %w", err)
		}
		start, _ := excelize.CoordinatesToCellName(1, line.row)
		end, _ := excelize.CoordinatesToCellName(len(columnTitles), line.row)
		if err := f.MergeCell(sheet, start, end); err != nil {
			return fmt.Errorf("failed to merge title cells: %w", err)
		}
		if err := f.SetCellValue(sheet, start, line.text); err != nil {
			return fmt.Errorf("failed to set title cell: %w", err)
		}
		if err := f.SetCellStyle(sheet, start, end, style); err != nil {
			return fmt.Errorf("failed to set title style: %w", err)
		}
	}
	return nil
}

// writeMetadataBlock writes the date/time and totals summary under the
// title block.
func writeMetadataBlock(f *excelize.File, sheet string, sum render.Summary, sched models.ExamSchedule) error {
	cells := map[string]string{
		"A5": "DATE: " + sched.DateWithDay,
		"A6": "TIME: " + sched.TimeRange,
		"D5": fmt.Sprintf("Total Halls: %d", sum.RoomsUsed),
		"D6": fmt.Sprintf("Total Students: %d", sum.TotalAllocated),
	}
	for cell, value := range cells {
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("failed to set metadata cell %s: %w", cell, err)
		}
	}
	return nil
}

// writeBody writes the table head and the per-room body rows starting at
// row 8.
func writeBody(f *excelize.File, sheet string, g group.Grouped) error {
	const headRow = 8

	headStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Color: "FFFFFF",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{headerFillColor},
			Pattern: 1,
		},
		Border: fullBorder(),
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create head style: %w", err)
	}

	for col, title := range columnTitles {
		cell, err := excelize.CoordinatesToCellName(col+1, headRow)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return fmt.Errorf("failed to set head cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, headStyle); err != nil {
			return fmt.Errorf("failed to set head style: %w", err)
		}
	}

	bodyStyle, err := f.NewStyle(&excelize.Style{
		Border:    fullBorder(),
		Alignment: &excelize.Alignment{Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create body style: %w", err)
	}
	// Continuation rows omit the top border in the room column so the
	// group reads as one merged cell.
	roomStartStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Border:    fullBorder(),
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create room style: %w", err)
	}
	roomContStyle, err := f.NewStyle(&excelize.Style{
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create continuation style: %w", err)
	}

	rowNum := headRow
	for _, roomID := range g.Order {
		for i, rec := range g.Rooms[roomID] {
			rowNum++

			roomCell, _ := excelize.CoordinatesToCellName(1, rowNum)
			roomValue := ""
			roomStyle := roomContStyle
			if i == 0 {
				roomValue = roomID
				roomStyle = roomStartStyle
			}
			if err := f.SetCellValue(sheet, roomCell, roomValue); err != nil {
				return fmt.Errorf("failed to set room cell %s: %w", roomCell, err)
			}
			if err := f.SetCellStyle(sheet, roomCell, roomCell, roomStyle); err != nil {
				return fmt.Errorf("failed to style room cell %s: %w", roomCell, err)
			}

			values := []interface{}{
				rec.Branch,
				rec.RollRange(),
				rec.TotalStudents,
				leftHandedCell(rec.LeftHandedChairs),
			}
			for col, value := range values {
				cell, err := excelize.CoordinatesToCellName(col+2, rowNum)
				if err != nil {
					return fmt.Errorf("failed to convert coordinates: %w", err)
				}
				if err := f.SetCellValue(sheet, cell, value); err != nil {
					return fmt.Errorf("failed to set body cell %s: %w", cell, err)
				}
				if err := f.SetCellStyle(sheet, cell, cell, bodyStyle); err != nil {
					return fmt.Errorf("failed to style body cell %s: %w", cell, err)
				}
			}
		}
	}
	return nil
}

// leftHandedCell keeps a zero chair count out of the document.
func leftHandedCell(n int) interface{} {
	if n <= 0 {
		return ""
	}
	return n
}

// fullBorder returns a thin border on all four sides.
func fullBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}
}
