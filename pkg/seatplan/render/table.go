// Package render builds display views of a grouped allocation.
package render

import (
	"strconv"

	"seatplan/pkg/seatplan/group"
)

// Row is one display row of the allocation table.
type Row struct {
	// RoomID is set only on the first row of a room's group; continuation
	// rows carry an empty room cell.
	RoomID string `json:"room_id"`
	// RoomSpan is the number of rows in the room's group; set only on the
	// first row of the group.
	RoomSpan int `json:"room_span,omitempty"`
	// ContinuesRoom marks a row belonging to the same room as the row
	// before it.
	ContinuesRoom bool `json:"continues_room,omitempty"`
	// Branch is the department label.
	Branch string `json:"branch"`
	// RollRange is the display roll-number range, e.g. "1 to 30".
	RollRange string `json:"roll_range"`
	// TotalStudents is the number of students in the range.
	TotalStudents int `json:"total_students"`
	// LeftHandedChairs is the display count of left-handed chairs; empty
	// when none are required.
	LeftHandedChairs string `json:"left_handed_chairs"`
}

// Summary carries the totals and schedule strings shown above the table.
type Summary struct {
	// RoomsUsed is the number of rooms reported by the service.
	RoomsUsed int `json:"rooms_used"`
	// TotalAllocated is the number of students reported by the service.
	TotalAllocated int `json:"total_allocated"`
	// Date is the exam date with weekday, e.g. "25/12/2023 (Monday)".
	Date string `json:"date"`
	// TimeRange is the 12-hour display time range.
	TimeRange string `json:"time_range"`
}

// Table is the merge-annotated row set for one allocation result. The rows
// are ordered by first-seen room, then input order within each room; the
// first row of each room carries the room id and span, so any target can
// realize a vertically merged room cell.
type Table struct {
	Summary Summary `json:"summary"`
	Rows    []Row   `json:"rows"`
}

// Build flattens a grouped allocation into a merge-annotated table.
func Build(g group.Grouped, sum Summary) Table {
	t := Table{Summary: sum, Rows: make([]Row, 0, g.Len())}
	for _, roomID := range g.Order {
		recs := g.Rooms[roomID]
		for i, rec := range recs {
			row := Row{
				Branch:           rec.Branch,
				RollRange:        rec.RollRange(),
				TotalStudents:    rec.TotalStudents,
				LeftHandedChairs: leftHandedDisplay(rec.LeftHandedChairs),
			}
			if i == 0 {
				row.RoomID = roomID
				row.RoomSpan = len(recs)
			} else {
				row.ContinuesRoom = true
			}
			t.Rows = append(t.Rows, row)
		}
	}
	return t
}

// leftHandedDisplay renders a chair count, with zero shown as empty rather
// than the literal "0".
func leftHandedDisplay(n int) string {
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n)
}
