// Package group partitions allocation records by room.
package group

import "seatplan/pkg/seatplan/models"

// Grouped is an ordered per-room partition of allocation records.
type Grouped struct {
	// Order lists room ids in the order each one first appeared.
	Order []string
	// Rooms maps a room id to its records in input order.
	Rooms map[string][]models.AllocationRecord
}

// ByRoom partitions records by room id. Key order equals first-seen order
// and each room's records keep their relative input order; a room's records
// need not be contiguous in the input. The partition is lossless: no record
// is created or dropped.
func ByRoom(records []models.AllocationRecord) Grouped {
	g := Grouped{Rooms: make(map[string][]models.AllocationRecord, len(records))}
	for _, rec := range records {
		if _, seen := g.Rooms[rec.RoomID]; !seen {
			g.Order = append(g.Order, rec.RoomID)
		}
		g.Rooms[rec.RoomID] = append(g.Rooms[rec.RoomID], rec)
	}
	return g
}

// Flatten concatenates all groups in key order, then intra-group order.
// The result is a permutation of the input to ByRoom.
func (g Grouped) Flatten() []models.AllocationRecord {
	var out []models.AllocationRecord
	for _, roomID := range g.Order {
		out = append(out, g.Rooms[roomID]...)
	}
	return out
}

// Len returns the total number of records across all groups.
func (g Grouped) Len() int {
	n := 0
	for _, recs := range g.Rooms {
		n += len(recs)
	}
	return n
}
