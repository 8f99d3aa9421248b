package group

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seatplan/pkg/seatplan/models"
)

func rec(room, branch string) models.AllocationRecord {
	return models.AllocationRecord{RoomID: room, Branch: branch}
}

func TestByRoomFirstSeenOrder(t *testing.T) {
	records := []models.AllocationRecord{
		rec("A", "CSE"), rec("B", "ECE"), rec("A", "ME"), rec("C", "CE"),
	}

	g := ByRoom(records)

	assert.Equal(t, []string{"A", "B", "C"}, g.Order)
	require.Len(t, g.Rooms["A"], 2)
	assert.Equal(t, "CSE", g.Rooms["A"][0].Branch)
	assert.Equal(t, "ME", g.Rooms["A"][1].Branch)
	assert.Len(t, g.Rooms["B"], 1)
	assert.Len(t, g.Rooms["C"], 1)
}

func TestByRoomLossless(t *testing.T) {
	records := []models.AllocationRecord{
		rec("R2", "CSE"), rec("R1", "CSE"), rec("R2", "ECE"),
		rec("R3", "ME"), rec("R1", "ECE"), rec("R2", "CE"),
	}

	g := ByRoom(records)

	assert.Equal(t, len(records), g.Len())

	// Every input record survives, counted per room/branch pair.
	counts := make(map[string]int)
	for _, r := range records {
		counts[r.RoomID+"/"+r.Branch]++
	}
	for _, r := range g.Flatten() {
		counts[r.RoomID+"/"+r.Branch]--
	}
	for key, n := range counts {
		assert.Zerof(t, n, "record %s gained or lost", key)
	}
}

func TestByRoomIdempotent(t *testing.T) {
	records := []models.AllocationRecord{
		rec("R1", "CSE"), rec("R2", "ECE"), rec("R1", "ME"),
	}

	first := ByRoom(records)
	second := ByRoom(records)

	assert.Equal(t, first.Order, second.Order)
	assert.Equal(t, first.Rooms, second.Rooms)
}

func TestByRoomEmpty(t *testing.T) {
	g := ByRoom(nil)

	assert.Empty(t, g.Order)
	assert.Empty(t, g.Rooms)
	assert.Zero(t, g.Len())
	assert.Empty(t, g.Flatten())
}
