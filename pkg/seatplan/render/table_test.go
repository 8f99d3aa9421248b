package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seatplan/pkg/seatplan/group"
	"seatplan/pkg/seatplan/models"
)

// sample mirrors the canonical two-rooms scenario: R1 holds two branch
// segments, R2 holds one.
func sample() (group.Grouped, Summary) {
	records := []models.AllocationRecord{
		{RoomID: "R1", Branch: "CSE", FirstRoll: "1", LastRoll: "30", TotalStudents: 30, LeftHandedChairs: 2},
		{RoomID: "R1", Branch: "ECE", FirstRoll: "1", LastRoll: "10", TotalStudents: 10},
		{RoomID: "R2", Branch: "CSE", FirstRoll: "31", LastRoll: "50", TotalStudents: 20},
	}
	sum := Summary{
		RoomsUsed:      2,
		TotalAllocated: 60,
		Date:           "25/12/2023 (Monday)",
		TimeRange:      "9:00 AM - 12:00 PM",
	}
	return group.ByRoom(records), sum
}

func TestBuildMergeAnnotations(t *testing.T) {
	g, sum := sample()
	table := Build(g, sum)

	require.Len(t, table.Rows, 3)

	first := table.Rows[0]
	assert.Equal(t, "R1", first.RoomID)
	assert.Equal(t, 2, first.RoomSpan)
	assert.False(t, first.ContinuesRoom)
	assert.Equal(t, "CSE", first.Branch)
	assert.Equal(t, "1 to 30", first.RollRange)
	assert.Equal(t, 30, first.TotalStudents)
	assert.Equal(t, "2", first.LeftHandedChairs)

	second := table.Rows[1]
	assert.Empty(t, second.RoomID)
	assert.Zero(t, second.RoomSpan)
	assert.True(t, second.ContinuesRoom)
	assert.Equal(t, "1 to 10", second.RollRange)
	assert.Empty(t, second.LeftHandedChairs, "zero chairs must render empty, not \"0\"")

	third := table.Rows[2]
	assert.Equal(t, "R2", third.RoomID)
	assert.Equal(t, 1, third.RoomSpan)
	assert.False(t, third.ContinuesRoom)
	assert.Empty(t, third.LeftHandedChairs)
}

func TestBuildIdempotent(t *testing.T) {
	g, sum := sample()

	first := Build(g, sum)
	second := Build(g, sum)

	assert.Equal(t, first, second)
	assert.Equal(t, first.Terminal(), second.Terminal())
}

func TestTerminalMergeBoundary(t *testing.T) {
	g, sum := sample()
	out := Build(g, sum).Terminal()

	lines := strings.Split(out, "\n")

	var r1Line, r2Line, contLine int
	for i, line := range lines {
		switch {
		case strings.Contains(line, "R1"):
			r1Line = i
		case strings.Contains(line, "R2"):
			r2Line = i
		case strings.Contains(line, "1 to 10"):
			contLine = i
		}
	}
	require.NotZero(t, r1Line)
	require.NotZero(t, r2Line)
	require.NotZero(t, contLine)

	// Continuation row follows its group head directly; a rule separates
	// the R1 group from the R2 group.
	assert.Equal(t, r1Line+1, contLine)
	assert.Equal(t, contLine+2, r2Line)
	assert.Contains(t, lines[contLine+1], "─")

	assert.Contains(t, out, "Total Halls: 2")
	assert.Contains(t, out, "Total Students: 60")
	assert.Contains(t, out, "25/12/2023 (Monday)")
}

func TestTableJSONRoundTrip(t *testing.T) {
	g, sum := sample()
	table := Build(g, sum)

	data, err := json.Marshal(table)
	require.NoError(t, err)

	var decoded Table
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, table, decoded)
}

func TestBuildEmpty(t *testing.T) {
	table := Build(group.ByRoom(nil), Summary{})
	assert.Empty(t, table.Rows)
}
