// Package models defines data structures for the seating allocation client.
package models

// AllocationRecord represents one contiguous roll-number range seated in one
// room for one branch segment.
type AllocationRecord struct {
	// RoomID identifies the examination room.
	RoomID string `json:"room_id"`
	// Branch is the department label for the range.
	Branch string `json:"branch"`
	// FirstRoll is the first roll identifier in the range.
	FirstRoll string `json:"first_roll"`
	// LastRoll is the last roll identifier in the range.
	LastRoll string `json:"last_roll"`
	// TotalStudents is the number of students seated in the range.
	TotalStudents int `json:"total_students"`
	// LeftHandedChairs is the number of left-handed chairs required.
	// Zero (or a null in the response) means none are required.
	LeftHandedChairs int `json:"left_handed_chairs,omitempty"`
}

// RollRange returns the display form of the record's roll-number range.
func (r AllocationRecord) RollRange() string {
	return r.FirstRoll + " to " + r.LastRoll
}

// AllocationResult represents the allocation service response.
type AllocationResult struct {
	// Success reports whether the service produced an allocation.
	Success bool `json:"success"`
	// RoomsUsed is the number of rooms the service claims to have used.
	RoomsUsed int `json:"rooms_used"`
	// TotalAllocated is the number of students the service claims to have seated.
	TotalAllocated int `json:"total_allocated"`
	// Allocation is the ordered list of per-range records.
	Allocation []AllocationRecord `json:"allocation"`
	// Error carries the service failure message when Success is false.
	Error string `json:"error,omitempty"`
}
