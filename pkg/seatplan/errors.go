// Package seatplan implements the exam-seating allocation client core:
// input validation, request dispatch, result grouping, and the session
// state shared by the table and document views.
package seatplan

import (
	"errors"

	"seatplan/pkg/seatplan/client"
)

// ErrAllocationInFlight rejects a second allocation request while one is
// still pending.
var ErrAllocationInFlight = errors.New("an allocation request is already in flight")

// ErrNoResult indicates the session holds no successful allocation yet.
var ErrNoResult = errors.New("no allocation result available")

// UserMessage maps any pipeline error to the single-line message shown to
// the user. Validation, transport and service failures all surface the
// same way.
func UserMessage(err error) string {
	var transportErr *client.TransportError
	if errors.As(err, &transportErr) {
		return "An error occurred: " + transportErr.Err.Error()
	}
	var serviceErr *client.ServiceError
	if errors.As(err, &serviceErr) {
		return serviceErr.Message
	}
	return err.Error()
}
