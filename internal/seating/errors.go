package seating

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel validation errors. Each failure class gets its own value so that
// handlers can render a specific message and status code.
var (
	ErrMissingDepartment = errors.New("department is required")
	ErrMissingYear       = errors.New("year is required")
	ErrEmptySelection    = errors.New("at least one seat must be selected")
	ErrUnknownDepartment = errors.New("unknown department")
	ErrUnknownYear       = errors.New("unknown year")
	ErrUnknownGender     = errors.New("unknown gender")
	ErrUnknownVenue      = errors.New("unknown venue type")
)

// SeatRangeError reports seat numbers outside the venue bounds.
type SeatRangeError struct {
	Seats      []int
	TotalSeats int
}

func (e *SeatRangeError) Error() string {
	return fmt.Sprintf("seats %s out of range 1..%d", joinSeats(e.Seats), e.TotalSeats)
}

// ConflictError reports requested seats already held by another assignment.
// The whole request is rejected; no partial assignment happens.
type ConflictError struct {
	Seats []int
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("seats %s already assigned", joinSeats(e.Seats))
}

func joinSeats(seats []int) string {
	sorted := append([]int(nil), seats...)
	sort.Ints(sorted)
	parts := make([]string, len(sorted))
	for i, s := range sorted {
		parts[i] = fmt.Sprint(s)
	}
	return strings.Join(parts, ",")
}
