package repository

import (
	"context"

	"github.com/eduvision/seat-assignment/internal/model"
)

// AssignmentStore is the persistence boundary of the seat-assignment engine.
// Two implementations exist: AssignmentRepo backed by MySQL and MemoryStore
// used in tests. Both enforce seat uniqueness per (event_id, venue_type).
type AssignmentStore interface {
	// ListByEvent returns all assignments for an event and venue ordered by
	// creation time.
	ListByEvent(ctx context.Context, eventID uint64, venueType string) ([]model.SeatAssignment, error)
	// GetByID returns one assignment or ErrAssignmentNotFound.
	GetByID(ctx context.Context, id uint64) (*model.SeatAssignment, error)
	// Create persists a new assignment and populates its ID and timestamps.
	// Returns ErrSeatTaken when any seat is already held.
	Create(ctx context.Context, a *model.SeatAssignment) error
	// UpdateSeats replaces the assignment's seat set atomically; the row set
	// is recomputed from the new seats. The assignment's own prior seats do
	// not count as conflicts.
	UpdateSeats(ctx context.Context, id uint64, seatNumbers []int) error
	// Delete removes the assignment, freeing its seats immediately.
	Delete(ctx context.Context, id uint64) error
}
