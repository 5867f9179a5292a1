package repository

import (
	"context"
	"sync"
	"time"

	"github.com/eduvision/seat-assignment/internal/model"
	"github.com/eduvision/seat-assignment/internal/seating"
	"github.com/eduvision/seat-assignment/internal/venue"
)

// MemoryStore is an in-memory AssignmentStore with the same semantics as the
// MySQL-backed repo, including per-seat uniqueness. It backs tests and local
// runs without a database.
type MemoryStore struct {
	mu     sync.Mutex
	nextID uint64
	byID   map[uint64]*model.SeatAssignment
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1, byID: make(map[uint64]*model.SeatAssignment)}
}

// ListByEvent returns copies of all assignments for an event/venue, oldest first.
func (m *MemoryStore) ListByEvent(_ context.Context, eventID uint64, venueType string) ([]model.SeatAssignment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.SeatAssignment
	for id := uint64(1); id < m.nextID; id++ {
		a, ok := m.byID[id]
		if !ok || a.EventID != eventID || a.VenueType != venueType {
			continue
		}
		out = append(out, copyAssignment(a))
	}
	return out, nil
}

// GetByID returns a copy of one assignment or ErrAssignmentNotFound.
func (m *MemoryStore) GetByID(_ context.Context, id uint64) (*model.SeatAssignment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.byID[id]
	if !ok {
		return nil, ErrAssignmentNotFound
	}
	cp := copyAssignment(a)
	return &cp, nil
}

// Create stores a new assignment, rejecting any seat overlap with ErrSeatTaken.
func (m *MemoryStore) Create(_ context.Context, a *model.SeatAssignment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.overlaps(a.EventID, a.VenueType, a.SeatNumbers, 0) {
		return ErrSeatTaken
	}
	now := time.Now().UTC()
	a.ID = m.nextID
	m.nextID++
	a.CreatedAt = now
	a.UpdatedAt = now
	cp := copyAssignment(a)
	m.byID[a.ID] = &cp
	return nil
}

// UpdateSeats replaces an assignment's seat set, ignoring its own prior seats
// in the overlap check and recomputing the row set.
func (m *MemoryStore) UpdateSeats(_ context.Context, id uint64, seatNumbers []int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.byID[id]
	if !ok {
		return ErrAssignmentNotFound
	}
	if m.overlaps(a.EventID, a.VenueType, seatNumbers, id) {
		return ErrSeatTaken
	}
	cfg, found := venue.Get(a.VenueType)
	if !found {
		return seating.ErrUnknownVenue
	}
	a.SeatNumbers = append([]int(nil), seatNumbers...)
	a.RowNumbers = venue.RowsFor(seatNumbers, cfg.SeatsPerRow)
	a.UpdatedAt = time.Now().UTC()
	return nil
}

// Delete removes an assignment, freeing its seats; missing ids report
// ErrAssignmentNotFound.
func (m *MemoryStore) Delete(_ context.Context, id uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return ErrAssignmentNotFound
	}
	delete(m.byID, id)
	return nil
}

// overlaps must be called with the mutex held.
func (m *MemoryStore) overlaps(eventID uint64, venueType string, seats []int, excludeID uint64) bool {
	taken := make(map[int]struct{})
	for id, a := range m.byID {
		if id == excludeID || a.EventID != eventID || a.VenueType != venueType {
			continue
		}
		for _, s := range a.SeatNumbers {
			taken[s] = struct{}{}
		}
	}
	for _, s := range seats {
		if _, ok := taken[s]; ok {
			return true
		}
	}
	return false
}

func copyAssignment(a *model.SeatAssignment) model.SeatAssignment {
	cp := *a
	cp.SeatNumbers = append([]int(nil), a.SeatNumbers...)
	cp.RowNumbers = append([]int(nil), a.RowNumbers...)
	return cp
}
