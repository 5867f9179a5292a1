package seating

import (
	"sort"

	"github.com/eduvision/seat-assignment/internal/model"
)

// Selection is the transient working set of seats an operator is choosing
// before submitting an assignment. It is never persisted; it is discarded on
// submit or explicit clear and reset whenever the department or year changes
// so an in-progress selection cannot bleed across categories.
type Selection struct {
	department string
	year       string
	seats      map[int]struct{}
}

// NewSelection returns an empty selection bound to a department/year pair.
func NewSelection(department, year string) *Selection {
	return &Selection{department: department, year: year, seats: make(map[int]struct{})}
}

// Has reports whether the seat is in the selection.
func (s *Selection) Has(seatNumber int) bool {
	_, ok := s.seats[seatNumber]
	return ok
}

// Len returns the number of selected seats.
func (s *Selection) Len() int { return len(s.seats) }

// Seats returns the selected seat numbers in ascending order.
func (s *Selection) Seats() []int {
	out := make([]int, 0, len(s.seats))
	for n := range s.seats {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.seats = make(map[int]struct{})
}

// SetCategory updates the department/year pair the selection is for. Any
// change to either value resets the selected seats.
func (s *Selection) SetCategory(department, year string) {
	if department != s.department || year != s.year {
		s.Clear()
	}
	s.department = department
	s.year = year
}

// Toggle flips a seat in or out of the selection. A seat already claimed by
// an existing assignment is rejected with a ConflictError and the selection
// is left untouched.
func (s *Selection) Toggle(seatNumber int, assignments []model.SeatAssignment) error {
	if !s.Has(seatNumber) && findHolder(seatNumber, assignments) != nil {
		return &ConflictError{Seats: []int{seatNumber}}
	}
	if s.Has(seatNumber) {
		delete(s.seats, seatNumber)
	} else {
		s.seats[seatNumber] = struct{}{}
	}
	return nil
}

// CanClick reports whether a seat click should be forwarded to a selection
// toggle: never in read-only mode, always in faculty mode (viewer == nil),
// and for students only when the seat is available to them or assigned to
// their own group.
func CanClick(seatNumber int, assignments []model.SeatAssignment, viewer *ViewerContext, readOnly bool) bool {
	if readOnly {
		return false
	}
	if viewer == nil {
		return true
	}
	switch Resolve(seatNumber, assignments, nil, viewer).State {
	case Available, AssignedEligible:
		return true
	}
	return false
}
