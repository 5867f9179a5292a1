package seating

import "github.com/eduvision/seat-assignment/internal/model"

// SeatState is the display state of one seat for one viewer.
type SeatState string

const (
	// Selected means the seat is part of the operator's in-progress
	// selection. Takes precedence over every assignment state.
	Selected SeatState = "selected"
	// Available means no assignment claims the seat.
	Available SeatState = "available"
	// AssignedVisible means the seat is claimed and the viewer (faculty)
	// sees the full assignment detail.
	AssignedVisible SeatState = "assigned"
	// AssignedEligible means the seat is claimed by an assignment matching
	// the student viewer's department, year and gender.
	AssignedEligible SeatState = "eligible"
	// AssignedRestricted means the seat is claimed by an assignment the
	// student viewer does not match; the holding department is not revealed.
	AssignedRestricted SeatState = "restricted"
)

// ViewerContext identifies a student viewer. A nil ViewerContext means
// faculty mode: every assignment is shown with full detail. The context is
// always threaded explicitly; it is never read from ambient state.
type ViewerContext struct {
	Department string
	Year       string
	Gender     string
}

// Eligible reports whether the viewer qualifies for the assignment: the
// department and year must match, and the assignment's gender must be unset
// or equal to the viewer's.
func (v *ViewerContext) Eligible(a *model.SeatAssignment) bool {
	return a.Department == v.Department &&
		a.Year == v.Year &&
		(a.Gender == "" || a.Gender == v.Gender)
}

// Resolved pairs a seat's state with the department that holds it. Department
// is empty for Available and Selected seats, and deliberately empty for
// AssignedRestricted so student views never leak foreign assignment detail.
type Resolved struct {
	State      SeatState `json:"state"`
	Department string    `json:"department,omitempty"`
}

// Resolve computes the display state of one seat. selection may be nil when
// there is no in-progress selection (student views).
func Resolve(seatNumber int, assignments []model.SeatAssignment, selection *Selection, viewer *ViewerContext) Resolved {
	if selection != nil && selection.Has(seatNumber) {
		return Resolved{State: Selected}
	}
	holder := findHolder(seatNumber, assignments)
	if holder == nil {
		return Resolved{State: Available}
	}
	if viewer == nil {
		return Resolved{State: AssignedVisible, Department: holder.Department}
	}
	if viewer.Eligible(holder) {
		return Resolved{State: AssignedEligible, Department: holder.Department}
	}
	return Resolved{State: AssignedRestricted}
}

// ResolveGrid resolves every seat of the venue in order 1..TotalSeats.
func ResolveGrid(totalSeats int, assignments []model.SeatAssignment, selection *Selection, viewer *ViewerContext) []Resolved {
	out := make([]Resolved, totalSeats)
	for i := range out {
		out[i] = Resolve(i+1, assignments, selection, viewer)
	}
	return out
}

func findHolder(seatNumber int, assignments []model.SeatAssignment) *model.SeatAssignment {
	for i := range assignments {
		if assignments[i].HoldsSeat(seatNumber) {
			return &assignments[i]
		}
	}
	return nil
}
