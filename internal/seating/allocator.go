// Package seating implements the seat-assignment engine: request validation,
// overlap checking, per-seat display state resolution and aggregate stats.
// Everything here is a pure function of its inputs; persistence lives in the
// repository package.
package seating

import (
	"sort"

	"github.com/eduvision/seat-assignment/internal/model"
	"github.com/eduvision/seat-assignment/internal/venue"
)

// Request carries an operator's proposed assignment before persistence.
type Request struct {
	EventID     uint64
	VenueType   string
	Department  string
	Year        string
	Gender      string // empty = open to all
	SeatNumbers []int
}

// Validate checks a request against the venue geometry and the closed
// catalogs. It returns the first validation failure found, or nil. Overlap
// with existing assignments is checked separately by Conflicts so that the
// caller can report conflicting seats distinctly from invalid input.
func Validate(req Request) error {
	if req.Department == "" {
		return ErrMissingDepartment
	}
	if req.Year == "" {
		return ErrMissingYear
	}
	if len(req.SeatNumbers) == 0 {
		return ErrEmptySelection
	}
	if !venue.ValidDepartment(req.Department) {
		return ErrUnknownDepartment
	}
	if !venue.ValidYear(req.Year) {
		return ErrUnknownYear
	}
	if !venue.ValidGender(req.Gender) {
		return ErrUnknownGender
	}
	cfg, ok := venue.Get(req.VenueType)
	if !ok {
		return ErrUnknownVenue
	}
	var out []int
	for _, s := range dedupeSeats(req.SeatNumbers) {
		if !cfg.InBounds(s) {
			out = append(out, s)
		}
	}
	if len(out) > 0 {
		return &SeatRangeError{Seats: out, TotalSeats: cfg.TotalSeats}
	}
	return nil
}

// Conflicts returns the requested seats already held by any existing
// assignment other than excludeID. An excludeID of zero excludes nothing; a
// non-zero excludeID makes updates ignore the assignment's own prior seats.
// A nil result means the request is free of overlap.
func Conflicts(requested []int, existing []model.SeatAssignment, excludeID uint64) []int {
	taken := make(map[int]struct{})
	for i := range existing {
		if excludeID != 0 && existing[i].ID == excludeID {
			continue
		}
		for _, s := range existing[i].SeatNumbers {
			taken[s] = struct{}{}
		}
	}
	var out []int
	for _, s := range dedupeSeats(requested) {
		if _, ok := taken[s]; ok {
			out = append(out, s)
		}
	}
	sort.Ints(out)
	return out
}

// Normalize returns the request's seat numbers deduplicated and sorted, with
// the matching derived row numbers for the venue. Validate must have passed.
func Normalize(req Request) (seats, rows []int) {
	cfg, _ := venue.Get(req.VenueType)
	seats = dedupeSeats(req.SeatNumbers)
	rows = venue.RowsFor(seats, cfg.SeatsPerRow)
	return seats, rows
}

func dedupeSeats(in []int) []int {
	seen := make(map[int]struct{}, len(in))
	out := make([]int, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Ints(out)
	return out
}
