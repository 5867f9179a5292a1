package model

import "time"

// SeatAssignment is a claim on a set of seat numbers within one event and
// venue for a department/year group, optionally restricted by gender.
//
// Fields:
//  ID          – primary key identifier, set by the store on creation.
//  EventID     – owning event; opaque to this service.
//  VenueType   – venue type key ("seminar-hall", "solar-shade"); fixed at creation.
//  Department  – department code from the catalog.
//  Year        – year label from the catalog.
//  Gender      – optional gender restriction; empty means open to all.
//  SeatNumbers – claimed seat numbers, unique per (event, venue).
//  RowNumbers  – rows implied by SeatNumbers; denormalized for display and
//                recomputed whenever SeatNumbers changes.
//  CreatedAt   – creation timestamp.
//  UpdatedAt   – last update timestamp.
type SeatAssignment struct {
	ID          uint64    `json:"id"`
	EventID     uint64    `json:"event_id"`
	VenueType   string    `json:"venue_type"`
	Department  string    `json:"department"`
	Year        string    `json:"year"`
	Gender      string    `json:"gender,omitempty"`
	SeatNumbers []int     `json:"seat_numbers"`
	RowNumbers  []int     `json:"row_numbers"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HoldsSeat reports whether the assignment claims the given seat number.
func (a *SeatAssignment) HoldsSeat(seatNumber int) bool {
	for _, s := range a.SeatNumbers {
		if s == seatNumber {
			return true
		}
	}
	return false
}
