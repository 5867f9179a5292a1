// Package queue defines message payloads exchanged over the message broker
// and the background consumer that records them.
package queue

// AssignmentChangedEvent is published after every confirmed create, update or
// delete of a seat assignment. It carries enough detail for the realtime
// fan-out service and audit consumers to act without querying the database.
type AssignmentChangedEvent struct {
	Action       string `json:"action"` // created | updated | deleted
	AssignmentID uint64 `json:"assignment_id"`
	EventID      uint64 `json:"event_id"`
	VenueType    string `json:"venue_type"`
	Department   string `json:"department"`
	Year         string `json:"year"`
	Gender       string `json:"gender,omitempty"`
	SeatNumbers  []int  `json:"seat_numbers"`
	RowNumbers   []int  `json:"row_numbers"`
	OccurredAt   string `json:"occurred_at"`
}
