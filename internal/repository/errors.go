// Package repository implements the assignment store. Sentinel errors defined
// here let handlers distinguish failure scenarios: ErrAssignmentNotFound maps
// to HTTP 404 and ErrSeatTaken to HTTP 409.
package repository

import "errors"

// ErrAssignmentNotFound is returned when an assignment lookup, update or
// delete matches no row. Deletion of a missing id is reported with this
// error rather than treated as fatal.
var ErrAssignmentNotFound = errors.New("assignment not found")

// ErrSeatTaken is returned when a create or seat update collides with a seat
// already held by another assignment for the same event and venue. It is the
// store-level backstop for the no-overlap invariant: the per-seat unique key
// makes it hold even when two sessions race past the in-memory check.
var ErrSeatTaken = errors.New("seat already assigned")
