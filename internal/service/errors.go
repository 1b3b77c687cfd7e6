// Package service implements the booking engine: grid reads, selection
// validation, and the atomic create/cancel/reset transactions with
// post-commit event broadcast.  The store, seat guard and event
// transport are injected as interfaces so the engine owns the logic
// while persistence and fan-out stay external collaborators.
package service

import "errors"

// Validation errors.  These are rejected before the store is touched;
// a failed validation is never partially applied.
var (
	// ErrEmptySelection is returned when a booking names no seats.
	ErrEmptySelection = errors.New("no seats selected")

	// ErrTooManySeats is returned when a booking exceeds the per-booking cap.
	ErrTooManySeats = errors.New("too many seats")

	// ErrDuplicateSeat is returned when the same seat id appears twice
	// in one request.
	ErrDuplicateSeat = errors.New("duplicate seat id")
)

// ErrSeatUnavailable is returned when a requested seat is already
// booked in the derivation scope.  The wrapped message names the
// conflicting seat.
var ErrSeatUnavailable = errors.New("seat unavailable")

// ErrLockBusy is returned when the per-seat booking guard cannot be
// acquired within the configured wait.  The condition is transient and
// the request can simply be retried.
var ErrLockBusy = errors.New("seat lock busy")

// RejectReason classifies why a tentative selection was refused.
// An empty reason means the selection is acceptable.
type RejectReason string

const (
	ReasonNone               RejectReason = ""
	ReasonOutOfBounds        RejectReason = "OutOfBounds"
	ReasonAlreadyBooked      RejectReason = "AlreadyBooked"
	ReasonSelectionLimit     RejectReason = "SelectionLimitExceeded"
	ReasonIsolationViolation RejectReason = "IsolationViolation"
)
