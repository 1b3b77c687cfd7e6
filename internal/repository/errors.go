// Package repository implements the booking record store on MySQL.
// This file defines sentinel errors shared by the repository so that
// higher layers can distinguish failure scenarios with errors.Is
// without inspecting SQL details.  A booking that exists but belongs
// to a different user is reported exactly like a missing one, so the
// API never leaks other users' booking ids.
package repository

import "errors"

// ErrBookingNotFound is returned when no booking with the given id is
// owned by the requesting user.  Handlers translate this into 404.
var ErrBookingNotFound = errors.New("booking not found")

// ErrBookingCancelled is returned when a cancellation targets a booking
// that is already cancelled.  Handlers translate this into 409; the
// stored record is left untouched.
var ErrBookingCancelled = errors.New("booking already cancelled")
