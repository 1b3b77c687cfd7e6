// Package queue defines the message payloads and topology used for
// real-time seat-change broadcasts.  Events flow through a durable
// topic exchange: one routing key per seat plus a grid-wide key, so
// subscribers can follow a single seat or the whole grid.  Delivery is
// best effort; clients reconcile by re-requesting the grid.
package queue

import "github.com/DevXSoni021/GreenStitch-Assignment/internal/seating"

// Exchange is the topic exchange all seat events are published to.
const Exchange = "seat-events"

// GridKey is the routing key for grid-wide events.  Per-seat events are
// published under "seat.<row>-<col>" (see SeatKey) so a binding of
// "seat.#" receives every seat transition.
const GridKey = "grid"

// SeatKey returns the routing key for a single seat's channel.
func SeatKey(seatID string) string { return "seat." + seatID }

// Event type discriminators carried in every payload.
const (
	EventSeatBooked   = "seat-booked"
	EventSeatReleased = "seat-released"
	EventSeatsReset   = "seats-reset"
	EventGridUpdated  = "grid-updated"
)

// SeatEvent is published per seat when a booking confirms or cancels.
type SeatEvent struct {
	Type   string `json:"type"`
	SeatID string `json:"seatId"`
	UserID string `json:"userId"`
	At     string `json:"at"`
}

// ResetEvent is the single summary message published when a user's
// bookings are reset in bulk.
type ResetEvent struct {
	Type      string `json:"type"`
	UserID    string `json:"userId"`
	Cancelled int64  `json:"cancelled"`
	At        string `json:"at"`
}

// GridEvent carries a full grid snapshot for subscribers that render
// the whole layout instead of tracking individual seats.
type GridEvent struct {
	Type string       `json:"type"`
	Grid seating.Grid `json:"grid"`
	At   string       `json:"at"`
}
