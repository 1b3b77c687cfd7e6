package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus enumerates the lifecycle states of a booking.
// Bookings only ever move forward: a confirmed booking may become
// cancelled, never the other way around.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking groups one or more seats purchased by a user in a single
// transaction.  Seat availability is derived by folding the confirmed
// bookings of the relevant scope over an all-available grid.
//
// Fields:
//  ID          – UUID primary key.
//  UserID      – owner of the booking.
//  SeatIDs     – ordered set of "row-col" seat identifiers (1..8, unique).
//  TotalPrice  – total amount at two-decimal precision, never negative.
//  Status      – lifecycle state (pending, confirmed, cancelled).
//  BookingDate – when the booking was made, UTC.
//  CreatedAt   – row creation timestamp.
//  UpdatedAt   – last modification timestamp.
type Booking struct {
	ID          string          `json:"id"`
	UserID      string          `json:"-"`
	SeatIDs     []string        `json:"seatIds"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
	Status      BookingStatus   `json:"status"`
	BookingDate time.Time       `json:"bookingDate"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
