package model

// SeatStatus describes the availability of a single seat in the grid.
// Status is always derived on demand from the confirmed booking set;
// it is never stored.
//
// Values:
//  available – nobody has booked or selected the seat.
//  selected  – the seat is part of the caller's in-flight selection.
//  booked    – the seat belongs to a confirmed booking.
type SeatStatus string

const (
	SeatAvailable SeatStatus = "available" // free for selection
	SeatSelected  SeatStatus = "selected"  // tentatively chosen by the caller
	SeatBooked    SeatStatus = "booked"    // part of a confirmed booking
)

// Seat is one position in the fixed seating grid.  Seats have no
// persisted identity of their own; the grid is recomputed from the
// booking set on every read.
//
// Fields:
//  ID       – canonical "row-col" identifier, e.g. "3-5".
//  Row      – zero-based row index (0..7).
//  RowLabel – letter designating the row ('A' + Row).
//  Col      – zero-based column index within the row (0..9).
//  Status   – derived availability status.
type Seat struct {
	ID       string     `json:"id"`
	Row      int        `json:"row"`
	RowLabel string     `json:"rowLabel"`
	Col      int        `json:"seat"`
	Status   SeatStatus `json:"status"`
}
