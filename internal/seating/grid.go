// Package seating implements the pure seat-grid core: grid derivation
// from the booking set, the seat identifier codec, the no-isolated-seat
// constraint and row-tier pricing.  Nothing in this package touches the
// database or the broker; everything is a deterministic function of its
// inputs so it can run concurrently on every read path.
package seating

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/DevXSoni021/GreenStitch-Assignment/internal/model"
)

const (
	// Rows and Cols fix the grid dimensions.  The grid is never resized.
	Rows = 8
	Cols = 10

	// MaxSeatsPerBooking caps how many seats a single booking may hold.
	MaxSeatsPerBooking = 8
)

// ErrInvalidSeatID is returned when a seat identifier is malformed or
// references a position outside the 8×10 grid.
var ErrInvalidSeatID = errors.New("invalid seat id")

// seatIDPattern matches the canonical "row-col" form.  Anything else
// (signs, spaces, extra separators) is rejected before lookup.
var seatIDPattern = regexp.MustCompile(`^\d+-\d+$`)

// Grid is the full 8×10 seat matrix indexed as grid[row][col].
type Grid [][]model.Seat

// RowLabel converts a zero-based row index to its letter ('A' + row).
func RowLabel(row int) string {
	return string(rune('A' + row))
}

// SeatID formats the canonical identifier for a position.
func SeatID(row, col int) string {
	return fmt.Sprintf("%d-%d", row, col)
}

// InBounds reports whether the position exists in the grid.
func InBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// ParseSeatID parses and validates a canonical seat identifier.  It
// returns ErrInvalidSeatID (wrapped with the offending id) when the id
// is malformed or out of bounds.
func ParseSeatID(id string) (row, col int, err error) {
	if !seatIDPattern.MatchString(id) {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidSeatID, id)
	}
	// The pattern guarantees exactly one '-' with digits on both sides,
	// so Sscanf cannot fail here; it only extracts the two numbers.
	if _, err := fmt.Sscanf(id, "%d-%d", &row, &col); err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidSeatID, id)
	}
	if !InBounds(row, col) {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidSeatID, id)
	}
	return row, col, nil
}

// NewGrid builds an all-available grid.
func NewGrid() Grid {
	g := make(Grid, Rows)
	for r := 0; r < Rows; r++ {
		g[r] = make([]model.Seat, Cols)
		for c := 0; c < Cols; c++ {
			g[r][c] = model.Seat{
				ID:       SeatID(r, c),
				Row:      r,
				RowLabel: RowLabel(r),
				Col:      c,
				Status:   model.SeatAvailable,
			}
		}
	}
	return g
}

// DeriveGrid folds the confirmed bookings of the given set over an
// all-available grid and returns the result.  Bookings in any other
// lifecycle state are ignored.  A booking referencing a seat outside
// the grid yields ErrInvalidSeatID; creation enforces bounds, so this
// only fires on corrupted data.
func DeriveGrid(bookings []model.Booking) (Grid, error) {
	g := NewGrid()
	for _, b := range bookings {
		if b.Status != model.BookingConfirmed {
			continue
		}
		for _, id := range b.SeatIDs {
			row, col, err := ParseSeatID(id)
			if err != nil {
				return nil, fmt.Errorf("booking %s: %w", b.ID, err)
			}
			g[row][col].Status = model.SeatBooked
		}
	}
	return g, nil
}

// Clone returns a deep copy of the grid.  Validation works on clones so
// the caller's grid is never mutated.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for r := range g {
		out[r] = make([]model.Seat, len(g[r]))
		copy(out[r], g[r])
	}
	return out
}
