package seating

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrOutOfRange is returned by TotalPrice when a seat id does not
// belong to the grid it is being priced against.
var ErrOutOfRange = errors.New("seat out of range")

// Row tiers.  Rows A–C are premium, D–F standard, G–H economy.  Prices
// are whole currency units held as decimals so totals keep two-decimal
// precision end to end.
var (
	premiumPrice  = decimal.NewFromInt(1000)
	standardPrice = decimal.NewFromInt(750)
	economyPrice  = decimal.NewFromInt(500)
)

// PriceOf returns the per-seat price for a row label.  Labels outside
// the named tiers fall back to the economy price; with a fixed A–H grid
// that branch is unreachable, but the fallback is the documented
// behaviour rather than an error.
func PriceOf(rowLabel string) decimal.Decimal {
	switch rowLabel {
	case "A", "B", "C":
		return premiumPrice
	case "D", "E", "F":
		return standardPrice
	case "G", "H":
		return economyPrice
	default:
		return economyPrice
	}
}

// TotalPrice sums the tier price of every seat in the set.  All ids
// must reference seats of the given grid; the first non-member yields
// ErrOutOfRange wrapped with the offending id.
func TotalPrice(g Grid, seatIDs []string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, id := range seatIDs {
		row, col, err := ParseSeatID(id)
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: %q", ErrOutOfRange, id)
		}
		total = total.Add(PriceOf(g[row][col].RowLabel))
	}
	return total, nil
}
