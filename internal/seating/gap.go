package seating

import "github.com/DevXSoni021/GreenStitch-Assignment/internal/model"

// Validate reports whether selecting the seat at (row, col) on top of
// the caller's tentative selection keeps the grid sellable.  The rule:
// after marking the selection and the candidate as selected, no seat
// may remain available while both its left/right neighbours or both
// its up/down neighbours are occupied.  Such a seat would be a single
// orphan nobody can ever buy together with a neighbour.
//
// Only interior seats (row 1..6 and col 1..8) can be flagged; seats on
// the outer edge always keep a free flank and are exempt by
// construction.  The scan covers the whole grid, not just the
// candidate's row and column, so a violation anywhere fails the check.
//
// Deselection always passes: when the candidate is not available the
// caller is removing or re-sending a seat, and the rule only guards new
// selections.  The caller's grid is never mutated.
func Validate(g Grid, row, col int, selection []string) bool {
	return FindOrphan(g, row, col, selection) == ""
}

// FindOrphan returns the id of the first available seat that would be
// left isolated by selecting (row, col), or "" when the selection is
// valid.  Rows are scanned top to bottom and seats left to right, so
// the reported seat is deterministic for a given grid.
func FindOrphan(g Grid, row, col int, selection []string) string {
	work := g.Clone()
	for _, id := range selection {
		r, c, err := ParseSeatID(id)
		if err != nil {
			continue
		}
		if work[r][c].Status == model.SeatAvailable {
			work[r][c].Status = model.SeatSelected
		}
	}

	if work[row][col].Status != model.SeatAvailable {
		return ""
	}
	work[row][col].Status = model.SeatSelected

	occupied := func(s model.Seat) bool {
		return s.Status != model.SeatAvailable
	}
	for r := 1; r <= Rows-2; r++ {
		for c := 1; c <= Cols-2; c++ {
			if work[r][c].Status != model.SeatAvailable {
				continue
			}
			if (occupied(work[r][c-1]) && occupied(work[r][c+1])) ||
				(occupied(work[r-1][c]) && occupied(work[r+1][c])) {
				return work[r][c].ID
			}
		}
	}
	return ""
}
