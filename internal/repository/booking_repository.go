package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/DevXSoni021/GreenStitch-Assignment/internal/model"
)

// BookingRepo provides CRUD operations for the bookings table.  Seat
// ids are stored as a JSON array in a single column; the grid itself is
// never persisted, it is recomputed from confirmed bookings on every
// read.  All timestamp fields are stored in UTC.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// bookingColumns is the canonical column list used by every SELECT so
// scanBooking can stay a single code path.
const bookingColumns = `id, user_id, seat_ids, total_price, status, booking_date, created_at, updated_at`

// scanner abstracts *sql.Row and *sql.Rows for scanBooking.
type scanner interface {
	Scan(dest ...any) error
}

func scanBooking(s scanner) (*model.Booking, error) {
	var b model.Booking
	var seatJSON []byte
	if err := s.Scan(&b.ID, &b.UserID, &seatJSON, &b.TotalPrice, &b.Status,
		&b.BookingDate, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(seatJSON, &b.SeatIDs); err != nil {
		return nil, fmt.Errorf("booking %s: decode seat_ids: %w", b.ID, err)
	}
	return &b, nil
}

// Create inserts a new booking row.  The caller supplies the id,
// status and booking date; created_at/updated_at default in the DB.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	seatJSON, err := json.Marshal(b.SeatIDs)
	if err != nil {
		return fmt.Errorf("encode seat_ids: %w", err)
	}
	const q = `INSERT INTO bookings (id, user_id, seat_ids, total_price, status, booking_date)
	           VALUES (?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, q,
		b.ID, b.UserID, seatJSON, b.TotalPrice, b.Status,
		b.BookingDate.UTC().Format("2006-01-02 15:04:05"),
	)
	return err
}

// ListConfirmedByUser returns every confirmed booking owned by the
// user.  This is the derivation scope for grid reads: availability is
// keyed to the requesting user's own bookings.  An empty user id
// (anonymous caller) yields an empty set without touching the DB.
func (r *BookingRepo) ListConfirmedByUser(ctx context.Context, userID string) ([]model.Booking, error) {
	if userID == "" {
		return []model.Booking{}, nil
	}
	q := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = ? AND status = ?`
	rows, err := r.db.QueryContext(ctx, q, userID, model.BookingConfirmed)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	return out, rows.Err()
}

// ListByUser returns the user's bookings newest first, optionally
// filtered by status, along with the total count for paging.
func (r *BookingRepo) ListByUser(ctx context.Context, userID, status string, limit, offset int) ([]model.Booking, int64, error) {
	where := `WHERE user_id = ?`
	args := []any{userID}
	if status != "" {
		where += ` AND status = ?`
		args = append(args, status)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM bookings `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	q := strings.Join([]string{
		`SELECT ` + bookingColumns + ` FROM bookings`,
		where,
		`ORDER BY booking_date DESC`,
		`LIMIT ? OFFSET ?`,
	}, " ")
	rows, err := r.db.QueryContext(ctx, q, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	out := make([]model.Booking, 0, limit)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *b)
	}
	return out, total, rows.Err()
}

// FindByIDForUser returns a single booking owned by the user.  Unknown
// ids and ids owned by someone else both yield ErrBookingNotFound.
func (r *BookingRepo) FindByIDForUser(ctx context.Context, id, userID string) (*model.Booking, error) {
	q := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = ? AND user_id = ?`
	b, err := scanBooking(r.db.QueryRowContext(ctx, q, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

// Cancel soft-cancels a booking owned by the user and returns the
// updated record.  The read and the update run in one transaction with
// the row locked, so a concurrent cancel of the same booking observes
// the transition and reports ErrBookingCancelled instead of applying
// twice.  Cancelled rows are kept; bookings only move forward.
func (r *BookingRepo) Cancel(ctx context.Context, id, userID string) (*model.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	q := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = ? AND user_id = ? FOR UPDATE`
	b, err := scanBooking(tx.QueryRowContext(ctx, q, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if b.Status == model.BookingCancelled {
		return nil, fmt.Errorf("%w: %s", ErrBookingCancelled, id)
	}

	const upd = `UPDATE bookings SET status = ? WHERE id = ?`
	if _, err := tx.ExecContext(ctx, upd, model.BookingCancelled, id); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	committed = true
	b.Status = model.BookingCancelled
	b.UpdatedAt = time.Now().UTC()
	return b, nil
}

// CancelAllByUser soft-cancels every confirmed booking owned by the
// user in a single statement and returns how many were affected.  The
// statement is atomic on its own, so either all matching rows flip to
// cancelled or none do.
func (r *BookingRepo) CancelAllByUser(ctx context.Context, userID string) (int64, error) {
	const q = `UPDATE bookings SET status = ? WHERE user_id = ? AND status = ?`
	res, err := r.db.ExecContext(ctx, q, model.BookingCancelled, userID, model.BookingConfirmed)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
