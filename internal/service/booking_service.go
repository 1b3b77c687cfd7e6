package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/DevXSoni021/GreenStitch-Assignment/internal/model"
	"github.com/DevXSoni021/GreenStitch-Assignment/internal/monitoring"
	"github.com/DevXSoni021/GreenStitch-Assignment/internal/queue"
	"github.com/DevXSoni021/GreenStitch-Assignment/internal/seating"
)

// BookingService wires the seating rules to the store, the per-seat
// guard and the event transport.  The grid itself is never persisted:
// every read derives it from the caller's confirmed bookings, so the
// store is the single source of truth.
type BookingService struct {
	store     BookingStore
	locker    SeatLocker
	publisher EventPublisher // nil disables broadcasting
}

// NewBookingService builds the engine.  publisher may be nil when no
// broker is configured; all other collaborators are required.
func NewBookingService(store BookingStore, locker SeatLocker, publisher EventPublisher) *BookingService {
	return &BookingService{store: store, locker: locker, publisher: publisher}
}

// Grid returns the caller's current seat layout.  An empty user id
// yields the pristine all-available grid, which lets unauthenticated
// clients render the layout before signing in.
func (s *BookingService) Grid(ctx context.Context, userID string) (seating.Grid, error) {
	if userID == "" {
		return seating.NewGrid(), nil
	}
	bookings, err := s.store.ListConfirmedByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}
	return seating.DeriveGrid(bookings)
}

// ValidateSelection checks whether the caller may add the seat at
// (row, col) to a tentative selection.  The returned reason is empty
// when the pick is acceptable.  Checks run cheapest first; the
// isolation scan only happens for a genuinely new in-bounds seat.
func (s *BookingService) ValidateSelection(ctx context.Context, userID string, row, col int, selection []string) (RejectReason, error) {
	if !seating.InBounds(row, col) {
		return ReasonOutOfBounds, nil
	}

	grid, err := s.Grid(ctx, userID)
	if err != nil {
		return ReasonNone, err
	}
	if grid[row][col].Status == model.SeatBooked {
		return ReasonAlreadyBooked, nil
	}

	// Toggling an already-selected seat off is always fine and does not
	// count against the cap.
	id := seating.SeatID(row, col)
	selecting := true
	for _, sel := range selection {
		if sel == id {
			selecting = false
			break
		}
	}
	if selecting && len(selection) >= seating.MaxSeatsPerBooking {
		return ReasonSelectionLimit, nil
	}

	if !seating.Validate(grid, row, col, selection) {
		return ReasonIsolationViolation, nil
	}
	return ReasonNone, nil
}

// Create books the given seats for the user atomically.  Either a
// confirmed booking covering every seat is persisted, or nothing is.
// Availability is re-checked under the per-seat guard so two concurrent
// requests for an overlapping set cannot both succeed.
func (s *BookingService) Create(ctx context.Context, userID string, seatIDs []string) (*model.Booking, error) {
	if len(seatIDs) == 0 {
		return nil, ErrEmptySelection
	}
	if len(seatIDs) > seating.MaxSeatsPerBooking {
		return nil, fmt.Errorf("%w: %d seats, limit %d", ErrTooManySeats, len(seatIDs), seating.MaxSeatsPerBooking)
	}
	seen := make(map[string]struct{}, len(seatIDs))
	for _, id := range seatIDs {
		if _, _, err := seating.ParseSeatID(id); err != nil {
			return nil, err
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSeat, id)
		}
		seen[id] = struct{}{}
	}

	lockStart := time.Now()
	if err := s.locker.Acquire(ctx, seatIDs, userID); err != nil {
		return nil, err
	}
	monitoring.TrackLockWait(time.Since(lockStart))
	defer s.locker.Release(ctx, seatIDs, userID)

	grid, err := s.Grid(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, id := range seatIDs {
		r, c, _ := seating.ParseSeatID(id)
		if grid[r][c].Status == model.SeatBooked {
			monitoring.TrackBookingConflict()
			return nil, fmt.Errorf("%w: %s", ErrSeatUnavailable, id)
		}
	}

	total, err := seating.TotalPrice(grid, seatIDs)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	booking := &model.Booking{
		ID:          uuid.NewString(),
		UserID:      userID,
		SeatIDs:     seatIDs,
		TotalPrice:  total,
		Status:      model.BookingConfirmed,
		BookingDate: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("persist booking: %w", err)
	}
	monitoring.TrackBookingCreated(len(seatIDs))

	s.broadcastSeats(ctx, queue.EventSeatBooked, userID, seatIDs)
	s.broadcastGrid(ctx, userID)
	return booking, nil
}

// Cancel soft-cancels one booking owned by the user and announces the
// released seats.  A booking can only move from confirmed to cancelled;
// a second cancel surfaces as repository.ErrBookingCancelled.
func (s *BookingService) Cancel(ctx context.Context, id, userID string) (*model.Booking, error) {
	booking, err := s.store.Cancel(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	monitoring.TrackBookingCancelled("single", 1)

	s.broadcastSeats(ctx, queue.EventSeatReleased, userID, booking.SeatIDs)
	s.broadcastGrid(ctx, userID)
	return booking, nil
}

// ResetAll cancels every confirmed booking of the user in one statement
// and returns how many were affected.  A single summary event is
// published instead of one per seat.
func (s *BookingService) ResetAll(ctx context.Context, userID string) (int64, error) {
	n, err := s.store.CancelAllByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("reset bookings: %w", err)
	}
	if n == 0 {
		return 0, nil
	}
	monitoring.TrackBookingCancelled("reset", n)

	s.publish(ctx, queue.GridKey, queue.ResetEvent{
		Type:      queue.EventSeatsReset,
		UserID:    userID,
		Cancelled: n,
		At:        time.Now().UTC().Format(time.RFC3339),
	})
	s.broadcastGrid(ctx, userID)
	return n, nil
}

// List returns the user's booking history, optionally filtered by
// status, newest first.
func (s *BookingService) List(ctx context.Context, userID, status string, limit, offset int) ([]model.Booking, int64, error) {
	return s.store.ListByUser(ctx, userID, status, limit, offset)
}

// Get returns one booking owned by the user.
func (s *BookingService) Get(ctx context.Context, id, userID string) (*model.Booking, error) {
	return s.store.FindByIDForUser(ctx, id, userID)
}

// broadcastSeats publishes one event per seat on the seat's own channel
// and mirrors it on the grid channel.
func (s *BookingService) broadcastSeats(ctx context.Context, eventType, userID string, seatIDs []string) {
	at := time.Now().UTC().Format(time.RFC3339)
	for _, id := range seatIDs {
		ev := queue.SeatEvent{Type: eventType, SeatID: id, UserID: userID, At: at}
		s.publish(ctx, queue.SeatKey(id), ev)
		s.publish(ctx, queue.GridKey, ev)
	}
}

// broadcastGrid publishes a fresh grid snapshot after a state change so
// whole-layout subscribers need not replay individual seat events.
func (s *BookingService) broadcastGrid(ctx context.Context, userID string) {
	if s.publisher == nil {
		return
	}
	grid, err := s.Grid(ctx, userID)
	if err != nil {
		log.Printf("service: grid snapshot for broadcast failed: %v", err)
		monitoring.TrackBroadcastFailure()
		return
	}
	s.publish(ctx, queue.GridKey, queue.GridEvent{
		Type: queue.EventGridUpdated,
		Grid: grid,
		At:   time.Now().UTC().Format(time.RFC3339),
	})
}

// publish delivers one event best effort.  The booking is already
// committed by the time this runs, so a broker failure is logged and
// counted but never surfaced to the caller.
func (s *BookingService) publish(ctx context.Context, key string, event any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, key, event); err != nil {
		log.Printf("service: publish %q failed: %v", key, err)
		monitoring.TrackBroadcastFailure()
	}
}
