package service

import (
	"context"

	"github.com/DevXSoni021/GreenStitch-Assignment/internal/model"
)

// BookingStore is the record store the engine writes bookings through.
// The production implementation is repository.BookingRepo on MySQL;
// each mutating method must be atomic on its own (transaction or
// single statement) so an abandoned request never leaves a partial
// commit.  Lookups scoped "ForUser" must treat unknown ids and ids
// owned by another user identically.
type BookingStore interface {
	Create(ctx context.Context, b *model.Booking) error
	ListConfirmedByUser(ctx context.Context, userID string) ([]model.Booking, error)
	ListByUser(ctx context.Context, userID, status string, limit, offset int) ([]model.Booking, int64, error)
	FindByIDForUser(ctx context.Context, id, userID string) (*model.Booking, error)
	Cancel(ctx context.Context, id, userID string) (*model.Booking, error)
	CancelAllByUser(ctx context.Context, userID string) (int64, error)
}

// EventPublisher pushes state-change events to subscribers.  Delivery
// is best effort: publishes happen only after the store committed, and
// a failure must never roll back or fail the transaction.
type EventPublisher interface {
	Publish(ctx context.Context, key string, event any) error
}

// SeatLocker serializes the derive–check–insert sequence of concurrent
// creates per contended seat.  Acquire either locks every listed seat
// for the owner or locks none and returns an error; ErrLockBusy means
// the guard could not be taken within the configured wait.
type SeatLocker interface {
	Acquire(ctx context.Context, seatIDs []string, ownerID string) error
	Release(ctx context.Context, seatIDs []string, ownerID string)
}
