package repository

import (
	"context"
	"sync"

	"atlaz/pkg/model"
)

type BookingRepository interface {
	// List returns every stored booking in append order.
	List(ctx context.Context) ([]model.Booking, error)
	Append(ctx context.Context, booking model.Booking) error
	Count(ctx context.Context) (int, error)
}

// InMemoryBookingRepository is an append-only, process-lifetime store.
type InMemoryBookingRepository struct {
	mu       sync.RWMutex
	bookings []model.Booking
}

func NewInMemoryBookingRepository(seed ...model.Booking) *InMemoryBookingRepository {
	bookings := make([]model.Booking, len(seed))
	copy(bookings, seed)
	return &InMemoryBookingRepository{bookings: bookings}
}

func (r *InMemoryBookingRepository) List(ctx context.Context) ([]model.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out, nil
}

func (r *InMemoryBookingRepository) Append(ctx context.Context, booking model.Booking) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.bookings = append(r.bookings, booking)
	return nil
}

func (r *InMemoryBookingRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.bookings), nil
}
