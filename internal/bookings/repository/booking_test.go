package repository

import (
	"context"
	"testing"

	"atlaz/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryBookingRepository_Seeded(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryBookingRepository(SeedBookings()...)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	bookings, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Warehouse Night", bookings[0].Name)
	assert.Equal(t, "Nightshift", bookings[1].Name)
}

func TestInMemoryBookingRepository_AppendKeepsOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryBookingRepository(SeedBookings()...)

	late := model.Booking{Date: "2026-01-01", Name: "Late", Venue: "Ghent"}
	early := model.Booking{Date: "2020-01-01", Name: "Early", Venue: "Ghent"}
	require.NoError(t, repo.Append(ctx, late))
	require.NoError(t, repo.Append(ctx, early))

	bookings, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 4)
	assert.Equal(t, "Warehouse Night", bookings[0].Name)
	assert.Equal(t, "Nightshift", bookings[1].Name)
	assert.Equal(t, "Late", bookings[2].Name)
	assert.Equal(t, "Early", bookings[3].Name)
}

func TestInMemoryBookingRepository_DuplicatesAreKept(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryBookingRepository()

	b := model.Booking{Date: "2025-12-01", Name: "X", Venue: "Y"}
	require.NoError(t, repo.Append(ctx, b))
	require.NoError(t, repo.Append(ctx, b))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestInMemoryBookingRepository_ListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryBookingRepository(SeedBookings()...)

	bookings, err := repo.List(ctx)
	require.NoError(t, err)
	bookings[0].Name = "mutated"

	again, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Warehouse Night", again[0].Name)
}

func TestInMemoryBookingRepository_SeedSliceNotAliased(t *testing.T) {
	seed := SeedBookings()
	repo := NewInMemoryBookingRepository(seed...)
	seed[0].Name = "mutated"

	bookings, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Warehouse Night", bookings[0].Name)
}

func TestInMemoryBookingRepository_Empty(t *testing.T) {
	bookings, err := NewInMemoryBookingRepository().List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, bookings)
	assert.Empty(t, bookings)
}

func TestInMemoryBookingRepository_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	repo := NewInMemoryBookingRepository()

	assert.ErrorIs(t, repo.Append(ctx, model.Booking{Date: "2025-12-01"}), context.Canceled)

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}
