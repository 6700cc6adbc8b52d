package service

import (
	"cmp"
	"context"
	"errors"
	"slices"

	"atlaz/internal/bookings/events"
	"atlaz/internal/bookings/repository"
	"atlaz/internal/bookings/validator"
	apperrors "atlaz/pkg/errors"
	"atlaz/pkg/logger"
	"atlaz/pkg/model"
)

type BookingService interface {
	// List returns all bookings ordered by date, then start time.
	List(ctx context.Context) ([]model.Booking, error)
	Create(ctx context.Context, req *model.BookingRequest) (model.Booking, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	validator *validator.BookingValidator
	publisher events.Publisher
	log       *logger.Logger
}

func NewBookingService(
	repo repository.BookingRepository,
	validator *validator.BookingValidator,
	publisher events.Publisher,
	log *logger.Logger,
) BookingService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &bookingService{
		repo:      repo,
		validator: validator,
		publisher: publisher,
		log:       log,
	}
}

func (s *bookingService) List(ctx context.Context) ([]model.Booking, error) {
	bookings, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("Failed to list bookings", "error", err)
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}
	if bookings == nil {
		bookings = []model.Booking{}
	}

	SortBookings(bookings)
	return bookings, nil
}

func (s *bookingService) Create(ctx context.Context, req *model.BookingRequest) (model.Booking, error) {
	if err := s.validator.Validate(req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			s.log.Info("Booking rejected", "errors", validationErrs.Error())
			return model.Booking{}, NewValidationError(validationErrs)
		}
		s.log.Error("Booking validation failed unexpectedly", "error", err)
		return model.Booking{}, apperrors.Internal("Failed to validate booking", err)
	}

	booking := req.ToBooking()
	if err := s.repo.Append(ctx, booking); err != nil {
		s.log.Error("Failed to append booking", "error", err)
		return model.Booking{}, apperrors.Internal("Failed to create booking", err)
	}

	if err := s.publisher.BookingAdded(ctx, booking); err != nil {
		s.log.Warn("Failed to publish booking event", "date", booking.Date, "error", err)
	}

	s.log.Info("Booking created successfully",
		"date", booking.Date,
		"name", booking.Name,
		"venue", booking.Venue,
	)
	return booking, nil
}

// NewValidationError converts field errors into the client-facing AppError.
func NewValidationError(errs validator.ValidationErrors) *apperrors.AppError {
	return apperrors.Validation("validation failed", map[string]any{
		"errors": errs,
	})
}

// SortBookings orders bookings in place by (date, start), a missing start
// counting as "00:00". Equal keys keep their relative order.
func SortBookings(bookings []model.Booking) {
	slices.SortStableFunc(bookings, func(a, b model.Booking) int {
		aDate, aStart := a.SortKey()
		bDate, bStart := b.SortKey()
		if c := cmp.Compare(aDate, bDate); c != 0 {
			return c
		}
		return cmp.Compare(aStart, bStart)
	})
}
