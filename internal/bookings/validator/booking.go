package validator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	bookingserrors "atlaz/internal/bookings/errors"
	"atlaz/pkg/logger"
	"atlaz/pkg/model"

	"github.com/go-playground/validator/v10"
)

const (
	tagCalendarDate = "calendar_date"
	tagClockTime    = "clock_time"
)

var (
	dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRegex = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

type BookingValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewBookingValidator(log *logger.Logger) *BookingValidator {
	v := validator.New()

	// Report fields by their wire names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation(tagCalendarDate, validateCalendarDate); err != nil {
		log.Fatal("Failed to register 'calendar_date' validator", "error", err)
	}
	if err := v.RegisterValidation(tagClockTime, validateClockTime); err != nil {
		log.Fatal("Failed to register 'clock_time' validator", "error", err)
	}

	log.Debug("Booking validator initialized successfully")

	return &BookingValidator{
		validate: v,
		logger:   log,
	}
}

func validateCalendarDate(fl validator.FieldLevel) bool {
	return IsCalendarDate(fl.Field().String())
}

func validateClockTime(fl validator.FieldLevel) bool {
	return IsClockTime(fl.Field().String())
}

// IsCalendarDate reports whether s is a zero-padded YYYY-MM-DD Gregorian date
// in years 0001 through 9999.
func IsCalendarDate(s string) bool {
	if !dateRegex.MatchString(s) {
		return false
	}
	t, err := time.Parse(model.DateLayout, s)
	return err == nil && t.Year() >= 1
}

// IsClockTime reports whether s is a zero-padded 24-hour HH:MM time of day.
func IsClockTime(s string) bool {
	if !timeRegex.MatchString(s) {
		return false
	}
	_, err := time.Parse(model.TimeLayout, s)
	return err == nil
}

// Validate checks the shape of a candidate booking. All offending fields are
// reported together. End before start is accepted as an overnight span.
func (v *BookingValidator) Validate(booking *model.BookingRequest) error {
	if booking == nil {
		return ValidationErrors{{Field: "body", Message: "body is required"}}
	}

	if err := v.validate.Struct(booking); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}

	return nil
}

func (v *BookingValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case tagCalendarDate:
			message = bookingserrors.ErrInvalidDate.Error()
		case tagClockTime:
			message = bookingserrors.ErrInvalidTime.Error()
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	v.logger.Debug("Booking rejected by validator", "errors", validationErrors.Error())

	return validationErrors
}
