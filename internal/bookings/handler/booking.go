package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"atlaz/internal/bookings/service"
	"atlaz/internal/bookings/validator"
	apperrors "atlaz/pkg/errors"
	httputil "atlaz/pkg/http"
	"atlaz/pkg/logger"
	"atlaz/pkg/model"

	"github.com/julienschmidt/httprouter"
)

const bookingsPath = "/api/bookings"

var errTrailingData = errors.New("unexpected data after JSON body")

type BookingHandler struct {
	service service.BookingService
	log     *logger.Logger
}

func NewBookingHandler(service service.BookingService, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	bookings, err := h.service.List(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "List", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, bookings); err != nil {
		h.log.Error("failed to write success response", "handler", "List", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.BookingRequest
	if err := decodeBody(r.Body, &req); err != nil {
		if writeErr := httputil.WriteError(w, decodeError(err)); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	booking, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, booking); err != nil {
		h.log.Error("failed to write success response", "handler", "Create", "operation", "WriteSuccess", "error", err)
	}
}

// decodeBody decodes exactly one JSON value; trailing data is a syntax error.
func decodeBody(body io.Reader, dst any) error {
	dec := json.NewDecoder(body)
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			return errTrailingData
		}
		return err
	}
	return nil
}

// decodeError maps a body decoding failure to a client error. A value of the
// wrong JSON type is reported against its field like any other validation
// failure.
func decodeError(err error) *apperrors.AppError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return service.NewValidationError(validator.ValidationErrors{{
			Field:   typeErr.Field,
			Message: fmt.Sprintf("%s must be a %s", typeErr.Field, typeErr.Type.Kind()),
		}})
	}

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return apperrors.New(apperrors.CodeInvalidInput, "Request body too large", http.StatusRequestEntityTooLarge)
	}

	return apperrors.InvalidInput("Invalid request body")
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET(bookingsPath, h.List)
	router.POST(bookingsPath, h.Create)
}
