package errors

import "errors"

var (
	ErrInvalidDate = errors.New("date must be YYYY-MM-DD")

	ErrInvalidTime = errors.New("time must be HH:mm")
)
