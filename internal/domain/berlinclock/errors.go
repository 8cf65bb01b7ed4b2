package berlinclock

import "errors"

var (
	// ErrInvalidArgument is returned when a field is out of its bound or a required input is empty.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidFormat is returned when a time string is not in HH:MM:SS form.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrInvariantViolation signals an internal logic error while building rows.
	ErrInvariantViolation = errors.New("invariant violation")
)
