package httputil

import "errors"

var (
	ErrInvalidBody      = errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")
	ErrRequestBodyEmpty = errors.New("the request body must not be empty")
	ErrInvalidUUID      = errors.New("the specified resource ID is not a valid UUID")
	ErrInvalidMonth     = errors.New("the month must be in YYYY-MM format")
	ErrInvalidDate      = errors.New("the date must be in YYYY-MM-DD format")
	ErrInvalidAmount    = errors.New("the amount must be a number")
)

// FieldMissingError is returned when a required form or JSON field is absent.
type FieldMissingError struct {
	Field string
}

func (e FieldMissingError) Error() string {
	return "the field '" + e.Field + "' is required"
}
