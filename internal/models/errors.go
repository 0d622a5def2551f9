package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrDescriptionEmpty = errors.New("the description must not be empty")
	ErrCategoryEmpty    = errors.New("the category must not be empty")
	ErrAmountNegative   = errors.New("the amount must not be negative")
	ErrMonthMissing     = errors.New("the month must be set")
	ErrExpenseImmutable = errors.New("expenses cannot be changed after they have been created")
)
