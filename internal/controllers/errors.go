package controllers

import (
	"errors"
	"net/http"

	"github.com/spendsense/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) || errors.Is(err, errCategorization) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errCategorization = errors.New("the expense could not be categorized, please contact your server administrator")
	errAmountMissing  = errors.New("no amount given and none found in the description")
	errTopInvalid     = errors.New("the top parameter must be a positive integer")
)
