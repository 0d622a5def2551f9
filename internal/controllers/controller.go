// Package controllers implements the HTTP handlers for the dashboard,
// the prediction endpoint and the v1 JSON API.
package controllers

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/spendsense/backend/internal/categorizer"
	"gorm.io/gorm"
)

// Controller holds the dependencies of all handlers.
type Controller struct {
	DB          *gorm.DB
	Categorizer categorizer.Categorizer

	// WarningThreshold is the share of the budget below which the
	// remaining amount is flagged
	WarningThreshold decimal.Decimal

	// Now returns the current time. Defaults to time.Now
	Now func() time.Time
}

func (co Controller) now() time.Time {
	if co.Now == nil {
		return time.Now()
	}

	return co.Now()
}
