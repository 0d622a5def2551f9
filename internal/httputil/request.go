package httputil

import (
	"encoding/json"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/spendsense/backend/internal/types"
)

// BindData binds the data from the request to the struct passed in the interface.
func BindData(c *gin.Context, data interface{}) error {
	if err := c.ShouldBindJSON(data); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrRequestBodyEmpty
		}

		var jsonUnmarshalTypeError *json.UnmarshalTypeError
		if errors.As(err, &jsonUnmarshalTypeError) {
			return err
		}

		log.Debug().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrInvalidBody
	}

	return nil
}

// UUIDFromString parses a resource ID.
func UUIDFromString(s string) (uuid.UUID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, ErrInvalidUUID
	}

	return u, nil
}

// ParseMonth parses a month in YYYY-MM format.
func ParseMonth(s string) (types.Month, error) {
	m, err := types.ParseMonth(s)
	if err != nil {
		return types.Month{}, ErrInvalidMonth
	}

	return m, nil
}

// ParseAmount parses a decimal amount, e.g. "12.50".
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}

	return d, nil
}

// ParseDate parses a calendar date in YYYY-MM-DD format. The returned
// time is 00:00 UTC on that date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}

	return t, nil
}

// MonthQuery returns the month from the "month" query parameter, or the
// month of now if the parameter is not set.
func MonthQuery(c *gin.Context, now time.Time) (types.Month, error) {
	value, ok := c.GetQuery("month")
	if !ok || strings.TrimSpace(value) == "" {
		return types.MonthOf(now), nil
	}

	return ParseMonth(value)
}
