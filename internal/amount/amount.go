// Package amount extracts monetary amounts from free text.
//
// Only the first contiguous run of ASCII digits is considered. Decimal
// separators and currency symbols are not interpreted, so "12.50" yields 12.
package amount

import (
	"regexp"

	"github.com/shopspring/decimal"
)

var digits = regexp.MustCompile(`[0-9]+`)

// Find returns the first run of digits in text as a decimal and reports
// whether one was found.
func Find(text string) (decimal.Decimal, bool) {
	match := digits.FindString(text)
	if match == "" {
		return decimal.Zero, false
	}

	value, err := decimal.NewFromString(match)
	if err != nil {
		return decimal.Zero, false
	}

	return value, true
}

// Extract returns the first run of digits in text, or zero if there is none.
func Extract(text string) decimal.Decimal {
	value, _ := Find(text)
	return value
}
