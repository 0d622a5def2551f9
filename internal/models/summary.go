package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spendsense/backend/internal/types"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// DefaultWarningThreshold is the share of the budget below which the
// remaining amount triggers a warning.
var DefaultWarningThreshold = decimal.NewFromFloat(0.2)

// CategoryTotal is the sum of all expenses with a category label.
type CategoryTotal struct {
	Category string          `json:"category" example:"Food"`                     // Category label
	Amount   decimal.Decimal `json:"amount" swaggertype:"string" example:"125.5"` // Sum of the expenses in the category
}

// Summary aggregates the budget and the expenses of a month.
type Summary struct {
	Month          types.Month                `json:"month" swaggertype:"string" example:"2026-10"`    // The month
	BudgetSet      bool                       `json:"budgetSet" example:"true"`                        // Is there a budget for the month?
	TotalBudget    decimal.Decimal            `json:"totalBudget" swaggertype:"string" example:"1000"` // The budget for the month, 0 if none is set
	TotalSpent     decimal.Decimal            `json:"totalSpent" swaggertype:"string" example:"150"`   // Sum of all expenses in the month
	Remaining      decimal.Decimal            `json:"remaining" swaggertype:"string" example:"850"`    // Budget minus spent. Can be negative
	CategoryTotals map[string]decimal.Decimal `json:"categoryTotals" swaggertype:"object"`             // Spent amount per category
	Categories     []CategoryTotal            `json:"categories"`                                      // Spent amount per category, highest first
	Warning        bool                       `json:"warning" example:"false"`                         // Is the remaining amount below the warning threshold?
	ExpenseCount   int                        `json:"expenseCount" example:"2"`                        // Number of expenses in the month
}

// Summarize aggregates the expenses dated in the month against the budget.
// budget may be nil if no budget is set for the month.
//
// A warning is raised when a budget is set and the remaining amount is
// strictly less than threshold times the budget.
func Summarize(month types.Month, budget *Budget, expenses []Expense, threshold decimal.Decimal) Summary {
	s := Summary{
		Month:          month,
		TotalBudget:    decimal.Zero,
		TotalSpent:     decimal.Zero,
		CategoryTotals: map[string]decimal.Decimal{},
		Categories:     []CategoryTotal{},
	}

	if budget != nil {
		s.BudgetSet = true
		s.TotalBudget = budget.Amount
	}

	for _, e := range expenses {
		if !month.Contains(e.Date) {
			continue
		}

		s.ExpenseCount++
		s.TotalSpent = s.TotalSpent.Add(e.Amount)

		total, ok := s.CategoryTotals[e.Category]
		if !ok {
			total = decimal.Zero
		}
		s.CategoryTotals[e.Category] = total.Add(e.Amount)
	}

	for category, amount := range s.CategoryTotals {
		s.Categories = append(s.Categories, CategoryTotal{Category: category, Amount: amount})
	}

	slices.SortFunc(s.Categories, func(a, b CategoryTotal) int {
		if c := b.Amount.Cmp(a.Amount); c != 0 {
			return c
		}
		return strings.Compare(a.Category, b.Category)
	})

	s.Remaining = s.TotalBudget.Sub(s.TotalSpent)
	s.Warning = s.BudgetSet && s.Remaining.LessThan(threshold.Mul(s.TotalBudget))

	return s
}

// SummaryFor loads the budget and expenses for the month and summarizes them.
func SummaryFor(db *gorm.DB, month types.Month, threshold decimal.Decimal) (Summary, error) {
	var budget *Budget

	b, err := BudgetFor(db, month)
	if err == nil {
		budget = &b
	} else if !errors.Is(err, ErrResourceNotFound) {
		return Summary{}, err
	}

	expenses, err := ExpensesIn(db, month)
	if err != nil {
		return Summary{}, err
	}

	return Summarize(month, budget, expenses, threshold), nil
}
