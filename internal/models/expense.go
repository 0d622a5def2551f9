package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spendsense/backend/internal/types"
	"gorm.io/gorm"
)

// Expense is a single categorized expense. Expenses are never changed
// after they have been created.
type Expense struct {
	DefaultModel
	ExpenseCreate
	Category   string  `json:"category" gorm:"index;not null" example:"Food"` // Category label assigned on creation
	Confidence float64 `json:"confidence" example:"87.5"`                     // Confidence of the categorizer for the category, 0 to 100
}

// ExpenseCreate contains the fields a client sets when creating an expense.
type ExpenseCreate struct {
	Description string          `json:"description" gorm:"not null" example:"Pizza dinner with friends"`                 // Free text description
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" swaggertype:"string" example:"25.00"`           // Amount spent. Must not be negative
	Date        time.Time       `json:"date" gorm:"index" example:"2026-10-17T00:00:00Z" swaggertype:"primitive,string"` // Date of the expense. Defaults to the current date
}

// Day truncates a time to 00:00 UTC of its calendar date.
func Day(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// BeforeSave validates the expense and normalizes the date.
func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Description = strings.TrimSpace(e.Description)
	if e.Description == "" {
		return ErrDescriptionEmpty
	}

	if strings.TrimSpace(e.Category) == "" {
		return ErrCategoryEmpty
	}

	if e.Amount.IsNegative() {
		return ErrAmountNegative
	}

	if e.Date.IsZero() {
		e.Date = time.Now()
	}
	e.Date = Day(e.Date)

	return nil
}

// BeforeUpdate rejects all updates.
func (e *Expense) BeforeUpdate(_ *gorm.DB) error {
	return ErrExpenseImmutable
}

func (e *Expense) AfterFind(tx *gorm.DB) error {
	if err := e.Timestamps.AfterFind(tx); err != nil {
		return err
	}

	e.Date = e.Date.In(time.UTC)
	return nil
}

// CreateExpense persists a new expense.
func CreateExpense(db *gorm.DB, expense *Expense) error {
	return db.Create(expense).Error
}

// GetExpense returns the expense with the ID.
func GetExpense(db *gorm.DB, id uuid.UUID) (Expense, error) {
	var expense Expense
	err := db.Where("id = ?", id).First(&expense).Error
	return expense, err
}

// ExpensesIn returns all expenses dated in the month, newest first.
func ExpensesIn(db *gorm.DB, month types.Month) ([]Expense, error) {
	var expenses []Expense
	err := db.
		Where("date >= ? AND date < ?", month.Start(), month.End()).
		Order("date DESC, created_at DESC").
		Find(&expenses).Error

	return expenses, err
}
