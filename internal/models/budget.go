package models

import (
	"github.com/shopspring/decimal"
	"github.com/spendsense/backend/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Budget is the amount of money available for a month. There is at most
// one budget per month.
type Budget struct {
	Timestamps
	Month  types.Month     `json:"month" gorm:"primaryKey" swaggertype:"string" example:"2026-10"`       // The month. This is always set to 00:00 UTC on the first of the month.
	Amount decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" swaggertype:"string" example:"1000"` // The budget for the month
}

func (b *Budget) BeforeSave(_ *gorm.DB) error {
	if b.Month.IsZero() {
		return ErrMonthMissing
	}

	if b.Amount.IsNegative() {
		return ErrAmountNegative
	}

	return nil
}

// SetBudget sets the budget for the month. An existing budget for the
// month is replaced.
func SetBudget(db *gorm.DB, month types.Month, amount decimal.Decimal) (Budget, error) {
	budget := Budget{Month: month, Amount: amount}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
	}).Create(&budget).Error
	if err != nil {
		return Budget{}, err
	}

	return BudgetFor(db, month)
}

// BudgetFor returns the budget for the month.
func BudgetFor(db *gorm.DB, month types.Month) (Budget, error) {
	var budget Budget
	err := db.Where("month = ?", month).First(&budget).Error
	return budget, err
}
