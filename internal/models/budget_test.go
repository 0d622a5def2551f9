package models_test

import (
	"github.com/shopspring/decimal"
	"github.com/spendsense/backend/internal/models"
	"github.com/spendsense/backend/internal/types"
)

func (suite *TestSuiteStandard) TestSetBudgetUpsert() {
	month := types.NewMonth(2026, 10)

	first, err := models.SetBudget(suite.db, month, decimal.NewFromInt(1000))
	suite.Require().Nil(err)
	suite.Assert().True(first.Amount.Equal(decimal.NewFromInt(1000)))

	second, err := models.SetBudget(suite.db, month, decimal.NewFromInt(1500))
	suite.Require().Nil(err)
	suite.Assert().True(second.Amount.Equal(decimal.NewFromInt(1500)))
	suite.Assert().Equal(first.CreatedAt, second.CreatedAt)

	var count int64
	suite.db.Model(&models.Budget{}).Count(&count)
	suite.Assert().Equal(int64(1), count, "there must be exactly one budget per month")

	found, err := models.BudgetFor(suite.db, month)
	suite.Require().Nil(err)
	suite.Assert().True(found.Amount.Equal(decimal.NewFromInt(1500)))
	suite.Assert().True(found.Month.Equal(month))
}

func (suite *TestSuiteStandard) TestSetBudgetPerMonth() {
	_, err := models.SetBudget(suite.db, types.NewMonth(2026, 10), decimal.NewFromInt(1000))
	suite.Require().Nil(err)

	_, err = models.SetBudget(suite.db, types.NewMonth(2026, 11), decimal.NewFromInt(200))
	suite.Require().Nil(err)

	october, err := models.BudgetFor(suite.db, types.NewMonth(2026, 10))
	suite.Require().Nil(err)
	suite.Assert().True(october.Amount.Equal(decimal.NewFromInt(1000)))
}

func (suite *TestSuiteStandard) TestSetBudgetValidation() {
	_, err := models.SetBudget(suite.db, types.NewMonth(2026, 10), decimal.NewFromInt(-5))
	suite.Assert().ErrorIs(err, models.ErrAmountNegative)

	_, err = models.SetBudget(suite.db, types.Month{}, decimal.NewFromInt(5))
	suite.Assert().ErrorIs(err, models.ErrMonthMissing)
}

func (suite *TestSuiteStandard) TestBudgetForNotFound() {
	_, err := models.BudgetFor(suite.db, types.NewMonth(2026, 10))
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Contains(err.Error(), "there is no budget matching your query")
}
