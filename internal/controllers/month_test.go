package controllers_test

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spendsense/backend/internal/controllers"
	"github.com/spendsense/backend/internal/test"
	"github.com/spendsense/backend/internal/types"
)

func (suite *TestSuiteStandard) TestGetMonth() {
	suite.setTestBudget(types.NewMonth(2026, 10), "1000")
	suite.createTestExpense("Groceries", "500", time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC))
	suite.createTestExpense("Restaurant", "301", time.Date(2026, 10, 9, 0, 0, 0, 0, time.UTC))
	suite.createTestExpense("Next month", "50", time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC))

	recorder := suite.request(http.MethodGet, "/v1/months/2026-10", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.MonthResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)

	m := response.Data
	suite.Assert().True(m.BudgetSet)
	suite.Assert().True(decimal.NewFromInt(1000).Equal(m.TotalBudget))
	suite.Assert().True(decimal.NewFromInt(801).Equal(m.TotalSpent))
	suite.Assert().True(decimal.NewFromInt(199).Equal(m.Remaining))
	suite.Assert().True(m.Warning, "199 remaining is less than 20% of 1000")
	suite.Assert().Equal(2, m.ExpenseCount)
	suite.Require().Len(m.Categories, 1)
	suite.Assert().Equal("Food", m.Categories[0].Category)
	suite.Assert().Equal("http://example.com/v1/expenses?month=2026-10", m.Links.Expenses)
}

func (suite *TestSuiteStandard) TestGetMonthWithoutBudget() {
	recorder := suite.request(http.MethodGet, "/v1/months/2026-02", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.MonthResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)

	suite.Assert().False(response.Data.BudgetSet)
	suite.Assert().False(response.Data.Warning)
	suite.Assert().True(response.Data.Remaining.IsZero())
	suite.Assert().Empty(response.Data.Categories)
}

func (suite *TestSuiteStandard) TestGetMonthErrors() {
	recorder := suite.request(http.MethodGet, "/v1/months/2026", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	suite.CloseDB()
	recorder = suite.request(http.MethodGet, "/v1/months/2026-10", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestOptionsMonth() {
	recorder := suite.request(http.MethodOptions, "/v1/months/2026-10", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", recorder.Header().Get("allow"))
}
