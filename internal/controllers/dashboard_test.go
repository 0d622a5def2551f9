package controllers_test

import (
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spendsense/backend/internal/models"
	"github.com/spendsense/backend/internal/test"
	"github.com/spendsense/backend/internal/types"
)

func (suite *TestSuiteStandard) TestDashboard() {
	suite.setTestBudget(types.NewMonth(2026, 10), "100")
	suite.createTestExpense("Pizza with friends", "25", time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC))

	recorder := suite.request(http.MethodGet, "/", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	html := recorder.Body.String()
	suite.Assert().Contains(html, "October 2026")
	suite.Assert().Contains(html, "Pizza with friends")
	suite.Assert().Contains(html, "75.00")
	suite.Assert().NotContains(html, `class="banner warning"`)
}

func (suite *TestSuiteStandard) TestDashboardWarning() {
	suite.setTestBudget(types.NewMonth(2026, 10), "100")
	suite.createTestExpense("Groceries", "81", now)

	recorder := suite.request(http.MethodGet, "/", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().Contains(recorder.Body.String(), `class="banner warning"`)
}

func (suite *TestSuiteStandard) TestDashboardMonth() {
	suite.createTestExpense("Summer trip", "300", time.Date(2026, 7, 12, 0, 0, 0, 0, time.UTC))

	recorder := suite.request(http.MethodGet, "/?month=2026-07", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().Contains(recorder.Body.String(), "July 2026")
	suite.Assert().Contains(recorder.Body.String(), "Summer trip")

	recorder = suite.request(http.MethodGet, "/?month=july", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestDashboardDatabaseError() {
	suite.CloseDB()

	recorder := suite.request(http.MethodGet, "/", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestSetBudgetForm() {
	recorder := suite.postForm("/set_budget", url.Values{"budget_amount": {"1200.50"}})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusSeeOther)
	suite.Assert().Equal("/", recorder.Header().Get("Location"))

	budget, err := models.BudgetFor(suite.controller.DB, types.NewMonth(2026, 10))
	suite.Require().Nil(err)
	suite.Assert().True(decimal.RequireFromString("1200.5").Equal(budget.Amount))

	// "budget" is accepted as alternative field name, "month" selects the month
	recorder = suite.postForm("/set_budget", url.Values{"budget": {"300"}, "month": {"2026-12"}})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusSeeOther)

	budget, err = models.BudgetFor(suite.controller.DB, types.NewMonth(2026, 12))
	suite.Require().Nil(err)
	suite.Assert().True(decimal.NewFromInt(300).Equal(budget.Amount))
}

func (suite *TestSuiteStandard) TestSetBudgetFormErrors() {
	tests := []struct {
		name   string
		values url.Values
	}{
		{"Missing", url.Values{}},
		{"Not a number", url.Values{"budget_amount": {"lots"}}},
		{"Negative", url.Values{"budget_amount": {"-1"}}},
		{"Invalid month", url.Values{"budget_amount": {"10"}, "month": {"2026-1"}}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := suite.postForm("/set_budget", tt.values)
			test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestAddExpenseForm() {
	recorder := suite.postForm("/add_expense", url.Values{"description": {"Taxi to the airport"}, "amount": {"42"}})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusSeeOther)
	suite.Assert().Equal("/", recorder.Header().Get("Location"))

	recorder = suite.postForm("/add_expense", url.Values{"description": {"pizza 15 with friends"}, "date": {"2026-10-01"}})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusSeeOther)

	expenses, err := models.ExpensesIn(suite.controller.DB, types.NewMonth(2026, 10))
	suite.Require().Nil(err)
	suite.Require().Len(expenses, 2)

	suite.Assert().Equal("Travel", expenses[0].Category)
	suite.Assert().True(decimal.NewFromInt(42).Equal(expenses[0].Amount))
	suite.Assert().Equal(time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC), expenses[0].Date)

	suite.Assert().Equal("Food", expenses[1].Category)
	suite.Assert().True(decimal.NewFromInt(15).Equal(expenses[1].Amount))
	suite.Assert().Equal(time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), expenses[1].Date)
}

func (suite *TestSuiteStandard) TestAddExpenseFormErrors() {
	tests := []struct {
		name   string
		values url.Values
	}{
		{"Missing description", url.Values{"amount": {"10"}}},
		{"Blank description", url.Values{"description": {"  "}, "amount": {"10"}}},
		{"No amount", url.Values{"description": {"pizza"}}},
		{"Invalid amount", url.Values{"description": {"pizza"}, "amount": {"ten"}}},
		{"Invalid date", url.Values{"description": {"pizza 10"}, "date": {"yesterday"}}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := suite.postForm("/add_expense", tt.values)
			test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
		})
	}

	suite.Assert().Equal(int64(0), suite.countExpenses())
}
