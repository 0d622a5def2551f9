package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spendsense/backend/internal/controllers"
	"github.com/spendsense/backend/internal/test"
)

func (suite *TestSuiteStandard) TestCreateExpense() {
	recorder := suite.request(http.MethodPost, "/v1/expenses", map[string]any{
		"description": "Pizza with friends",
		"amount":      "25.50",
		"date":        "2026-10-03",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response controllers.ExpenseResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)

	e := response.Data
	suite.Assert().Equal("Pizza with friends", e.Description)
	suite.Assert().True(decimal.NewFromFloat(25.5).Equal(e.Amount), "Amount is %s", e.Amount)
	suite.Assert().Equal(time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC), e.Date.UTC())
	suite.Assert().Equal("Food", e.Category)
	suite.Assert().InDelta(98.2, e.Confidence, 0.001)
	suite.Assert().Equal("http://example.com/v1/expenses/"+e.ID.String(), e.Links.Self)
}

func (suite *TestSuiteStandard) TestCreateExpenseDefaults() {
	recorder := suite.request(http.MethodPost, "/v1/expenses", map[string]any{
		"description": "taxi 12.50 to the station",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response controllers.ExpenseResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)

	suite.Assert().True(decimal.NewFromInt(12).Equal(response.Data.Amount), "Amount must be extracted from the description, is %s", response.Data.Amount)
	suite.Assert().Equal(time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC), response.Data.Date.UTC(), "Date must default to today")
	suite.Assert().Equal("Travel", response.Data.Category)
}

func (suite *TestSuiteStandard) TestCreateExpenseBadRequest() {
	tests := []struct {
		name string
		body any
	}{
		{"No body", ""},
		{"Broken JSON", `{"description": "pizza"`},
		{"Missing description", map[string]any{"amount": "3"}},
		{"Blank description", map[string]any{"description": "   ", "amount": "3"}},
		{"No amount", map[string]any{"description": "pizza"}},
		{"Negative amount", map[string]any{"description": "pizza", "amount": "-3"}},
		{"Invalid date", map[string]any{"description": "pizza 3", "date": "17.10.2026"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, suite.controller, http.MethodPost, "/v1/expenses", tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)

			var response controllers.ExpenseResponse
			test.DecodeResponse(t, &recorder, &response)
			suite.Assert().NotNil(response.Error)
			suite.Assert().Nil(response.Data)
		})
	}

	suite.Assert().Equal(int64(0), suite.countExpenses())
}

func (suite *TestSuiteStandard) TestCreateExpenseCategorizerError() {
	suite.controller.Categorizer = failing{}

	recorder := suite.request(http.MethodPost, "/v1/expenses", map[string]any{"description": "pizza 12"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
	suite.Assert().Equal(int64(0), suite.countExpenses())
}

func (suite *TestSuiteStandard) TestCreateExpenseDatabaseError() {
	suite.CloseDB()

	recorder := suite.request(http.MethodPost, "/v1/expenses", map[string]any{"description": "pizza 12"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestGetExpenses() {
	older := suite.createTestExpense("Groceries 40", "40", time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC))
	newer := suite.createTestExpense("Pizza 15", "15", time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC))
	_ = suite.createTestExpense("Last month", "100", time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC))

	recorder := suite.request(http.MethodGet, "/v1/expenses", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.ExpenseListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal(newer.ID, response.Data[0].ID)
	suite.Assert().Equal(older.ID, response.Data[1].ID)

	recorder = suite.request(http.MethodGet, "/v1/expenses?month=2026-09", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("Last month", response.Data[0].Description)
}

func (suite *TestSuiteStandard) TestGetExpensesErrors() {
	recorder := suite.request(http.MethodGet, "/v1/expenses?month=October", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	suite.CloseDB()
	recorder = suite.request(http.MethodGet, "/v1/expenses", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestGetExpense() {
	e := suite.createTestExpense("Pizza 15", "15", now)

	recorder := suite.request(http.MethodGet, "/v1/expenses/"+e.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.ExpenseResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(e.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestGetExpenseErrors() {
	recorder := suite.request(http.MethodGet, "/v1/expenses/not-a-uuid", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	recorder = suite.request(http.MethodGet, "/v1/expenses/9b7c6e68-5ee6-4f5f-8b04-2a3dbcb6f7a1", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestOptionsExpense() {
	e := suite.createTestExpense("Pizza 15", "15", now)

	recorder := suite.request(http.MethodOptions, "/v1/expenses", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, POST", recorder.Header().Get("allow"))

	recorder = suite.request(http.MethodOptions, "/v1/expenses/"+e.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", recorder.Header().Get("allow"))

	recorder = suite.request(http.MethodOptions, "/v1/expenses/nope", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	recorder = suite.request(http.MethodOptions, "/v1/expenses/9b7c6e68-5ee6-4f5f-8b04-2a3dbcb6f7a1", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
