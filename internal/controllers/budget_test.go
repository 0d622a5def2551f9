package controllers_test

import (
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/spendsense/backend/internal/controllers"
	"github.com/spendsense/backend/internal/test"
	"github.com/spendsense/backend/internal/types"
)

func (suite *TestSuiteStandard) TestSetAndGetBudget() {
	recorder := suite.request(http.MethodPut, "/v1/budgets/2026-10", map[string]any{"amount": "1000"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().True(decimal.NewFromInt(1000).Equal(response.Data.Amount))
	suite.Assert().Equal(types.NewMonth(2026, 10), response.Data.Month)
	suite.Assert().Equal("http://example.com/v1/budgets/2026-10", response.Data.Links.Self)
	suite.Assert().Equal("http://example.com/v1/months/2026-10", response.Data.Links.Month)

	// Setting the budget again replaces it
	recorder = suite.request(http.MethodPut, "/v1/budgets/2026-10", map[string]any{"amount": "750.25"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = suite.request(http.MethodGet, "/v1/budgets/2026-10", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(decimal.RequireFromString("750.25").Equal(response.Data.Amount), "Amount is %s", response.Data.Amount)
}

func (suite *TestSuiteStandard) TestGetBudgetErrors() {
	recorder := suite.request(http.MethodGet, "/v1/budgets/2026-11", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	recorder = suite.request(http.MethodGet, "/v1/budgets/november", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	suite.CloseDB()
	recorder = suite.request(http.MethodGet, "/v1/budgets/2026-10", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestSetBudgetErrors() {
	tests := []struct {
		name string
		path string
		body any
	}{
		{"Invalid month", "/v1/budgets/2026-13", map[string]any{"amount": "10"}},
		{"No body", "/v1/budgets/2026-10", ""},
		{"Missing amount", "/v1/budgets/2026-10", map[string]any{"budget": "10"}},
		{"Negative amount", "/v1/budgets/2026-10", map[string]any{"amount": "-10"}},
		{"Amount is not a number", "/v1/budgets/2026-10", `{"amount": "ten"}`},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := suite.request(http.MethodPut, tt.path, tt.body)
			test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestOptionsBudget() {
	recorder := suite.request(http.MethodOptions, "/v1/budgets/2026-10", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, PUT", recorder.Header().Get("allow"))
}
