package controllers_test

import (
	"net/http"

	"github.com/spendsense/backend/internal/controllers"
	"github.com/spendsense/backend/internal/test"
)

func (suite *TestSuiteStandard) TestGetV1() {
	recorder := suite.request(http.MethodGet, "/v1", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.V1Response
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal(controllers.V1Links{
		Expenses: "http://example.com/v1/expenses",
		Budgets:  "http://example.com/v1/budgets",
		Months:   "http://example.com/v1/months",
	}, response.Links)
}

func (suite *TestSuiteStandard) TestOptionsV1() {
	recorder := suite.request(http.MethodOptions, "/v1", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", recorder.Header().Get("allow"))
}
