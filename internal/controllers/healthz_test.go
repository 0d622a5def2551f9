package controllers_test

import (
	"net/http"

	"github.com/spendsense/backend/internal/test"
)

func (suite *TestSuiteStandard) TestHealthz() {
	recorder := suite.request(http.MethodGet, "/healthz", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = suite.request(http.MethodOptions, "/healthz", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestHealthzDatabaseError() {
	suite.CloseDB()

	recorder := suite.request(http.MethodGet, "/healthz", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}
