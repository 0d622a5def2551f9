package controllers_test

import (
	"net/http"
	"testing"

	"github.com/spendsense/backend/internal/categorizer"
	"github.com/spendsense/backend/internal/controllers"
	"github.com/spendsense/backend/internal/test"
)

func (suite *TestSuiteStandard) TestPredict() {
	recorder := suite.request(http.MethodPost, "/predict", map[string]string{"description": "Pizza with friends"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.PredictResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal("Food", response.Category)
	suite.Assert().InDelta(98.2, response.Confidence, 0.001)
	suite.Assert().Equal(response.Confidence, response.Probability)
	suite.Assert().Nil(response.Alternatives)

	suite.Assert().Equal(int64(0), suite.countExpenses(), "Prediction must not persist anything")
}

func (suite *TestSuiteStandard) TestPredictBlank() {
	for _, description := range []string{"", "   ", "\t\n"} {
		recorder := suite.request(http.MethodPost, "/predict", map[string]string{"description": description})
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

		var response controllers.PredictResponse
		test.DecodeResponse(suite.T(), &recorder, &response)

		suite.Assert().Equal(categorizer.NoInput, response.Category)
		suite.Assert().Equal(float64(0), response.Confidence)
		suite.Assert().Equal(float64(0), response.Probability)
	}
}

func (suite *TestSuiteStandard) TestPredictTop() {
	recorder := suite.request(http.MethodPost, "/predict?top=5", map[string]string{"description": "taxi"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.PredictResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal("Travel", response.Category)
	suite.Require().Len(response.Alternatives, 2)
	suite.Assert().Equal("Travel", response.Alternatives[0].Label)
	suite.Assert().Equal("Food", response.Alternatives[1].Label)
	suite.Assert().Greater(response.Alternatives[0].Confidence, response.Alternatives[1].Confidence)
}

func (suite *TestSuiteStandard) TestPredictTopWithoutRanking() {
	suite.controller.Categorizer = categorizer.NewRules(nil)

	recorder := suite.request(http.MethodPost, "/predict?top=3", map[string]string{"description": "Uber to the hotel"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.PredictResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal("Travel", response.Category)
	suite.Assert().Equal(float64(100), response.Confidence)
	suite.Require().Len(response.Alternatives, 1)
	suite.Assert().Equal("Travel", response.Alternatives[0].Label)
}

func (suite *TestSuiteStandard) TestPredictBadRequest() {
	tests := []struct {
		name string
		path string
		body any
	}{
		{"No body", "/predict", ""},
		{"Not JSON", "/predict", "description=pizza"},
		{"Missing field", "/predict", map[string]string{"text": "pizza"}},
		{"Wrong type", "/predict", `{"description": 17}`},
		{"Top is zero", "/predict?top=0", map[string]string{"description": "pizza"}},
		{"Top is not a number", "/predict?top=many", map[string]string{"description": "pizza"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, suite.controller, http.MethodPost, tt.path, tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)

			var response map[string]string
			test.DecodeResponse(t, &recorder, &response)
			suite.Assert().NotEmpty(response["error"])
		})
	}
}

func (suite *TestSuiteStandard) TestPredictCategorizerError() {
	suite.controller.Categorizer = failing{}

	recorder := suite.request(http.MethodPost, "/predict", map[string]string{"description": "pizza"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
	suite.Assert().NotContains(recorder.Body.String(), "model exploded", "Internal errors must not be exposed")
}

func (suite *TestSuiteStandard) TestOptionsPredict() {
	recorder := suite.request(http.MethodOptions, "/predict", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, POST", recorder.Header().Get("allow"))
}
