package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spendsense/backend/internal/categorizer"
	"github.com/spendsense/backend/internal/httputil"
)

// PredictRequest is the request body for a category prediction.
type PredictRequest struct {
	Description *string `json:"description" example:"Pizza dinner with friends"` // The expense description to categorize
}

// PredictResponse is the predicted category for a description.
type PredictResponse struct {
	Category     string               `json:"category" example:"Food"`    // The predicted category
	Confidence   float64              `json:"confidence" example:"87.5"`  // Confidence for the category in percent
	Probability  float64              `json:"probability" example:"87.5"` // Same as confidence
	Alternatives []categorizer.Result `json:"alternatives,omitempty"`     // The best categories ordered by confidence, only set when top is greater than 1
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Prediction
// @Success		204
// @Router			/predict [options]
func (co Controller) OptionsPredict(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Predict category
// @Description	Predicts the category for an expense description. Nothing is persisted.
// @Tags			Prediction
// @Accept			json
// @Produce		json
// @Success		200		{object}	PredictResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			request	body		PredictRequest	true	"Description"
// @Param			top		query		int				false	"Number of alternative categories to return"
// @Router			/predict [post]
func (co Controller) Predict(c *gin.Context) {
	top := 1
	if value, ok := c.GetQuery("top"); ok {
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, httpError{Error: errTopInvalid.Error()})
			return
		}
		top = n
	}

	var request PredictRequest
	if err := httputil.BindData(c, &request); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if request.Description == nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.FieldMissingError{Field: "description"}.Error()})
		return
	}

	description := *request.Description
	if categorizer.Blank(description) {
		c.JSON(http.StatusOK, PredictResponse{Category: categorizer.NoInput})
		return
	}

	result, err := co.Categorizer.Categorize(description)
	if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("Prediction failed")
		c.JSON(http.StatusInternalServerError, httpError{Error: errCategorization.Error()})
		return
	}

	response := PredictResponse{
		Category:    result.Label,
		Confidence:  result.Confidence,
		Probability: result.Confidence,
	}

	if top > 1 {
		response.Alternatives = []categorizer.Result{result}

		if ranker, ok := co.Categorizer.(categorizer.Ranker); ok {
			alternatives, err := ranker.Rank(description, top)
			if err == nil {
				response.Alternatives = alternatives
			} else if !errors.Is(err, categorizer.ErrRankingUnsupported) {
				log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("Ranking failed")
				c.JSON(http.StatusInternalServerError, httpError{Error: errCategorization.Error()})
				return
			}
		}
	}

	c.JSON(http.StatusOK, response)
}
