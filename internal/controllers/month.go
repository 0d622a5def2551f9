package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spendsense/backend/internal/httputil"
	"github.com/spendsense/backend/internal/models"
)

type MonthLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/months/2026-10"`             // The month summary itself
	Budget   string `json:"budget" example:"https://example.com/api/v1/budgets/2026-10"`          // The budget for the month
	Expenses string `json:"expenses" example:"https://example.com/api/v1/expenses?month=2026-10"` // The expenses in the month
}

// Month is the spending summary of a month.
type Month struct {
	models.Summary
	Links MonthLinks `json:"links"`
}

type MonthResponse struct {
	Data  *Month  `json:"data"`                                                // Data for the month
	Error *string `json:"error" example:"the month must be in YYYY-MM format"` // The error, if any occurred
}

// RegisterMonthRoutes registers the routes for months with
// the RouterGroup that is passed.
func (co Controller) RegisterMonthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:month", co.OptionsMonth)
	r.GET("/:month", co.GetMonth)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Param			month	path	string	true	"Month in YYYY-MM format"
// @Router			/v1/months/{month} [options]
func (co Controller) OptionsMonth(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get month
// @Description	Returns budget, spending, remaining amount and per category totals for a month
// @Tags			Months
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Failure		500		{object}	MonthResponse
// @Param			month	path		string	true	"Month in YYYY-MM format"
// @Router			/v1/months/{month} [get]
func (co Controller) GetMonth(c *gin.Context) {
	month, err := httputil.ParseMonth(c.Param("month"))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{Error: &s})
		return
	}

	summary, err := models.SummaryFor(co.DB.WithContext(c), month, co.WarningThreshold)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{Error: &s})
		return
	}

	url := c.GetString(string(models.DBContextURL))
	c.JSON(http.StatusOK, MonthResponse{Data: &Month{
		Summary: summary,
		Links: MonthLinks{
			Self:     url + "/v1/months/" + month.String(),
			Budget:   url + "/v1/budgets/" + month.String(),
			Expenses: url + "/v1/expenses?month=" + month.String(),
		},
	}})
}
