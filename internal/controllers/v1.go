package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spendsense/backend/internal/httputil"
	"github.com/spendsense/backend/internal/models"
)

type V1Response struct {
	Links V1Links `json:"links"` // Links for the v1 API
}

type V1Links struct {
	Expenses string `json:"expenses" example:"https://example.com/api/v1/expenses"` // URL of expense list endpoint
	Budgets  string `json:"budgets" example:"https://example.com/api/v1/budgets"`   // URL of budget endpoint, append the month as YYYY-MM
	Months   string `json:"months" example:"https://example.com/api/v1/months"`     // URL of month summary endpoint, append the month as YYYY-MM
}

// RegisterV1Routes registers all routes of the v1 API.
func (co Controller) RegisterV1Routes(r *gin.RouterGroup) {
	r.GET("", co.GetV1)
	r.OPTIONS("", co.OptionsV1)

	co.RegisterExpenseRoutes(r.Group("/expenses"))
	co.RegisterBudgetRoutes(r.Group("/budgets"))
	co.RegisterMonthRoutes(r.Group("/months"))
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			v1
// @Success		200	{object}	V1Response
// @Router			/v1 [get]
func (co Controller) GetV1(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Expenses: url + "/v1/expenses",
			Budgets:  url + "/v1/budgets",
			Months:   url + "/v1/months",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func (co Controller) OptionsV1(c *gin.Context) {
	httputil.OptionsGet(c)
}
