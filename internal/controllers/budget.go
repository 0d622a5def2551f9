package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/spendsense/backend/internal/httputil"
	"github.com/spendsense/backend/internal/models"
)

type BudgetLinks struct {
	Self  string `json:"self" example:"https://example.com/api/v1/budgets/2026-10"` // The budget itself
	Month string `json:"month" example:"https://example.com/api/v1/months/2026-10"` // The summary for the month of the budget
}

// Budget is the API representation of a monthly budget.
type Budget struct {
	models.Budget
	Links BudgetLinks `json:"links"`
}

func newBudget(c *gin.Context, model models.Budget) Budget {
	url := c.GetString(string(models.DBContextURL))

	return Budget{
		Budget: model,
		Links: BudgetLinks{
			Self:  url + "/v1/budgets/" + model.Month.String(),
			Month: url + "/v1/months/" + model.Month.String(),
		},
	}
}

// BudgetEditable is the request body to set a budget.
type BudgetEditable struct {
	Amount *decimal.Decimal `json:"amount" swaggertype:"string" example:"1000"` // The budget for the month. Must not be negative
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                                   // Data for the budget
	Error *string `json:"error" example:"there is no budget matching your query"` // The error, if any occurred
}

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:month", co.OptionsBudgetDetail)
	r.GET("/:month", co.GetBudget)
	r.PUT("/:month", co.SetBudget)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Param			month	path	string	true	"Month in YYYY-MM format"
// @Router			/v1/budgets/{month} [options]
func (co Controller) OptionsBudgetDetail(c *gin.Context) {
	httputil.OptionsGetPut(c)
}

// @Summary		Get budget
// @Description	Returns the budget for a month
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		404		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			month	path		string	true	"Month in YYYY-MM format"
// @Router			/v1/budgets/{month} [get]
func (co Controller) GetBudget(c *gin.Context) {
	month, err := httputil.ParseMonth(c.Param("month"))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &s})
		return
	}

	budget, err := models.BudgetFor(co.DB.WithContext(c), month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &s})
		return
	}

	data := newBudget(c, budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}

// @Summary		Set budget
// @Description	Sets the budget for a month. An existing budget for the month is replaced.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			month	path		string			true	"Month in YYYY-MM format"
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets/{month} [put]
func (co Controller) SetBudget(c *gin.Context) {
	month, err := httputil.ParseMonth(c.Param("month"))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &s})
		return
	}

	var editable BudgetEditable
	if err := httputil.BindData(c, &editable); err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &s})
		return
	}

	if editable.Amount == nil {
		s := httputil.FieldMissingError{Field: "amount"}.Error()
		c.JSON(http.StatusBadRequest, BudgetResponse{Error: &s})
		return
	}

	budget, err := models.SetBudget(co.DB.WithContext(c), month, *editable.Amount)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &s})
		return
	}

	data := newBudget(c, budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}
