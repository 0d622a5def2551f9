package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/spendsense/backend/internal/amount"
	"github.com/spendsense/backend/internal/httputil"
	"github.com/spendsense/backend/internal/models"
)

type ExpenseLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/expenses/65392deb-5e92-4268-b114-297faad6cdce"` // The expense itself
}

// Expense is the API representation of an expense.
type Expense struct {
	models.Expense
	Links ExpenseLinks `json:"links"`
}

func newExpense(c *gin.Context, model models.Expense) Expense {
	url := c.GetString(string(models.DBContextURL))

	return Expense{
		Expense: model,
		Links: ExpenseLinks{
			Self: fmt.Sprintf("%s/v1/expenses/%s", url, model.ID),
		},
	}
}

// ExpenseCreate is the request body to create an expense.
type ExpenseCreate struct {
	Description *string          `json:"description" example:"Pizza dinner with friends"` // Free text description of the expense
	Amount      *decimal.Decimal `json:"amount" swaggertype:"string" example:"25.00"`     // Amount spent. If not set, the first number in the description is used
	Date        string           `json:"date" example:"2026-10-17" format:"date"`         // Date of the expense in YYYY-MM-DD format. Defaults to today
}

type ExpenseResponse struct {
	Data  *Expense `json:"data"`                                              // Data for the expense
	Error *string  `json:"error" example:"the description must not be empty"` // The error, if any occurred
}

type ExpenseListResponse struct {
	Data  []Expense `json:"data"`                                                // List of expenses
	Error *string   `json:"error" example:"the month must be in YYYY-MM format"` // The error, if any occurred
}

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func (co Controller) RegisterExpenseRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsExpenseList)
		r.GET("", co.GetExpenses)
		r.POST("", co.CreateExpense)
	}
	{
		r.OPTIONS("/:id", co.OptionsExpenseDetail)
		r.GET("/:id", co.GetExpense)
	}
}

// addExpense categorizes the description and persists a new expense.
//
// If amt is nil, the first number in the description is used as amount.
// A zero date is replaced by the current date.
func (co Controller) addExpense(c *gin.Context, description string, amt *decimal.Decimal, date time.Time) (models.Expense, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return models.Expense{}, models.ErrDescriptionEmpty
	}

	var value decimal.Decimal
	if amt != nil {
		value = *amt
	} else {
		found, ok := amount.Find(description)
		if !ok {
			return models.Expense{}, errAmountMissing
		}
		value = found
	}

	if date.IsZero() {
		date = co.now()
	}

	result, err := co.Categorizer.Categorize(description)
	if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("Categorization failed")
		return models.Expense{}, errCategorization
	}

	expense := models.Expense{
		ExpenseCreate: models.ExpenseCreate{
			Description: description,
			Amount:      value,
			Date:        date,
		},
		Category:   result.Label,
		Confidence: result.Confidence,
	}

	err = models.CreateExpense(co.DB.WithContext(c), &expense)
	if err != nil {
		return models.Expense{}, err
	}

	log.Debug().Str("request-id", requestid.Get(c)).Str("category", expense.Category).Float64("confidence", expense.Confidence).Msg("Expense created")
	return expense, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses [options]
func (co Controller) OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/expenses/{id} [options]
func (co Controller) OptionsExpenseDetail(c *gin.Context) {
	id, err := httputil.UUIDFromString(c.Param("id"))
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	_, err = models.GetExpense(co.DB.WithContext(c), id)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Create expense
// @Description	Categorizes the description and creates a new expense
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		201		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Failure		500		{object}	ExpenseResponse
// @Param			expense	body		ExpenseCreate	true	"Expense"
// @Router			/v1/expenses [post]
func (co Controller) CreateExpense(c *gin.Context) {
	var create ExpenseCreate
	if err := httputil.BindData(c, &create); err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &s})
		return
	}

	if create.Description == nil {
		s := httputil.FieldMissingError{Field: "description"}.Error()
		c.JSON(http.StatusBadRequest, ExpenseResponse{Error: &s})
		return
	}

	var date time.Time
	if create.Date != "" {
		var err error
		date, err = httputil.ParseDate(create.Date)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), ExpenseResponse{Error: &s})
			return
		}
	}

	expense, err := co.addExpense(c, *create.Description, create.Amount, date)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &s})
		return
	}

	data := newExpense(c, expense)
	c.JSON(http.StatusCreated, ExpenseResponse{Data: &data})
}

// @Summary		Get expenses
// @Description	Returns the expenses of a month, newest first
// @Tags			Expenses
// @Produce		json
// @Success		200		{object}	ExpenseListResponse
// @Failure		400		{object}	ExpenseListResponse
// @Failure		500		{object}	ExpenseListResponse
// @Param			month	query		string	false	"Month in YYYY-MM format. Defaults to the current month"
// @Router			/v1/expenses [get]
func (co Controller) GetExpenses(c *gin.Context) {
	month, err := httputil.MonthQuery(c, co.now())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseListResponse{Error: &s})
		return
	}

	expenses, err := models.ExpensesIn(co.DB.WithContext(c), month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseListResponse{Error: &s})
		return
	}

	data := make([]Expense, 0, len(expenses))
	for _, e := range expenses {
		data = append(data, newExpense(c, e))
	}

	c.JSON(http.StatusOK, ExpenseListResponse{Data: data})
}

// @Summary		Get expense
// @Description	Returns a specific expense
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseResponse
// @Failure		400	{object}	ExpenseResponse
// @Failure		404	{object}	ExpenseResponse
// @Failure		500	{object}	ExpenseResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/expenses/{id} [get]
func (co Controller) GetExpense(c *gin.Context) {
	id, err := httputil.UUIDFromString(c.Param("id"))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &s})
		return
	}

	expense, err := models.GetExpense(co.DB.WithContext(c), id)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &s})
		return
	}

	data := newExpense(c, expense)
	c.JSON(http.StatusOK, ExpenseResponse{Data: &data})
}
