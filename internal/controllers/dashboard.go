package controllers

import (
	"embed"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/spendsense/backend/internal/httputil"
	"github.com/spendsense/backend/internal/models"
	"github.com/spendsense/backend/internal/types"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the HTML templates used by the dashboard.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"money": func(d decimal.Decimal) string {
			return d.StringFixed(2)
		},
		"date": func(t time.Time) string {
			return t.Format(time.DateOnly)
		},
	}).ParseFS(templateFS, "templates/*.html"))
}

// dashboardPage is the data the dashboard template is rendered with.
type dashboardPage struct {
	Summary  models.Summary
	Expenses []models.Expense
	Previous types.Month
	Next     types.Month
	Error    string
}

// RegisterDashboardRoutes registers the HTML dashboard and its form endpoints.
func (co Controller) RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.GET("/", co.GetDashboard)
	r.POST("/set_budget", co.SetBudgetForm)
	r.POST("/add_expense", co.AddExpenseForm)
}

// renderDashboard renders the dashboard for the month with the status code.
// If message is not empty, it is displayed as an error.
func (co Controller) renderDashboard(c *gin.Context, code int, month types.Month, message string) {
	db := co.DB.WithContext(c)

	summary, err := models.SummaryFor(db, month, co.WarningThreshold)
	if err != nil {
		c.String(status(err), err.Error())
		return
	}

	expenses, err := models.ExpensesIn(db, month)
	if err != nil {
		c.String(status(err), err.Error())
		return
	}

	c.HTML(code, "dashboard.html", dashboardPage{
		Summary:  summary,
		Expenses: expenses,
		Previous: month.AddDate(0, -1),
		Next:     month.AddDate(0, 1),
		Error:    message,
	})
}

// formError renders the dashboard of the current month with the error.
func (co Controller) formError(c *gin.Context, err error) {
	co.renderDashboard(c, status(err), types.MonthOf(co.now()), err.Error())
}

// @Summary		Dashboard
// @Description	Renders the budget dashboard for a month
// @Tags			Dashboard
// @Produce		html
// @Success		200
// @Failure		400
// @Failure		500
// @Param			month	query	string	false	"Month in YYYY-MM format. Defaults to the current month"
// @Router			/ [get]
func (co Controller) GetDashboard(c *gin.Context) {
	month, err := httputil.MonthQuery(c, co.now())
	if err != nil {
		co.formError(c, err)
		return
	}

	co.renderDashboard(c, http.StatusOK, month, "")
}

// @Summary		Set budget from form
// @Description	Sets the budget for the current month or the month given in the form
// @Tags			Dashboard
// @Accept			x-www-form-urlencoded
// @Success		303
// @Failure		400
// @Failure		500
// @Param			budget_amount	formData	string	false	"Budget amount"
// @Param			budget			formData	string	false	"Budget amount, used if budget_amount is not set"
// @Param			month			formData	string	false	"Month in YYYY-MM format. Defaults to the current month"
// @Router			/set_budget [post]
func (co Controller) SetBudgetForm(c *gin.Context) {
	value, ok := c.GetPostForm("budget_amount")
	if !ok {
		value, ok = c.GetPostForm("budget")
	}

	if !ok {
		co.formError(c, httputil.FieldMissingError{Field: "budget_amount"})
		return
	}

	budget, err := httputil.ParseAmount(value)
	if err != nil {
		co.formError(c, err)
		return
	}

	month := types.MonthOf(co.now())
	if m := strings.TrimSpace(c.PostForm("month")); m != "" {
		month, err = httputil.ParseMonth(m)
		if err != nil {
			co.formError(c, err)
			return
		}
	}

	_, err = models.SetBudget(co.DB.WithContext(c), month, budget)
	if err != nil {
		co.formError(c, err)
		return
	}

	log.Debug().Str("request-id", requestid.Get(c)).Str("month", month.String()).Str("amount", budget.String()).Msg("Budget set")
	c.Redirect(http.StatusSeeOther, "/")
}

// @Summary		Add expense from form
// @Description	Categorizes the description and creates a new expense
// @Tags			Dashboard
// @Accept			x-www-form-urlencoded
// @Success		303
// @Failure		400
// @Failure		500
// @Param			description	formData	string	true	"Description of the expense"
// @Param			amount		formData	string	false	"Amount. If not set, the first number in the description is used"
// @Param			date		formData	string	false	"Date in YYYY-MM-DD format. Defaults to today"
// @Router			/add_expense [post]
func (co Controller) AddExpenseForm(c *gin.Context) {
	description, ok := c.GetPostForm("description")
	if !ok {
		co.formError(c, httputil.FieldMissingError{Field: "description"})
		return
	}

	var amt *decimal.Decimal
	if value := strings.TrimSpace(c.PostForm("amount")); value != "" {
		parsed, err := httputil.ParseAmount(value)
		if err != nil {
			co.formError(c, err)
			return
		}
		amt = &parsed
	}

	var date time.Time
	if value := strings.TrimSpace(c.PostForm("date")); value != "" {
		var err error
		date, err = httputil.ParseDate(value)
		if err != nil {
			co.formError(c, err)
			return
		}
	}

	_, err := co.addExpense(c, description, amt, date)
	if err != nil {
		co.formError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}
