// Package docs holds the OpenAPI document served at /docs. It mirrors the
// swag annotations on the handlers and has to be updated with them.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/add_expense": {
            "post": {
                "description": "Categorizes the description and creates a new expense",
                "consumes": ["application/x-www-form-urlencoded"],
                "tags": ["Dashboard"],
                "summary": "Add expense from form",
                "parameters": [
                    {"type": "string", "description": "Description of the expense", "name": "description", "in": "formData", "required": true},
                    {"type": "string", "description": "Amount. If not set, the first number in the description is used", "name": "amount", "in": "formData"},
                    {"type": "string", "description": "Date in YYYY-MM-DD format. Defaults to today", "name": "date", "in": "formData"}
                ],
                "responses": {"303": {"description": "See Other"}, "400": {"description": "Bad Request"}, "500": {"description": "Internal Server Error"}}
            }
        },
        "/healthz": {
            "get": {
                "description": "Returns the application health and, if not healthy, an error",
                "produces": ["application/json"],
                "tags": ["General"],
                "summary": "Get health",
                "responses": {
                    "204": {"description": "No Content"},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/controllers.httpError"}}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["General"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/predict": {
            "post": {
                "description": "Predicts the category for an expense description. Nothing is persisted.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Prediction"],
                "summary": "Predict category",
                "parameters": [
                    {"description": "Description", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.PredictRequest"}},
                    {"type": "integer", "description": "Number of alternative categories to return", "name": "top", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.PredictResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/controllers.httpError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/controllers.httpError"}}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["Prediction"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/set_budget": {
            "post": {
                "description": "Sets the budget for the current month or the month given in the form",
                "consumes": ["application/x-www-form-urlencoded"],
                "tags": ["Dashboard"],
                "summary": "Set budget from form",
                "parameters": [
                    {"type": "string", "description": "Budget amount", "name": "budget_amount", "in": "formData"},
                    {"type": "string", "description": "Budget amount, used if budget_amount is not set", "name": "budget", "in": "formData"},
                    {"type": "string", "description": "Month in YYYY-MM format. Defaults to the current month", "name": "month", "in": "formData"}
                ],
                "responses": {"303": {"description": "See Other"}, "400": {"description": "Bad Request"}, "500": {"description": "Internal Server Error"}}
            }
        },
        "/v1": {
            "get": {
                "description": "Returns general information about the v1 API",
                "tags": ["v1"],
                "summary": "v1 API",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.V1Response"}}}
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["v1"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1/budgets/{month}": {
            "get": {
                "description": "Returns the budget for a month",
                "produces": ["application/json"],
                "tags": ["Budgets"],
                "summary": "Get budget",
                "parameters": [{"type": "string", "description": "Month in YYYY-MM format", "name": "month", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.BudgetResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/controllers.BudgetResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/controllers.BudgetResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/controllers.BudgetResponse"}}
                }
            },
            "put": {
                "description": "Sets the budget for a month. An existing budget for the month is replaced.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Budgets"],
                "summary": "Set budget",
                "parameters": [
                    {"type": "string", "description": "Month in YYYY-MM format", "name": "month", "in": "path", "required": true},
                    {"description": "Budget", "name": "budget", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.BudgetEditable"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.BudgetResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/controllers.BudgetResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/controllers.BudgetResponse"}}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["Budgets"],
                "summary": "Allowed HTTP verbs",
                "parameters": [{"type": "string", "description": "Month in YYYY-MM format", "name": "month", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1/expenses": {
            "get": {
                "description": "Returns the expenses of a month, newest first",
                "produces": ["application/json"],
                "tags": ["Expenses"],
                "summary": "Get expenses",
                "parameters": [{"type": "string", "description": "Month in YYYY-MM format. Defaults to the current month", "name": "month", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.ExpenseListResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/controllers.ExpenseListResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/controllers.ExpenseListResponse"}}
                }
            },
            "post": {
                "description": "Categorizes the description and creates a new expense",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Expenses"],
                "summary": "Create expense",
                "parameters": [{"description": "Expense", "name": "expense", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.ExpenseCreate"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/controllers.ExpenseResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/controllers.ExpenseResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/controllers.ExpenseResponse"}}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["Expenses"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1/expenses/{id}": {
            "get": {
                "description": "Returns a specific expense",
                "produces": ["application/json"],
                "tags": ["Expenses"],
                "summary": "Get expense",
                "parameters": [{"type": "string", "description": "ID formatted as string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.ExpenseResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/controllers.ExpenseResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/controllers.ExpenseResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/controllers.ExpenseResponse"}}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["Expenses"],
                "summary": "Allowed HTTP verbs",
                "parameters": [{"type": "string", "description": "ID formatted as string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/controllers.httpError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/controllers.httpError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/controllers.httpError"}}
                }
            }
        },
        "/v1/months/{month}": {
            "get": {
                "description": "Returns budget, spending, remaining amount and per category totals for a month",
                "produces": ["application/json"],
                "tags": ["Months"],
                "summary": "Get month",
                "parameters": [{"type": "string", "description": "Month in YYYY-MM format", "name": "month", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.MonthResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/controllers.MonthResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/controllers.MonthResponse"}}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["Months"],
                "summary": "Allowed HTTP verbs",
                "parameters": [{"type": "string", "description": "Month in YYYY-MM format", "name": "month", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/version": {
            "get": {
                "description": "Returns the release and Go version the server was built with",
                "tags": ["General"],
                "summary": "Build information",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/version.Response"}}}
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["General"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        }
    },
    "definitions": {
        "categorizer.Result": {
            "type": "object",
            "properties": {
                "category": {"description": "The category label", "type": "string", "example": "Food"},
                "confidence": {"description": "Confidence in percent", "type": "number", "example": 87.5}
            }
        },
        "controllers.Budget": {
            "type": "object",
            "properties": {
                "amount": {"description": "The budget for the month", "type": "string", "example": "1000"},
                "createdAt": {"description": "Time the resource was created", "type": "string", "example": "2026-10-01T20:12:34.724917Z"},
                "links": {"$ref": "#/definitions/controllers.BudgetLinks"},
                "month": {"description": "The month of the budget", "type": "string", "example": "2026-10"},
                "updatedAt": {"description": "Last time the resource was updated", "type": "string", "example": "2026-10-17T12:00:00.000000Z"}
            }
        },
        "controllers.BudgetEditable": {
            "type": "object",
            "properties": {
                "amount": {"description": "The budget for the month. Must not be negative", "type": "string", "example": "1000"}
            }
        },
        "controllers.BudgetLinks": {
            "type": "object",
            "properties": {
                "month": {"description": "The summary for the month of the budget", "type": "string", "example": "https://example.com/api/v1/months/2026-10"},
                "self": {"description": "The budget itself", "type": "string", "example": "https://example.com/api/v1/budgets/2026-10"}
            }
        },
        "controllers.BudgetResponse": {
            "type": "object",
            "properties": {
                "data": {"description": "Data for the budget", "allOf": [{"$ref": "#/definitions/controllers.Budget"}]},
                "error": {"description": "The error, if any occurred", "type": "string", "example": "there is no budget matching your query"}
            }
        },
        "controllers.Expense": {
            "type": "object",
            "properties": {
                "amount": {"description": "Amount spent", "type": "string", "example": "25"},
                "category": {"description": "Category assigned by the categorizer", "type": "string", "example": "Food"},
                "confidence": {"description": "Confidence of the category in percent", "type": "number", "example": 87.5},
                "createdAt": {"description": "Time the resource was created", "type": "string", "example": "2026-10-17T20:12:34.724917Z"},
                "date": {"description": "Date of the expense", "type": "string", "example": "2026-10-17T00:00:00Z"},
                "description": {"description": "Free text description of the expense", "type": "string", "example": "Pizza dinner with friends 25"},
                "id": {"description": "UUID for the resource", "type": "string", "example": "65392deb-5e92-4268-b114-297faad6cdce"},
                "links": {"$ref": "#/definitions/controllers.ExpenseLinks"},
                "updatedAt": {"description": "Last time the resource was updated", "type": "string", "example": "2026-10-17T20:12:34.724917Z"}
            }
        },
        "controllers.ExpenseCreate": {
            "type": "object",
            "properties": {
                "amount": {"description": "Amount spent. If not set, the first number in the description is used", "type": "string", "example": "25.00"},
                "date": {"description": "Date of the expense in YYYY-MM-DD format. Defaults to today", "type": "string", "format": "date", "example": "2026-10-17"},
                "description": {"description": "Free text description of the expense", "type": "string", "example": "Pizza dinner with friends"}
            }
        },
        "controllers.ExpenseLinks": {
            "type": "object",
            "properties": {
                "self": {"description": "The expense itself", "type": "string", "example": "https://example.com/api/v1/expenses/65392deb-5e92-4268-b114-297faad6cdce"}
            }
        },
        "controllers.ExpenseListResponse": {
            "type": "object",
            "properties": {
                "data": {"description": "List of expenses", "type": "array", "items": {"$ref": "#/definitions/controllers.Expense"}},
                "error": {"description": "The error, if any occurred", "type": "string", "example": "the month must be in YYYY-MM format"}
            }
        },
        "controllers.ExpenseResponse": {
            "type": "object",
            "properties": {
                "data": {"description": "Data for the expense", "allOf": [{"$ref": "#/definitions/controllers.Expense"}]},
                "error": {"description": "The error, if any occurred", "type": "string", "example": "the description must not be empty"}
            }
        },
        "controllers.Month": {
            "type": "object",
            "properties": {
                "budgetSet": {"description": "Is there a budget for the month?", "type": "boolean", "example": true},
                "categories": {"description": "Spent amount per category, highest first", "type": "array", "items": {"$ref": "#/definitions/models.CategoryTotal"}},
                "categoryTotals": {"description": "Spent amount per category", "type": "object"},
                "expenseCount": {"description": "Number of expenses in the month", "type": "integer", "example": 2},
                "links": {"$ref": "#/definitions/controllers.MonthLinks"},
                "month": {"description": "The month", "type": "string", "example": "2026-10"},
                "remaining": {"description": "Budget minus spent. Can be negative", "type": "string", "example": "850"},
                "totalBudget": {"description": "The budget for the month, 0 if none is set", "type": "string", "example": "1000"},
                "totalSpent": {"description": "Sum of all expenses in the month", "type": "string", "example": "150"},
                "warning": {"description": "Is the remaining amount below the warning threshold?", "type": "boolean", "example": false}
            }
        },
        "controllers.MonthLinks": {
            "type": "object",
            "properties": {
                "budget": {"description": "The budget for the month", "type": "string", "example": "https://example.com/api/v1/budgets/2026-10"},
                "expenses": {"description": "The expenses in the month", "type": "string", "example": "https://example.com/api/v1/expenses?month=2026-10"},
                "self": {"description": "The month summary itself", "type": "string", "example": "https://example.com/api/v1/months/2026-10"}
            }
        },
        "controllers.MonthResponse": {
            "type": "object",
            "properties": {
                "data": {"description": "Data for the month", "allOf": [{"$ref": "#/definitions/controllers.Month"}]},
                "error": {"description": "The error, if any occurred", "type": "string", "example": "the month must be in YYYY-MM format"}
            }
        },
        "controllers.PredictRequest": {
            "type": "object",
            "properties": {
                "description": {"description": "The expense description to categorize", "type": "string", "example": "Pizza dinner with friends"}
            }
        },
        "controllers.PredictResponse": {
            "type": "object",
            "properties": {
                "alternatives": {"description": "The best categories ordered by confidence, only set when top is greater than 1", "type": "array", "items": {"$ref": "#/definitions/categorizer.Result"}},
                "category": {"description": "The predicted category", "type": "string", "example": "Food"},
                "confidence": {"description": "Confidence for the category in percent", "type": "number", "example": 87.5},
                "probability": {"description": "Same as confidence", "type": "number", "example": 87.5}
            }
        },
        "controllers.V1Links": {
            "type": "object",
            "properties": {
                "budgets": {"description": "URL of budget endpoint, append the month as YYYY-MM", "type": "string", "example": "https://example.com/api/v1/budgets"},
                "expenses": {"description": "URL of expense list endpoint", "type": "string", "example": "https://example.com/api/v1/expenses"},
                "months": {"description": "URL of month summary endpoint, append the month as YYYY-MM", "type": "string", "example": "https://example.com/api/v1/months"}
            }
        },
        "controllers.V1Response": {
            "type": "object",
            "properties": {
                "links": {"description": "Links for the v1 API", "allOf": [{"$ref": "#/definitions/controllers.V1Links"}]}
            }
        },
        "controllers.httpError": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "the specified resource ID is not a valid UUID"}
            }
        },
        "models.CategoryTotal": {
            "type": "object",
            "properties": {
                "amount": {"description": "Sum of the expenses in the category", "type": "string", "example": "125.5"},
                "category": {"description": "Category label", "type": "string", "example": "Food"}
            }
        },
        "version.Info": {
            "type": "object",
            "properties": {
                "go": {"description": "Go toolchain the binary was built with", "type": "string", "example": "go1.25.5"},
                "version": {"description": "Release of the spendsense backend, set by the linker at build time", "type": "string", "example": "1.4.0"}
            }
        },
        "version.Response": {
            "type": "object",
            "properties": {
                "data": {"description": "Build information", "allOf": [{"$ref": "#/definitions/version.Info"}]}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
