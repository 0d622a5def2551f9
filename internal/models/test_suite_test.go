package models_test

import (
	"log"
	"testing"

	"github.com/spendsense/backend/internal/models"
	"github.com/spendsense/backend/internal/test"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type TestSuiteStandard struct {
	suite.Suite
	db *gorm.DB
}

// Pseudo-Test run by go test that runs the test suite.
func TestSuite(t *testing.T) {
	suite.Run(t, new(TestSuiteStandard))
}

// TearDownTest is called after each test in the suite.
func (suite *TestSuiteStandard) TearDownTest() {
	sqlDB, _ := suite.db.DB()
	sqlDB.Close()
}

// SetupTest is called before each test in the suite.
func (suite *TestSuiteStandard) SetupTest() {
	db, err := models.Connect(test.TmpFile(suite.T()))
	if err != nil {
		log.Fatalf("Database connection failed with: %#v", err)
	}

	suite.db = db
}

// CloseDB closes the database connection. This enables testing the handling
// of database errors.
func (suite *TestSuiteStandard) CloseDB() {
	sqlDB, err := suite.db.DB()
	if err != nil {
		suite.Assert().FailNowf("Failed to get database resource for teardown: %v", err.Error())
	}
	sqlDB.Close()
}

func (suite *TestSuiteStandard) createTestExpense(expense models.Expense) models.Expense {
	if expense.Description == "" {
		expense.Description = "Test expense"
	}

	if expense.Category == "" {
		expense.Category = "Other"
	}

	err := models.CreateExpense(suite.db, &expense)
	if err != nil {
		suite.Assert().FailNow("Expense could not be saved", "Error: %s, Expense: %#v", err, expense)
	}

	return expense
}
