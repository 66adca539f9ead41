package database

import (
	"fmt"
	"testing"
	"time"

	"finance-visualizer/internal/config"
	"finance-visualizer/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testTables = []string{
	"transactions",
	"budgets",
	"categories",
}

// SetupTestDB opens a private in-memory SQLite database with the finance schema
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB:     db,
		driver: config.DriverSQLite,
		config: &config.DatabaseConfig{
			URL:            ":memory:",
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	if err := testDB.CreateIndexes(); err != nil {
		t.Fatalf("failed to create indexes: %v", err)
	}

	return testDB
}

func CreateTestTransaction(t *testing.T, db *DB, txType, category, amount string, date time.Time) *models.Transaction {
	t.Helper()

	transaction := &models.Transaction{
		Type:        txType,
		Amount:      decimal.RequireFromString(amount),
		Date:        date,
		Description: fmt.Sprintf("%s %s", category, amount),
		Category:    category,
	}

	if err := db.Create(transaction).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}

	return transaction
}

func CreateTestBudget(t *testing.T, db *DB, category, amount, period string) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		Category: category,
		Amount:   decimal.RequireFromString(amount),
		Period:   period,
	}

	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}

	return budget
}

func CreateTestCategory(t *testing.T, db *DB, name, categoryType string) *models.Category {
	t.Helper()

	category := &models.Category{
		Name: name,
		Type: categoryType,
	}

	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}

	return category
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	for _, table := range testTables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
