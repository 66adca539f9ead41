package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"finance-visualizer/internal/config"
	"finance-visualizer/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	driver string
	config *config.DatabaseConfig
}

// Open returns the gorm dialector for the configured DATABASE_URL
func Open(cfg *config.DatabaseConfig) (gorm.Dialector, string, error) {
	driver, dsn, err := cfg.Driver()
	if err != nil {
		return nil, "", err
	}

	switch driver {
	case config.DriverPostgres:
		return postgres.Open(dsn), driver, nil
	default:
		return sqlite.Open(dsn), driver, nil
	}
}

func New(cfg *config.DatabaseConfig, logLevel slog.Level) (*DB, error) {
	dialector, driver, err := Open(cfg)
	if err != nil {
		return nil, err
	}

	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(gormLogLevel(logLevel)),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if driver == config.DriverSQLite {
		// SQLite serialises writers; a single connection also keeps :memory: databases alive.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.MaxConnections)
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		driver: driver,
		config: cfg,
	}, nil
}

// Driver reports which dialect the connection uses
func (db *DB) Driver() string {
	return db.driver
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.Category{},
		&models.Budget{},
		&models.Transaction{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (db *DB) CreateIndexes() error {
	queries := []string{
		// Transaction indexes
		"CREATE INDEX IF NOT EXISTS idx_transactions_date_created ON transactions(date DESC, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_category_lower ON transactions(LOWER(category))",
		"CREATE INDEX IF NOT EXISTS idx_transactions_type_date ON transactions(type, date)",
		// Budget indexes
		"CREATE INDEX IF NOT EXISTS idx_budgets_category_lower ON budgets(LOWER(category))",
		"CREATE INDEX IF NOT EXISTS idx_budgets_period ON budgets(period)",
		// Category indexes
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_name_lower ON categories(LOWER(name))",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			slog.Warn("failed to create index", "query", query, "error", err)
		}
	}

	return nil
}

// Initialize creates and configures the database connection
func Initialize(cfg *config.Config) (*DB, error) {
	db, err := New(&cfg.Database, cfg.Logging.SlogLevel())
	if err != nil {
		return nil, err
	}

	migrated := false
	if cfg.Features.RunMigrations && db.driver == config.DriverPostgres {
		sqlDB, err := db.DB.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql.DB: %w", err)
		}

		// Run SQL-based migrations using golang-migrate, falling back to AutoMigrate
		if err := RunMigrationsIfEnabled(sqlDB, cfg.Features); err != nil {
			slog.Warn("migration runner failed, falling back to GORM AutoMigrate", "error", err)
		} else {
			migrated = true
		}
	}

	if !migrated {
		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if err := db.CreateIndexes(); err != nil {
		slog.Warn("failed to create some indexes", "error", err)
	}

	slog.Info("database initialized", "driver", db.driver)

	return db, nil
}

func gormLogLevel(level slog.Level) logger.LogLevel {
	switch {
	case level <= slog.LevelDebug:
		return logger.Info
	case level <= slog.LevelWarn:
		return logger.Warn
	default:
		return logger.Error
	}
}
