package database

import (
	"fmt"
	"strings"

	"github.com/orghandbook/orghandbook-api/internal/config"
	"github.com/orghandbook/orghandbook-api/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect opens the database selected by the database.url scheme:
// postgres:// and mysql:// pick their drivers, anything else is treated as
// a sqlite path or DSN.
func Connect(cfg *config.Config) error {
	url := cfg.Database.URL

	var dialector gorm.Dialector
	switch {
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		dialector = postgres.Open(url)
	case strings.HasPrefix(url, "mysql://"):
		dialector = mysql.Open(strings.TrimPrefix(url, "mysql://"))
	default:
		dialector = sqlite.Open(url)
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	return nil
}

// Migrate creates missing tables, columns and the join table. It runs
// before the server accepts the first request.
func Migrate() error {
	err := DB.AutoMigrate(
		&models.Building{},
		&models.Activity{},
		&models.Organization{},
		&models.PhoneNumber{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Close disposes of the underlying connection pool.
func Close() error {
	if DB == nil {
		return nil
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func GetDB() *gorm.DB {
	return DB
}

// SetDB sets the database instance (used for testing)
func SetDB(db *gorm.DB) {
	DB = db
}
