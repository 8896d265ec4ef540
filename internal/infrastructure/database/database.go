package database

import (
	"fmt"
	"os"
	"path/filepath"

	"sitetrack-backend/internal/domain"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Open opens a GORM DB for the given driver.
// Postgres uses PreferSimpleProtocol so it keeps working behind PgBouncer-style poolers.
// SQLite creates the parent directory of a file path when missing.
func Open(driver, dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}
	switch driver {
	case DriverPostgres:
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), cfg)
	case DriverSQLite, "":
		if dsn != ":memory:" && dsn != "" {
			if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
				return nil, fmt.Errorf("create sqlite dir: %w", err)
			}
		}
		if dsn == "" {
			dsn = ":memory:"
		}
		db, err := gorm.Open(sqlite.Open(dsn), cfg)
		if err != nil {
			return nil, err
		}
		// every pooled connection to :memory: would otherwise see its own empty database
		if dsn == ":memory:" {
			if sqlDB, err := db.DB(); err == nil {
				sqlDB.SetMaxOpenConns(1)
			}
		}
		return db, nil
	}
	return nil, fmt.Errorf("unsupported database driver %q", driver)
}

// AutoMigrate creates the tables the key-value store needs.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.KVEntry{})
}
