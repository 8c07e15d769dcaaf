package db

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/balkashynov/fluxo/internal/models"
)

// memoryDSN keeps the session store off disk. Board state never outlives
// the process.
const memoryDSN = ":memory:"

// DB is the session store opened by Initialize
var DB *gorm.DB

// Initialize opens a fresh in-memory session store and runs migrations.
// Calling it again discards the previous store.
func Initialize() error {
	if err := Close(); err != nil {
		return fmt.Errorf("failed to close previous store: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(memoryDSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return fmt.Errorf("failed to open session store: %w", err)
	}

	// every pooled connection to :memory: would get its own empty database
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to access session store: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	DB = db

	if err := runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// runMigrations creates the session schema
func runMigrations() error {
	return DB.AutoMigrate(
		&models.Notification{},
		&models.Activity{},
	)
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		sqlDB, err := DB.DB()
		if err != nil {
			return err
		}
		DB = nil
		return sqlDB.Close()
	}
	return nil
}
