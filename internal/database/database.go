package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"boardshelf/backend/internal/config"
	"boardshelf/backend/internal/storage"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open returns the store selected by cfg.StoreDriver.
func Open(cfg *config.Config) (storage.Store, error) {
	switch cfg.StoreDriver {
	case config.DriverMemory:
		log.Println("Using in-memory store; nothing will be persisted.")
		return storage.NewMemoryStore(), nil
	case config.DriverPostgres:
		return openPostgres(cfg.DatabaseURL)
	case config.DriverSQLite, "":
		s, err := storage.NewSQLiteStore(cfg.StorePath)
		if err != nil {
			return nil, err
		}
		log.Printf("SQLite store opened at %s.", s.Path())
		return s, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

func openPostgres(dsn string) (storage.Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL is required for the postgres driver")
	}

	// Configure GORM logger
	customLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             200 * time.Millisecond, // Slow SQL threshold
			LogLevel:                  logger.Warn,            // Log level
			IgnoreRecordNotFoundError: true,                   // missing keys are a normal first run
			Colorful:                  true,                   // Enable color
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: customLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	log.Println("Database connection established.")

	s, err := storage.NewGormStore(db)
	if err != nil {
		return nil, err
	}

	log.Println("Database migrated successfully.")
	return s, nil
}
