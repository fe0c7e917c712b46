package database

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"pizzeria/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ErrMissingDSN is returned when no database location is configured. Callers
// cannot recover from it; main treats it as fatal.
var ErrMissingDSN = errors.New("DATABASE_URL is not set, please define it in the environment")

// Connector lazily opens a single shared database handle. Connect is safe to
// call concurrently: the underlying open runs exactly once and its outcome,
// handle or error, is memoized for the process lifetime. The handle is meant
// to be injected into repositories; there is no package-level state.
type Connector struct {
	dsn  string
	once sync.Once
	db   *gorm.DB
	err  error
}

// NewConnector creates a Connector for the given DSN. The DSN is not checked
// until the first Connect call.
func NewConnector(dsn string) *Connector {
	return &Connector{dsn: dsn}
}

// Connect opens the connection and migrates the schema on first call, and
// returns the memoized result on every later call.
func (c *Connector) Connect() (*gorm.DB, error) {
	c.once.Do(func() {
		if c.dsn == "" {
			c.err = ErrMissingDSN
			return
		}

		// TranslateError makes unique-index violations surface as
		// gorm.ErrDuplicatedKey regardless of driver.
		db, err := gorm.Open(postgres.Open(c.dsn), &gorm.Config{TranslateError: true})
		if err != nil {
			c.err = fmt.Errorf("failed to connect to database: %w", err)
			return
		}

		if err := db.AutoMigrate(&models.Pizza{}, &models.User{}); err != nil {
			c.err = fmt.Errorf("failed to migrate database: %w", err)
			return
		}

		log.Println("Database connected and schema migrated")
		c.db = db
	})
	return c.db, c.err
}
