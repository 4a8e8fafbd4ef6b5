// database/connection.go
package database

import (
	"context"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql" // MariaDB/MySQL driver
	"github.com/goto/salt/log"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure Go sqlite driver

	"github.com/gewnthar/flightpath/config"
)

// Store is the relational store for the airport and route tables.
type Store struct {
	db     *sqlx.DB
	driver string
	logger log.Logger
}

// Open connects to the configured database and verifies the connection.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger log.Logger) (*Store, error) {
	db, err := sqlx.Open(cfg.Driver, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if cfg.Driver == "sqlite" {
		// single writer; concurrent connections would hit SQLITE_BUSY inside transactions
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("connected to database", "driver", cfg.Driver)
	return &Store{db: db, driver: cfg.Driver, logger: logger}, nil
}

// Close closes the connection pool.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	s.logger.Debug("closing database connection")
	return s.db.Close()
}

// Driver returns the driver name the store was opened with.
func (s *Store) Driver() string {
	return s.driver
}
