// Package db opens database connections for record accessors.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/jobly/sqlpart"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// PingTimeout limits the connectivity check done by Open.
const PingTimeout = 5 * time.Second

// DB is an open database handle and the SQL dialect it speaks.
type DB struct {
	*sql.DB
	Dialect *sqlpart.Dialect
	Logger  *slog.Logger
}

// Open connects to a database and checks the connection.
func Open(ctx context.Context, cfg Config) (*DB, error) {
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	dialect, err := sqlpart.DialectFor(cfg.Driver)
	if err != nil {
		return nil, err
	}

	sqlDB, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("db: open %s: %w", cfg.Driver, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, PingTimeout)
	err = sqlDB.PingContext(pingCtx)
	cancel()
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("db: connect to %s: %w", cfg.Driver, err)
	}

	cfg.Logger.Info("database connected", "driver", cfg.Driver, "dialect", dialect.Name())
	return &DB{DB: sqlDB, Dialect: dialect, Logger: cfg.Logger}, nil
}
