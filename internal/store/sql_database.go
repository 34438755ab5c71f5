// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/migrations"
)

// DB is the shared database handle injected into every repository.
// It carries the dialect specific pieces: the squirrel placeholder format
// and the driver error classifier.
type DB struct {
	*sqlx.DB
	driver             string
	errorClassificator ErrorClassificator
	builder            sq.StatementBuilderType
	obs                *observability
	logger             *logger.Logger
}

// NewDB opens and pings a connection pool for cfg.Driver ("pgx" or "sqlite3").
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// wrapDB builds a [DB] around an already opened *sql.DB.
func wrapDB(conn *sql.DB, driver string, log *logger.Logger) *DB {
	db := &DB{
		DB:     sqlx.NewDb(conn, driver),
		driver: driver,
		obs:    newObservability(driver),
		logger: log,
	}

	switch driver {
	case config.DriverSQLite:
		db.errorClassificator = NewSQLiteErrorClassifier()
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
	default:
		db.errorClassificator = NewPostgresErrorClassifier()
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}

	return db
}

// Migrate creates the schema if it does not exist yet.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB.DB, db.driver, db.logger)
}

func (db *DB) classify(err error) ErrorClassification {
	return db.errorClassificator.Classify(err)
}
