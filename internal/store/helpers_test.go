package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/logger"
)

// newMockDB returns a PostgreSQL flavoured DB backed by sqlmock.
func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		conn.Close()
	})
	return wrapDB(conn, config.DriverPostgres, logger.Nop()), mock
}

// newSQLiteDB returns a migrated SQLite database in a temp file.
func newSQLiteDB(t *testing.T) *DB {
	t.Helper()
	cfg := config.DB{
		DSN:    filepath.Join(t.TempDir(), "blog.db"),
		Driver: config.DriverSQLite,
	}
	db, err := NewDB(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate())
	return db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}
