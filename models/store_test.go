package models_test

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jobly/sqlpart"
	"github.com/jobly/sqlpart/models"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

var quietLog = slog.New(slog.NewTextHandler(io.Discard, nil))

// newMockStore returns a PostgreSQL store backed by sqlmock
// matching statements verbatim.
func newMockStore(t *testing.T) (*models.Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return models.NewStore(db, sqlpart.PostgreSQL, quietLog), mock
}

var jobColumns = []string{"id", "title", "salary", "equity", "company_handle"}

var sqliteSchema = []string{
	`CREATE TABLE companies (
		handle TEXT PRIMARY KEY,
		name TEXT UNIQUE NOT NULL,
		num_employees INTEGER CHECK (num_employees >= 0),
		description TEXT NOT NULL,
		logo_url TEXT)`,
	`CREATE TABLE jobs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		salary INTEGER CHECK (salary >= 0),
		equity NUMERIC CHECK (equity <= 1.0),
		company_handle TEXT NOT NULL REFERENCES companies ON DELETE CASCADE)`,
	`CREATE TABLE users (
		username TEXT PRIMARY KEY,
		password TEXT NOT NULL,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT NOT NULL CHECK (instr(email, '@') > 0),
		is_admin BOOLEAN NOT NULL DEFAULT FALSE)`,
}

var sqliteFill = []string{
	`INSERT INTO companies (handle, name, num_employees, description, logo_url)
		VALUES ('c1', 'C1', 1, 'Desc1', 'http://c1.img'),
		       ('c2', 'C2', 2, 'Desc2', 'http://c2.img'),
		       ('c3', 'C3', 3, 'Desc3', NULL)`,
	`INSERT INTO jobs (id, title, salary, equity, company_handle)
		VALUES (1, 'Test Job', 100000, '0', 'c1'),
		       (2, 'Test Job 2', 120000, '0.02', 'c2')`,
	`INSERT INTO users (username, password, first_name, last_name, email, is_admin)
		VALUES ('u1', 'x', 'U1F', 'U1L', 'u1@email.com', FALSE),
		       ('u2', 'x', 'U2F', 'U2L', 'u2@email.com', TRUE)`,
}

// newSQLiteStore returns a SQLite store over a fresh in-memory database.
func newSQLiteStore(t *testing.T) *models.Store {
	t.Helper()
	dsn := os.Getenv("SQLPART_SQLITE_DSN")
	if dsn == "" {
		dsn = ":memory:"
	}
	if dsn == "skip" {
		t.Skip("Skipping sqlite3 tests")
	}
	db, err := sql.Open("sqlite3", dsn)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	for _, script := range [][]string{sqliteSchema, sqliteFill} {
		for _, stmt := range script {
			_, err := db.ExecContext(ctx, stmt)
			require.NoError(t, err, stmt)
		}
	}
	return models.NewStore(db, sqlpart.SQLite, quietLog)
}

func ptr[T any](v T) *T {
	return &v
}
