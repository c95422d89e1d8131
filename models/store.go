// Package models implements record accessors for jobs, companies and users.
//
// Accessors build filtered reads and partial updates with sqlpart and run
// them through a sqlpart.Executor, such as *sql.DB.
package models

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/jobly/sqlpart"
	"github.com/valyala/bytebufferpool"
)

// Store gives access to records kept in a database.
type Store struct {
	db      sqlpart.Executor
	dialect *sqlpart.Dialect
	log     *slog.Logger
}

// NewStore creates a Store. A nil dialect means PostgreSQL,
// a nil logger means slog.Default().
func NewStore(db sqlpart.Executor, dialect *sqlpart.Dialect, logger *slog.Logger) *Store {
	if dialect == nil {
		dialect = sqlpart.PostgreSQL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{db: db, dialect: dialect, log: logger}
}

// Jobs returns the job accessor.
func (s *Store) Jobs() *Jobs { return &Jobs{s} }

// Companies returns the company accessor.
func (s *Store) Companies() *Companies { return &Companies{s} }

// Users returns the user accessor.
func (s *Store) Users() *Users { return &Users{s} }

func (s *Store) query(ctx context.Context, query string, args []interface{}, handler func(rows *sql.Rows) error) error {
	s.log.DebugContext(ctx, "query", "sql", query, "args", len(args))
	return sqlpart.Query(ctx, s.db, query, args, handler)
}

func (s *Store) queryRow(ctx context.Context, query string, args []interface{}, dest ...interface{}) error {
	s.log.DebugContext(ctx, "query row", "sql", query, "args", len(args))
	return sqlpart.QueryRow(ctx, s.db, query, args, dest...)
}

func (s *Store) exec(ctx context.Context, query string, args ...interface{}) (int64, error) {
	s.log.DebugContext(ctx, "exec", "sql", query, "args", len(args))
	return sqlpart.Exec(ctx, s.db, query, args...)
}

// bind numbers ? placeholders of a statement template from argNo on.
func (s *Store) bind(query string, argNo int) string {
	return s.dialect.Rebind(query, argNo)
}

// statement joins non-empty SQL parts with spaces.
func statement(parts ...string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	for _, part := range parts {
		if part == "" {
			continue
		}
		if len(buf.B) > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(part)
	}
	return buf.String()
}
