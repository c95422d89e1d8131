package sqlpart

import (
	"context"
	"database/sql"
)

// Executor runs parameterized queries.
// sql.DB, sql.Conn and sql.Tx can be passed as an executor.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Query executes a query and calls handler for every returned row.
// Iteration stops at the first error returned by handler.
func Query(ctx context.Context, db Executor, query string, args []interface{}, handler func(rows *sql.Rows) error) error {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}

	// Iterate through rows of returned dataset
	for rows.Next() {
		err = handler(rows)
		if err != nil {
			break
		}
	}
	// Check for errors during rows "Close".
	// This may be more important if multiple statements are executed
	// in a single batch and rows were written as well as read.
	if closeErr := rows.Close(); closeErr != nil {
		return closeErr
	}

	// Check for handler error.
	if err != nil {
		return err
	}

	// Check for errors during row iteration.
	return rows.Err()
}

// QueryRow executes a query expected to return at most one row
// and scans it into dest. It returns sql.ErrNoRows if there is no row.
func QueryRow(ctx context.Context, db Executor, query string, args []interface{}, dest ...interface{}) error {
	return db.QueryRowContext(ctx, query, args...).Scan(dest...)
}

// Exec executes a statement and returns the number of affected rows.
func Exec(ctx context.Context, db Executor, query string, args ...interface{}) (int64, error) {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
