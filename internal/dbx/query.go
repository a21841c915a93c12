package dbx

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/minutesfolio/internal/common"
)

// RowScanner is implemented by both *sql.Row and *sql.Rows.
type RowScanner interface {
	Scan(dest ...any) error
}

// QueryOne runs a single-row query and scans it with scan. A missing row
// is reported as common.ErrorNotFound.
func QueryOne[T any](ctx context.Context, db DBTX, scan func(RowScanner) (T, error), query string, args ...any) (*T, error) {
	v, err := scan(db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, ClassifyError(err)
	}
	return &v, nil
}

// Query runs query and scans every row with scan. The result is never nil,
// so an empty set encodes as [] in JSON.
func Query[T any](ctx context.Context, db DBTX, scan func(RowScanner) (T, error), query string, args ...any) ([]T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, ClassifyError(err)
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, ClassifyError(err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, ClassifyError(err)
	}

	return out, nil
}

// ExecOne runs a statement that must touch at least one row. Zero affected
// rows is reported as common.ErrorNotFound.
func ExecOne(ctx context.Context, db DBTX, query string, args ...any) error {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return ClassifyError(err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	return nil
}

// Exec runs a statement and returns the number of affected rows.
func Exec(ctx context.Context, db DBTX, query string, args ...any) (int64, error) {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, ClassifyError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

var _ RowScanner = (*sql.Row)(nil)
var _ RowScanner = (*sql.Rows)(nil)
