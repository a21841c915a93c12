package dbx

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Placeholder renders the n-th (1-based) bind parameter of a statement.
type Placeholder func(n int) string

// DollarPlaceholder renders PostgreSQL style parameters: $1, $2, ...
func DollarPlaceholder(n int) string { return "$" + strconv.Itoa(n) }

// QuestionPlaceholder renders positional "?" parameters (SQLite, MySQL).
func QuestionPlaceholder(int) string { return "?" }

// ChildSet describes a table of rows owned by a single parent row.
//
// Values returns the column values of one item, in Columns order and
// without the parent key. The index i is the item's position in the
// replacement list, so ordered sets can store it as their sort column.
type ChildSet[T any] struct {
	Table        string
	ParentColumn string
	Columns      []string
	Values       func(i int, item T) []any
	Placeholder  Placeholder
}

func (s ChildSet[T]) placeholder(n int) string {
	if s.Placeholder == nil {
		return DollarPlaceholder(n)
	}
	return s.Placeholder(n)
}

func (s ChildSet[T]) deleteQuery() string {
	return fmt.Sprintf("DELETE FROM %s WHERE %s = %s", s.Table, s.ParentColumn, s.placeholder(1))
}

func (s ChildSet[T]) insertQuery(parentKey any, items []T) (string, []any, error) {
	cols := append([]string{s.ParentColumn}, s.Columns...)
	args := make([]any, 0, len(items)*len(cols))
	rows := make([]string, 0, len(items))

	n := 0
	for i, item := range items {
		values := s.Values(i, item)
		if len(values) != len(s.Columns) {
			return "", nil, fmt.Errorf("%s: row %d has %d values, want %d", s.Table, i, len(values), len(s.Columns))
		}

		ph := make([]string, 0, len(cols))
		for _, v := range append([]any{parentKey}, values...) {
			n++
			ph = append(ph, s.placeholder(n))
			args = append(args, v)
		}
		rows = append(rows, "("+strings.Join(ph, ", ")+")")
	}

	q := fmt.Sprintf("INSERT INTO %s (%s) VALUES %s", s.Table, strings.Join(cols, ", "), strings.Join(rows, ", "))
	return q, args, nil
}

// ReplaceChildren deletes every row of set that belongs to parentKey and
// inserts items in their place with a single multi-row INSERT. Each row is
// stamped with parentKey; nothing the items carry can redirect it to
// another parent. An empty items slice leaves the parent with no children.
//
// Duplicates are not removed here. A unique or primary key violation fails
// the INSERT, and because tx must be the handle passed in by WithTx the
// whole replacement rolls back.
//
// It returns the number of rows inserted.
func ReplaceChildren[T any](ctx context.Context, tx DBTX, set ChildSet[T], parentKey any, items []T) (int, error) {
	if _, err := tx.ExecContext(ctx, set.deleteQuery(), parentKey); err != nil {
		return 0, ClassifyError(err)
	}

	return InsertChildren(ctx, tx, set, parentKey, items)
}

// InsertChildren adds items to the children of parentKey without touching
// the rows already there.
func InsertChildren[T any](ctx context.Context, db DBTX, set ChildSet[T], parentKey any, items []T) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	q, args, err := set.insertQuery(parentKey, items)
	if err != nil {
		return 0, err
	}

	if _, err := db.ExecContext(ctx, q, args...); err != nil {
		return 0, ClassifyError(err)
	}

	return len(items), nil
}
