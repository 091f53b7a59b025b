package repository

import (
	"context"
	"errors"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/repokit/pkg/sanitizer"
)

// Querier is the subset of pgx satisfied by *pgxpool.Pool, *pgx.Conn and
// pgx.Tx, so every helper works inside and outside transactions.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// NewID generates a uuidv4 string primary key.
func NewID() string {
	return uuid.NewString()
}

// Get returns the single row matched by q, mapped onto T by column name.
// Returns ErrNotFound when no row matches.
func Get[T any](ctx context.Context, db Querier, q *Query) (T, error) {
	var zero T

	sql, args, err := q.SQL()
	if err != nil {
		return zero, err
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return zero, err
	}

	res, err := pgx.CollectOneRow(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, ErrNotFound
		}
		return zero, err
	}
	return res, nil
}

// Select returns every row matched by q, mapped onto T by column name.
func Select[T any](ctx context.Context, db Querier, q *Query) ([]T, error) {
	sql, args, err := q.SQL()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowToStructByNameLax[T])
}

// Count returns the number of rows matched by q's table and conditions,
// ignoring ordering and pagination.
func Count(ctx context.Context, db Querier, q *Query) (int64, error) {
	counted := &Query{table: q.table, wheres: q.wheres, args: q.args, limit: -1, offset: -1}

	sql, args, err := counted.render([]string{"COUNT(*)"})
	if err != nil {
		return 0, err
	}

	var n int64
	if err := db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Exists reports whether q matches at least one row.
func Exists(ctx context.Context, db Querier, q *Query) (bool, error) {
	n, err := Count(ctx, db, q)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Insert writes rec as a new row in table. Column order is deterministic
// (sorted by name) so generated SQL is stable across runs.
func Insert(ctx context.Context, db Querier, table string, rec sanitizer.Record) error {
	sql, args, err := buildInsert(table, rec, "")
	if err != nil {
		return err
	}

	_, err = db.Exec(ctx, sql, args...)
	return err
}

// InsertReturningID writes rec as a new row and returns the generated id
// column.
func InsertReturningID(ctx context.Context, db Querier, table string, rec sanitizer.Record) (string, error) {
	sql, args, err := buildInsert(table, rec, "id")
	if err != nil {
		return "", err
	}

	var id string
	if err := db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

// Update overwrites rec's columns on every row matched by the where clause
// and returns the number of rows affected. An empty where clause is refused.
func Update(ctx context.Context, db Querier, table string, rec sanitizer.Record, where string, whereArgs ...any) (int64, error) {
	sql, args, err := buildUpdate(table, rec, where, whereArgs)
	if err != nil {
		return 0, err
	}

	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Delete removes every row matched by the where clause and returns the
// number of rows affected. An empty where clause is refused.
func Delete(ctx context.Context, db Querier, table string, where string, whereArgs ...any) (int64, error) {
	if table == "" {
		return 0, ErrMissingTable
	}
	if strings.TrimSpace(where) == "" {
		return 0, ErrMissingWhere
	}

	next := 1
	sql := "DELETE FROM " + table + " WHERE " + rebind(where, &next)

	tag, err := db.Exec(ctx, sql, whereArgs...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func sortedColumns(rec sanitizer.Record) []string {
	cols := make([]string, 0, len(rec))
	for col := range rec {
		cols = append(cols, col)
	}
	slices.Sort(cols)
	return cols
}

func buildInsert(table string, rec sanitizer.Record, returning string) (string, []any, error) {
	if table == "" {
		return "", nil, ErrMissingTable
	}
	if len(rec) == 0 {
		return "", nil, ErrEmptyRecord
	}

	cols := sortedColumns(rec)
	placeholders := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, col := range cols {
		placeholders[i] = "$" + strconv.Itoa(i+1)
		args[i] = rec[col]
	}

	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(table)
	b.WriteString(" (")
	b.WriteString(strings.Join(cols, ", "))
	b.WriteString(") VALUES (")
	b.WriteString(strings.Join(placeholders, ", "))
	b.WriteString(")")
	if returning != "" {
		b.WriteString(" RETURNING ")
		b.WriteString(returning)
	}

	return b.String(), args, nil
}

func buildUpdate(table string, rec sanitizer.Record, where string, whereArgs []any) (string, []any, error) {
	if table == "" {
		return "", nil, ErrMissingTable
	}
	if len(rec) == 0 {
		return "", nil, ErrEmptyRecord
	}
	if strings.TrimSpace(where) == "" {
		return "", nil, ErrMissingWhere
	}

	cols := sortedColumns(rec)
	assignments := make([]string, len(cols))
	args := make([]any, 0, len(cols)+len(whereArgs))
	for i, col := range cols {
		assignments[i] = col + " = $" + strconv.Itoa(i+1)
		args = append(args, rec[col])
	}

	next := len(cols) + 1
	sql := "UPDATE " + table + " SET " + strings.Join(assignments, ", ") +
		" WHERE " + rebind(where, &next)

	return sql, append(args, whereArgs...), nil
}
