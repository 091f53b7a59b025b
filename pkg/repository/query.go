package repository

import (
	"strconv"
	"strings"
)

// Query accumulates the parts of a SELECT statement. Build one with Q and
// chain the shortcuts; SQL renders it with sequential $n placeholders.
type Query struct {
	table   string
	columns []string
	wheres  []string
	args    []any
	orderBy []string
	limit   int
	offset  int
}

// Q starts a query against table.
func Q(table string) *Query {
	return &Query{table: table, limit: -1, offset: -1}
}

// Columns sets the selected columns, defaulting to * when never called.
func (q *Query) Columns(cols ...string) *Query {
	q.columns = append(q.columns, cols...)
	return q
}

// Where adds a condition; multiple conditions are AND-ed. Use ? for
// placeholders, they are rebound to $n when the statement is rendered.
func (q *Query) Where(expr string, args ...any) *Query {
	if expr != "" {
		q.wheres = append(q.wheres, expr)
		q.args = append(q.args, args...)
	}
	return q
}

// OrderBy appends ordering expressions, rendered in call order.
func (q *Query) OrderBy(exprs ...string) *Query {
	q.orderBy = append(q.orderBy, exprs...)
	return q
}

func (q *Query) Limit(n int) *Query {
	q.limit = n
	return q
}

func (q *Query) Offset(n int) *Query {
	q.offset = n
	return q
}

// SQL renders the SELECT statement and its arguments.
func (q *Query) SQL() (string, []any, error) {
	return q.render(q.columns)
}

func (q *Query) render(columns []string) (string, []any, error) {
	if q.table == "" {
		return "", nil, ErrMissingTable
	}

	var b strings.Builder
	b.WriteString("SELECT ")
	if len(columns) == 0 {
		b.WriteString("*")
	} else {
		b.WriteString(strings.Join(columns, ", "))
	}
	b.WriteString(" FROM ")
	b.WriteString(q.table)

	next := 1
	if clause := renderWhere(q.wheres, &next); clause != "" {
		b.WriteString(" WHERE ")
		b.WriteString(clause)
	}

	if len(q.orderBy) > 0 {
		b.WriteString(" ORDER BY ")
		b.WriteString(strings.Join(q.orderBy, ", "))
	}
	if q.limit >= 0 {
		b.WriteString(" LIMIT ")
		b.WriteString(strconv.Itoa(q.limit))
	}
	if q.offset >= 0 {
		b.WriteString(" OFFSET ")
		b.WriteString(strconv.Itoa(q.offset))
	}

	return b.String(), append([]any(nil), q.args...), nil
}

// renderWhere joins conditions with AND, rebinding ? placeholders starting
// at *next.
func renderWhere(wheres []string, next *int) string {
	if len(wheres) == 0 {
		return ""
	}

	parts := make([]string, len(wheres))
	for i, w := range wheres {
		parts[i] = "(" + rebind(w, next) + ")"
	}
	return strings.Join(parts, " AND ")
}

// rebind replaces each ? in expr with a sequential $n placeholder.
func rebind(expr string, next *int) string {
	if !strings.ContainsRune(expr, '?') {
		return expr
	}

	var b strings.Builder
	b.Grow(len(expr) + 4)
	for _, r := range expr {
		if r == '?' {
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(*next))
			*next++
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
