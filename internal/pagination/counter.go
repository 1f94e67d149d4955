package pagination

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Counter reports the total number of items being paginated.
type Counter interface {
	Count(ctx context.Context) (int, error)
}

// CounterFunc adapts a function to the Counter interface.
type CounterFunc func(ctx context.Context) (int, error)

// Count calls f(ctx).
func (f CounterFunc) Count(ctx context.Context) (int, error) {
	return f(ctx)
}

// StaticCounter is a Counter over an already known item count.
type StaticCounter int

// Count returns c.
func (c StaticCounter) Count(context.Context) (int, error) {
	return int(c), nil
}

// Querier is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// QueryCounter counts the rows returned by a SELECT statement.
type QueryCounter struct {
	DB    Querier
	Query string // SELECT statement whose rows are counted
	Args  []any
}

// NewQueryCounter returns a counter for the rows of query.
func NewQueryCounter(db Querier, query string, args ...any) *QueryCounter {
	return &QueryCounter{
		DB:    db,
		Query: query,
		Args:  args,
	}
}

// Count runs SELECT count(*) over the wrapped statement.
func (c *QueryCounter) Count(ctx context.Context) (int, error) {
	var n int64
	sql := "SELECT count(*) FROM (" + c.Query + ") AS paginated"
	if err := c.DB.QueryRow(ctx, sql, c.Args...).Scan(&n); err != nil {
		return 0, err
	}
	return int(n), nil
}
