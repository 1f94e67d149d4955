package pagination

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DukeRupert/bootkit/internal/domain"
)

func TestPaginator_Page(t *testing.T) {
	p := NewPaginator(StaticCounter(95), 10)

	page, err := p.Page(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, 10, page.NumPages)
	assert.Equal(t, 90, page.Offset)
	assert.Equal(t, 5, page.Limit)
	assert.Equal(t, 91, page.StartIndex())
	assert.Equal(t, 95, page.EndIndex())
	assert.False(t, page.HasNext())
	assert.True(t, page.HasPrevious())
	assert.Equal(t, 9, page.PreviousNumber())
}

func TestPaginator_Orphans(t *testing.T) {
	p := NewPaginator(StaticCounter(23), 10)
	p.Orphans = 3

	assert.Equal(t, 2, p.NumPages(23))

	page, err := p.Page(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 10, page.Offset)
	assert.Equal(t, 13, page.Limit)
}

func TestPaginator_EmptyResultSet(t *testing.T) {
	p := NewPaginator(StaticCounter(0), 10)

	page, err := p.Page(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, page.NumPages)
	assert.Equal(t, 0, page.Limit)
	assert.Equal(t, 0, page.StartIndex())

	p.AllowEmptyFirstPage = false
	_, err = p.Page(context.Background(), 1)
	assert.Equal(t, domain.ENOTFOUND, domain.ErrorCode(err))
}

func TestPaginator_InvalidNumbers(t *testing.T) {
	p := NewPaginator(StaticCounter(30), 10)

	_, err := p.Page(context.Background(), 0)
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))

	_, err = p.Page(context.Background(), 4)
	assert.Equal(t, domain.ENOTFOUND, domain.ErrorCode(err))

	p.PerPage = 0
	_, err = p.Page(context.Background(), 1)
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
}

func TestPaginator_NumPagesWithoutPerPage(t *testing.T) {
	assert.Equal(t, 0, (&Paginator{AllowEmptyFirstPage: true}).NumPages(10))
	assert.Equal(t, 0, NewPaginator(StaticCounter(10), -5).NumPages(10))
}

func TestPaginator_CounterError(t *testing.T) {
	boom := errors.New("connection refused")
	p := NewPaginator(CounterFunc(func(context.Context) (int, error) {
		return 0, boom
	}), 10)

	_, err := p.Page(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, domain.EINTERNAL, domain.ErrorCode(err))
}

type fakeRow struct {
	n   int64
	err error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*int64)) = r.n
	return nil
}

type fakeQuerier struct {
	row  fakeRow
	sql  string
	args []any
}

func (q *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.sql = sql
	q.args = args
	return q.row
}

func TestQueryCounter(t *testing.T) {
	db := &fakeQuerier{row: fakeRow{n: 42}}
	c := NewQueryCounter(db, "SELECT id FROM sites WHERE owner_id = $1", 7)

	n, err := c.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, n)
	assert.Equal(t, "SELECT count(*) FROM (SELECT id FROM sites WHERE owner_id = $1) AS paginated", db.sql)
	assert.Equal(t, []any{7}, db.args)
}

func TestQueryCounter_NoRows(t *testing.T) {
	db := &fakeQuerier{row: fakeRow{err: pgx.ErrNoRows}}
	_, err := NewQueryCounter(db, "SELECT 1").Count(context.Background())
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}
