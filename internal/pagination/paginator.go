package pagination

import (
	"context"

	"github.com/DukeRupert/bootkit/internal/domain"
)

// Page is one page of a paginated result set.
type Page struct {
	Number   int // 1-based page number
	NumPages int // Total number of pages
	Count    int // Total number of items across all pages
	Offset   int // Index of the first item on this page
	Limit    int // Number of items on this page
}

// HasNext reports whether a page follows this one.
func (p Page) HasNext() bool {
	return p.Number < p.NumPages
}

// HasPrevious reports whether a page precedes this one.
func (p Page) HasPrevious() bool {
	return p.Number > 1
}

// NextNumber returns the following page number.
func (p Page) NextNumber() int {
	return p.Number + 1
}

// PreviousNumber returns the preceding page number.
func (p Page) PreviousNumber() int {
	return p.Number - 1
}

// StartIndex returns the 1-based index of the first item on the page,
// or 0 for an empty result set.
func (p Page) StartIndex() int {
	if p.Count == 0 {
		return 0
	}
	return p.Offset + 1
}

// EndIndex returns the 1-based index of the last item on the page.
func (p Page) EndIndex() int {
	return p.Offset + p.Limit
}

// Paginator splits a counted result set into pages.
type Paginator struct {
	Counter             Counter
	PerPage             int
	Orphans             int  // Trailing items folded into the last page
	AllowEmptyFirstPage bool // Page 1 of an empty set is valid
}

// NewPaginator returns a paginator that allows an empty first page.
func NewPaginator(counter Counter, perPage int) *Paginator {
	return &Paginator{
		Counter:             counter,
		PerPage:             perPage,
		AllowEmptyFirstPage: true,
	}
}

// NumPages returns the number of pages needed for count items, or 0 when
// PerPage is not positive.
func (p *Paginator) NumPages(count int) int {
	if p.PerPage < 1 {
		return 0
	}
	if count == 0 && !p.AllowEmptyFirstPage {
		return 0
	}
	hits := max(1, count-p.Orphans)
	return (hits + p.PerPage - 1) / p.PerPage
}

// Page counts the result set and returns page number.
func (p *Paginator) Page(ctx context.Context, number int) (Page, error) {
	const op = "pagination.page"

	if p.PerPage < 1 {
		return Page{}, domain.Errorf(domain.EINVALID, op, "per page should be a positive integer, you specified %d", p.PerPage)
	}
	if number < 1 {
		return Page{}, domain.Errorf(domain.EINVALID, op, "page number %d is less than 1", number)
	}

	count, err := p.Counter.Count(ctx)
	if err != nil {
		return Page{}, domain.Wrap(err, domain.EINTERNAL, op, "count failed")
	}

	numPages := p.NumPages(count)
	if number > numPages && !(number == 1 && p.AllowEmptyFirstPage) {
		return Page{}, domain.Errorf(domain.ENOTFOUND, op, "page %d contains no results", number)
	}

	bottom := (number - 1) * p.PerPage
	top := bottom + p.PerPage
	if top+p.Orphans >= count {
		top = count
	}

	return Page{
		Number:   number,
		NumPages: numPages,
		Count:    count,
		Offset:   bottom,
		Limit:    max(top-bottom, 0),
	}, nil
}
