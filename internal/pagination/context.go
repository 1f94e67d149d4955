package pagination

import (
	"strings"
)

// Size modifiers understood by the pagination template.
const (
	SizeSmall = "small"
	SizeLarge = "large"
)

// Alignment modifiers understood by the pagination template.
const (
	AlignCenter = "center"
	AlignRight  = "right"
)

// Options are the display options of a pagination control.
type Options struct {
	PagesToShow int    // Window size, must be positive
	URL         string // Base URL for page links
	Size        string // "small", "large" or empty
	Align       string // "center", "right" or empty
	Extra       string // Query fragment preserved across page links
}

// Context is the view model handed to the pagination template.
type Context struct {
	URL         string // Link base ending in "?" or "&", may be empty
	NumPages    int
	CurrentPage int
	FirstPage   int
	LastPage    int
	PagesShown  []int
	PagesBack   int // 0 when no jump-back control
	PagesFwd    int // 0 when no jump-forward control
	CSSClasses  string
}

// DefaultOptions returns options showing DefaultPagesToShow links.
func DefaultOptions() Options {
	return Options{PagesToShow: DefaultPagesToShow}
}

// NewContext builds the pagination view model for page.
func NewContext(page Page, opts Options) (Context, error) {
	w, err := Calculate(page.NumPages, page.Number, opts.PagesToShow)
	if err != nil {
		return Context{}, err
	}

	return Context{
		URL:         LinkBase(opts.URL, opts.Extra),
		NumPages:    page.NumPages,
		CurrentPage: page.Number,
		FirstPage:   w.First,
		LastPage:    w.Last,
		PagesShown:  w.Pages,
		PagesBack:   w.Back,
		PagesFwd:    w.Forward,
		CSSClasses:  CSSClasses(opts.Size, opts.Align),
	}, nil
}

// PageURL returns the link for page n.
func (c Context) PageURL(n int) string {
	return PageURL(c.URL, n)
}

// IsCurrent reports whether n is the page being displayed.
func (c Context) IsCurrent(n int) bool {
	return n == c.CurrentPage
}

// HasPrevious reports whether a "previous" link should be enabled.
func (c Context) HasPrevious() bool {
	return c.CurrentPage > 1
}

// HasNext reports whether a "next" link should be enabled.
func (c Context) HasNext() bool {
	return c.CurrentPage < c.NumPages
}

// CSSClasses returns the class list for the pagination container.
// Unknown size and alignment values are ignored.
func CSSClasses(size, align string) string {
	classes := []string{"pagination"}
	if size == SizeSmall || size == SizeLarge {
		classes = append(classes, "pagination-"+size)
	}
	switch align {
	case AlignCenter:
		classes = append(classes, "pagination-centered")
	case AlignRight:
		classes = append(classes, "pagination-right")
	}
	return strings.Join(classes, " ")
}
