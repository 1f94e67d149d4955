// Package pagination computes the page window shown by Bootstrap pagination
// controls and builds the view model the pagination template renders.
package pagination

import (
	"github.com/DukeRupert/bootkit/internal/domain"
)

// DefaultPagesToShow is the window size used when none is configured.
const DefaultPagesToShow = 11

// Window is the set of page links to render for one page of results.
type Window struct {
	First   int   // First page number in the window
	Last    int   // Last page number in the window
	Pages   []int // First..Last inclusive, ascending
	Back    int   // Jump-back target, 0 when absent
	Forward int   // Jump-forward target, 0 when absent
}

// HasBack reports whether a jump-back control should be shown.
func (w Window) HasBack() bool {
	return w.Back > 0
}

// HasForward reports whether a jump-forward control should be shown.
func (w Window) HasForward() bool {
	return w.Forward > 0
}

// Calculate returns the window of page links for currentPage out of
// totalPages, trying to keep currentPage centered in windowSize links.
// When one side of the window runs out of pages its jump slot is donated to
// the other side. Back and Forward always lie outside First..Last.
//
// currentPage is not validated against totalPages.
func Calculate(totalPages, currentPage, windowSize int) (Window, error) {
	if windowSize < 1 {
		return Window{}, domain.Errorf(domain.EINVALID, "pagination.calculate",
			"pages to show should be a positive integer, you specified %d", windowSize)
	}

	half := windowSize/2 - 1
	if half < 0 {
		half = 0
	}
	// Anchors must land outside the window even for tiny windows.
	step := max(half, 1)

	var w Window

	w.First = max(currentPage-half, 1)
	if w.First > 1 {
		w.Back = max(w.First-step, 1)
	}

	w.Last = w.First + windowSize - 1
	if w.Back == 0 {
		w.Last++
	}
	if w.Last > totalPages {
		w.Last = totalPages
	}

	if w.Last < totalPages {
		w.Forward = min(w.Last+step, totalPages)
	} else {
		if w.First > 1 {
			w.First--
		}
		if w.Back > 1 {
			w.Back--
		} else {
			w.Back = 0
		}
	}

	if w.Last >= w.First {
		w.Pages = make([]int, 0, w.Last-w.First+1)
		for i := w.First; i <= w.Last; i++ {
			w.Pages = append(w.Pages, i)
		}
	}

	return w, nil
}
