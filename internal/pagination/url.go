package pagination

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	leadingPageParam = regexp.MustCompile(`\?page=[^&]+`)
	innerPageParam   = regexp.MustCompile(`&page=[^&]+`)
)

// LinkBase normalizes rawURL so a caller can append "page=N" to it. Any
// existing page parameter is removed wherever it sits in the query string,
// and extra (a raw query fragment) is preserved ahead of the page number.
// The result ends in "?" or "&", or is empty when both inputs are empty.
func LinkBase(rawURL, extra string) string {
	u := rawURL
	if u != "" {
		u = leadingPageParam.ReplaceAllString(u, "?")
		u = innerPageParam.ReplaceAllString(u, "")
		if strings.Contains(u, "?") {
			u += "&"
		} else {
			u += "?"
		}
	}

	if extra != "" {
		if u == "" {
			u = "?"
		}
		u += extra + "&"
	}

	return strings.ReplaceAll(u, "?&", "?")
}

// PageURL appends the page parameter for page to a base built by LinkBase.
// An empty base yields a relative query string.
func PageURL(base string, page int) string {
	if base == "" {
		base = "?"
	}
	return base + "page=" + strconv.Itoa(page)
}
