package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DukeRupert/bootkit/internal/pagination"
)

type WindowArgs struct {
	*RootArgs

	Total   int
	Current int
	Size    int
	URL     string
	Extra   string
}

func NewWindowCmd(rootArgs *RootArgs) *cobra.Command {
	wa := &WindowArgs{RootArgs: rootArgs}

	cmd := &cobra.Command{
		Use:   "window",
		Short: "Print the page links shown for a page",
		Example: `  # Page 7 of 20 with the default window:
  bootkit window --total 20 --current 7

  # Links for a filtered list:
  bootkit window --total 20 --current 7 --url "/sites?page=7" --extra "q=acme"`,
		Args: cobra.NoArgs,
		RunE: wa.Run,
	}

	cmd.Flags().IntVar(&wa.Total, "total", 1, "Total number of pages")
	cmd.Flags().IntVar(&wa.Current, "current", 1, "Current page number")
	cmd.Flags().IntVar(&wa.Size, "size", 0, "Number of page links to show (default from PAGINATION_PAGES_TO_SHOW)")
	cmd.Flags().StringVar(&wa.URL, "url", "", "Base URL of the page links")
	cmd.Flags().StringVar(&wa.Extra, "extra", "", "Query string preserved across page links")

	return cmd
}

func (wa *WindowArgs) Run(cmd *cobra.Command, _ []string) error {
	size := wa.Size
	if size == 0 && wa.Config != nil {
		size = wa.Config.PagesToShow
	}

	w, err := pagination.Calculate(wa.Total, wa.Current, size)
	if err != nil {
		return err
	}

	wa.Logger.Debug("window computed", "total", wa.Total, "current", wa.Current, "size", size, "first", w.First, "last", w.Last)

	pages := make([]string, 0, len(w.Pages))
	for _, p := range w.Pages {
		s := strconv.Itoa(p)
		if p == wa.Current {
			s = "[" + s + "]"
		}
		pages = append(pages, s)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "pages:   %s\n", strings.Join(pages, " "))
	fmt.Fprintf(out, "back:    %s\n", anchor(w.Back))
	fmt.Fprintf(out, "forward: %s\n", anchor(w.Forward))

	if wa.URL != "" || wa.Extra != "" {
		fmt.Fprintf(out, "link:    %s\n", pagination.PageURL(pagination.LinkBase(wa.URL, wa.Extra), wa.Current))
	}

	return nil
}

func anchor(page int) string {
	if page == 0 {
		return "-"
	}
	return strconv.Itoa(page)
}
