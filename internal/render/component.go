package render

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/DukeRupert/bootkit/internal/domain"
	"github.com/DukeRupert/bootkit/internal/forms"
	"github.com/DukeRupert/bootkit/internal/pagination"
)

// Component adapts a component template to templ, so templ pages can embed
// it with @r.Component("button", ctx).
func (r *Renderer) Component(name string, data interface{}) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return r.Render(w, name, data)
	})
}

// PaginationComponent is the templ form of BootstrapPagination.
func (r *Renderer) PaginationComponent(page pagination.Page, opts pagination.Options) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		o := opts
		if o.PagesToShow == 0 {
			o.PagesToShow = r.pagesToShow
		}
		pctx, err := pagination.NewContext(page, o)
		if err != nil {
			r.helperFailed("pagination", err)
			return err
		}
		return r.Render(w, "pagination", pctx)
	})
}

// FormComponent is the templ form of AsBootstrap.
func (r *Renderer) FormComponent(target forms.Target, layout forms.Layout) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		v, err := forms.AsBootstrap(target, layout)
		if err != nil {
			r.helperFailed("as_bootstrap", err)
			if !domain.IsInvalid(err) {
				return err
			}
			_, err = io.WriteString(w, templ.EscapeString(r.invalidString))
			return err
		}
		return r.Render(w, v.Template, v)
	})
}
