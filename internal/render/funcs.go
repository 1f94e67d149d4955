package render

import (
	"html/template"
	"strconv"
	"strings"

	"github.com/DukeRupert/bootkit/internal/attrs"
	"github.com/DukeRupert/bootkit/internal/components"
	"github.com/DukeRupert/bootkit/internal/domain"
	"github.com/DukeRupert/bootkit/internal/forms"
	"github.com/DukeRupert/bootkit/internal/metrics"
	"github.com/DukeRupert/bootkit/internal/pagination"
)

// Funcs returns the FuncMap exposing the Bootstrap helpers. Page templates
// that want the helpers should be created with it.
func (r *Renderer) Funcs() template.FuncMap {
	return template.FuncMap{
		// Forms
		"formTarget":       func(f *forms.Form) forms.Target { return forms.FormTarget(f) },
		"fieldTarget":      func(f *forms.Field) forms.Target { return forms.FieldTarget(f) },
		"formsetTarget":    func(fs *forms.Formset) forms.Target { return forms.FormsetTarget(fs) },
		"asBootstrap":      r.AsBootstrap,
		"bootstrapForm":    r.BootstrapForm,
		"bootstrapField":   r.BootstrapField,
		"bootstrapFormset": r.BootstrapFormset,
		"inputType":        forms.InputType,
		"isDisabled":       forms.IsDisabled,
		"isEnabled":        forms.IsEnabled,
		"prepend":          forms.Prepend,
		"append":           forms.Append,

		// Attributes
		"split":        strings.Split,
		"htmlAttrs":    attrs.Render,
		"mergeAttrs":   mergeAttrs,
		"mergeClasses": attrs.MergeClasses,

		// Pagination
		"pagination":          r.Pagination,
		"bootstrapPagination": r.BootstrapPagination,
		"pageURL":             pagination.PageURL,

		// Components
		"button":    r.Button,
		"icon":      r.Icon,
		"messages":  r.Messages,
		"activeURL": activeURL,

		// Assets
		"stylesheetURL":           r.assets.StylesheetURL,
		"stylesheetTag":           r.assets.StylesheetTag,
		"glyphiconsStylesheetURL": r.assets.GlyphiconsStylesheetURL,
		"glyphiconsStylesheetTag": r.assets.GlyphiconsStylesheetTag,
		"javascriptURL":           r.assets.JavaScriptURL,
		"javascriptTag":           r.assets.JavaScriptTag,

		// Collection functions
		"dict": func(values ...interface{}) map[string]interface{} {
			if len(values)%2 != 0 {
				return nil
			}
			dict := make(map[string]interface{}, len(values)/2)
			for i := 0; i < len(values); i += 2 {
				key, ok := values[i].(string)
				if !ok {
					return nil
				}
				dict[key] = values[i+1]
			}
			return dict
		},
	}
}

// AsBootstrap renders a form, field or formset with a layout such as
// "horizontal" or "vertical,float". Targets that hold nothing render the
// configured invalid string.
func (r *Renderer) AsBootstrap(target forms.Target, layout ...string) (template.HTML, error) {
	v, err := forms.AsBootstrap(target, forms.ParseLayout(strings.Join(layout, ",")))
	if err != nil {
		r.helperFailed("as_bootstrap", err)
		if !domain.IsInvalid(err) {
			return "", err
		}
		return template.HTML(template.HTMLEscapeString(r.invalidString)), nil
	}
	return r.executeHTML(v.Template, v)
}

// BootstrapForm renders form. Keyword arguments ("layout=horizontal") are
// passed to the template through View.Attrs; layout and float select the
// layout.
func (r *Renderer) BootstrapForm(form *forms.Form, kwargs ...string) (template.HTML, error) {
	return r.renderTarget(forms.FormTarget(form), kwargs)
}

// BootstrapField renders a single field.
func (r *Renderer) BootstrapField(field *forms.Field, kwargs ...string) (template.HTML, error) {
	return r.renderTarget(forms.FieldTarget(field), kwargs)
}

// BootstrapFormset renders every form of a formset.
func (r *Renderer) BootstrapFormset(fs *forms.Formset, kwargs ...string) (template.HTML, error) {
	return r.renderTarget(forms.FormsetTarget(fs), kwargs)
}

func (r *Renderer) renderTarget(target forms.Target, kwargs []string) (template.HTML, error) {
	opts, err := parseKwargs(kwargs)
	if err != nil {
		return "", err
	}

	layout := forms.ParseLayout(opts["layout"])
	if opts["float"] != "" {
		layout.Float, _ = strconv.ParseBool(opts["float"])
	}

	v, err := forms.AsBootstrap(target, layout)
	if err != nil {
		r.helperFailed("bootstrap_"+target.Kind.String(), err)
		return "", err
	}
	v.Attrs = opts
	return r.executeHTML(v.Template, v)
}

// Pagination renders the pagination control for page with the given window
// size, or the configured default.
func (r *Renderer) Pagination(page pagination.Page, pagesToShow ...int) (template.HTML, error) {
	opts := pagination.Options{PagesToShow: r.pagesToShow}
	if len(pagesToShow) > 0 {
		opts.PagesToShow = pagesToShow[0]
	}
	return r.renderPagination(page, opts)
}

// BootstrapPagination renders the pagination control for page. Keyword
// arguments: pages_to_show, url, size, align and extra.
func (r *Renderer) BootstrapPagination(page pagination.Page, kwargs ...string) (template.HTML, error) {
	opts, err := parseKwargs(kwargs)
	if err != nil {
		return "", err
	}

	po := pagination.Options{
		PagesToShow: r.pagesToShow,
		URL:         opts["url"],
		Size:        opts["size"],
		Align:       opts["align"],
		Extra:       opts["extra"],
	}
	if s, ok := opts["pages_to_show"]; ok {
		n, err := strconv.Atoi(s)
		if err != nil {
			err = domain.Errorf(domain.EINVALID, "render.bootstrap_pagination", "pages to show should be a positive integer, you specified %q", s)
			r.helperFailed("bootstrap_pagination", err)
			return "", err
		}
		po.PagesToShow = n
	}

	return r.renderPagination(page, po)
}

func (r *Renderer) renderPagination(page pagination.Page, opts pagination.Options) (template.HTML, error) {
	ctx, err := pagination.NewContext(page, opts)
	if err != nil {
		r.helperFailed("pagination", err)
		return "", err
	}
	return r.executeHTML("pagination", ctx)
}

// Button renders a button. Keyword arguments: type, size, disabled, enabled,
// icon and url.
func (r *Renderer) Button(text string, kwargs ...string) (template.HTML, error) {
	opts, err := parseKwargs(kwargs)
	if err != nil {
		return "", err
	}

	bo := components.ButtonOptions{
		Type: opts["type"],
		Size: opts["size"],
		Icon: opts["icon"],
		URL:  opts["url"],
	}
	if v, ok := opts["disabled"]; ok {
		bo.Disabled, _ = strconv.ParseBool(v)
	}
	if v, ok := opts["enabled"]; ok {
		enabled, _ := strconv.ParseBool(v)
		bo.Enabled = &enabled
	}

	return r.executeHTML("button", components.Button(text, bo))
}

// Icon renders the named glyphicon.
func (r *Renderer) Icon(name string, inverse ...bool) (template.HTML, error) {
	return r.executeHTML("icon", components.Icon(name, len(inverse) > 0 && inverse[0]))
}

// Messages renders queued messages as dismissable alerts.
func (r *Renderer) Messages(msgs []components.Message) (template.HTML, error) {
	return r.executeHTML("messages", components.Messages(msgs))
}

func (r *Renderer) helperFailed(helper string, err error) {
	code := domain.ErrorCode(err)
	metrics.HelperFailed(helper, code)
	r.logger.Debug("helper failed", "helper", helper, "code", code, "message", domain.ErrorMessage(err))
}

func activeURL(requestPath, url string, output ...string) string {
	out := ""
	if len(output) > 0 {
		out = output[0]
	}
	return components.ActiveURL(requestPath, url, out)
}

// mergeAttrs merges "key=value" arguments into base, as the html_attrs tag
// does with its keyword arguments.
func mergeAttrs(base attrs.Attrs, kwargs ...string) attrs.Attrs {
	_, extra := attrs.ParseArgs(strings.Join(kwargs, ","))
	return attrs.Merge(base, extra)
}

// parseKwargs parses "key=value" helper arguments.
func parseKwargs(kwargs []string) (map[string]string, error) {
	out := make(map[string]string, len(kwargs))
	for _, kv := range kwargs {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, domain.Errorf(domain.EINVALID, "render.kwargs", "expected key=value, got %q", kv)
		}
		out[strings.TrimSpace(k)] = v
	}
	return out, nil
}
