package render

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DukeRupert/bootkit/internal/attrs"
	"github.com/DukeRupert/bootkit/internal/assets"
	"github.com/DukeRupert/bootkit/internal/components"
	"github.com/DukeRupert/bootkit/internal/domain"
	"github.com/DukeRupert/bootkit/internal/forms"
	"github.com/DukeRupert/bootkit/internal/pagination"
)

func newTestRenderer(t *testing.T, cfg RendererConfig) *Renderer {
	t.Helper()
	cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	r, err := NewRenderer(cfg)
	require.NoError(t, err)
	return r
}

// =============================================================================
// Template set
// =============================================================================

func TestNewRenderer_LoadsEmbeddedTemplates(t *testing.T) {
	r := newTestRenderer(t, RendererConfig{})

	assert.Equal(t, []string{"button", "field", "form", "formset", "icon", "input", "messages", "pagination"}, r.ListTemplates())
}

func TestNewRenderer_RejectsInvalidWindow(t *testing.T) {
	_, err := NewRenderer(RendererConfig{PagesToShow: -3})
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
}

func TestRender_UnknownTemplate(t *testing.T) {
	r := newTestRenderer(t, RendererConfig{})

	var buf bytes.Buffer
	err := r.Render(&buf, "carousel", nil)
	assert.Equal(t, domain.ENOTFOUND, domain.ErrorCode(err))
	assert.Empty(t, buf.String())
}

func TestRender_ExecutionFailureIsInternal(t *testing.T) {
	fsys := fstest.MapFS{
		"icon.html": {Data: []byte(`{{define "icon"}}<i class="{{.Missing}}"></i>{{end}}`)},
	}
	r, err := NewRendererFromFS(fsys, RendererConfig{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	require.NoError(t, err)

	var buf bytes.Buffer
	err = r.Render(&buf, "icon", components.Icon("star", false))
	require.Error(t, err)
	assert.Equal(t, domain.EINTERNAL, domain.ErrorCode(err))
	assert.Equal(t, `template "icon" failed`, domain.ErrorMessage(err))
	assert.NotNil(t, errors.Unwrap(err))
	assert.Empty(t, buf.String())
}

func TestNewRendererFromFS_OverrideReadsKeywordArgs(t *testing.T) {
	fsys := fstest.MapFS{
		"form.html": {Data: []byte(`{{define "form"}}<div class="{{.Attrs.class}}" data-layout="{{.Layout}}"></div>{{end}}`)},
	}
	r, err := NewRendererFromFS(fsys, RendererConfig{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	require.NoError(t, err)

	html, err := r.BootstrapForm(&forms.Form{}, "layout=inline", "class=well")
	require.NoError(t, err)
	assert.Equal(t, template.HTML(`<div class="well" data-layout="inline"></div>`), html)
}

func TestNewRendererFromFS_OverridesTemplate(t *testing.T) {
	fsys := fstest.MapFS{
		"button.html": {Data: []byte(`{{define "button"}}<button class="{{.ButtonClass}}">{{.Text}}</button>{{end}}`)},
	}
	r, err := NewRendererFromFS(fsys, RendererConfig{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	require.NoError(t, err)

	html, err := r.Button("Go")
	require.NoError(t, err)
	assert.Equal(t, template.HTML(`<button class="btn btn-default">Go</button>`), html)

	// Other templates keep their embedded definition
	icon, err := r.Icon("star")
	require.NoError(t, err)
	assert.Equal(t, template.HTML(`<i class="glyphicon glyphicon-star"></i>`), icon)
}

func TestReload(t *testing.T) {
	r := newTestRenderer(t, RendererConfig{IsDev: true})

	require.NoError(t, r.Reload())
	html, err := r.RenderHTML("icon", components.Icon("user", true))
	require.NoError(t, err)
	assert.Equal(t, template.HTML(`<i class="glyphicon glyphicon-user glyphicon-white"></i>`), html)
}

// =============================================================================
// Pagination
// =============================================================================

func TestPagination_DefaultWindow(t *testing.T) {
	r := newTestRenderer(t, RendererConfig{})

	html, err := r.Pagination(pagination.Page{Number: 1, NumPages: 20})
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, `<div class="pagination">`)
	assert.Contains(t, out, `<li class="active"><a href="?page=1">1</a></li>`)
	assert.Contains(t, out, `<a href="?page=12">12</a>`)
	assert.NotContains(t, out, `>13</a>`)
	assert.Contains(t, out, `<li><a href="?page=16" title="Page 16">&hellip;</a></li>`)
	assert.Contains(t, out, `<li class="prev disabled"><a href="#"`)
	assert.Contains(t, out, `<li class="last"><a href="?page=20"`)
}

func TestPagination_ExplicitWindow(t *testing.T) {
	r := newTestRenderer(t, RendererConfig{})

	html, err := r.Pagination(pagination.Page{Number: 3, NumPages: 5}, 11)
	require.NoError(t, err)
	assert.Contains(t, string(html), `<a href="?page=5">5</a>`)
	assert.NotContains(t, string(html), "&hellip;")

	_, err = r.Pagination(pagination.Page{Number: 3, NumPages: 5}, 0)
	require.Error(t, err)
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
	assert.Contains(t, err.Error(), "you specified 0")
}

func TestBootstrapPagination(t *testing.T) {
	r := newTestRenderer(t, RendererConfig{PagesToShow: 5})

	html, err := r.BootstrapPagination(pagination.Page{Number: 10, NumPages: 20},
		"url=/sites?page=10&sort=name", "size=large", "align=right", "extra=q=go")
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, `<div class="pagination pagination-large pagination-right">`)
	assert.Contains(t, out, `<li class="active"><a href="/sites?sort=name&amp;q=go&amp;page=10">10</a></li>`)

	_, err = r.BootstrapPagination(pagination.Page{Number: 1, NumPages: 2}, "pages_to_show=many")
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))

	_, err = r.BootstrapPagination(pagination.Page{Number: 1, NumPages: 2}, "size")
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
}

// =============================================================================
// Forms
// =============================================================================

func sampleForm() *forms.Form {
	return &forms.Form{
		NonFieldErrors: []string{"Please correct the errors below."},
		Fields: []forms.Field{
			{Name: "csrf_token", Value: "abc", Hidden: true},
			{Name: "title", Value: "Hello", Required: true, Widget: forms.Widget{Kind: forms.WidgetText}},
			{Name: "body", Errors: []string{"This field is required."}, HelpText: "Markdown allowed.", Widget: forms.Widget{Kind: forms.WidgetTextarea}},
			{Name: "price", Widget: forms.Widget{Kind: forms.WidgetText, Prepend: "$"}},
			{Name: "status", Value: "open", Widget: forms.Widget{Kind: forms.WidgetSelect, Choices: []forms.Choice{
				{Value: "open", Label: "Open"},
				{Value: "closed", Label: "Closed"},
			}}},
			{Name: "subscribe", Value: "on", Widget: forms.Widget{Kind: forms.WidgetCheckbox}},
			{Name: "code", ReadOnly: true, Widget: forms.Widget{Kind: forms.WidgetOther}},
		},
	}
}

func TestAsBootstrap_Form(t *testing.T) {
	r := newTestRenderer(t, RendererConfig{})

	html, err := r.AsBootstrap(forms.FormTarget(sampleForm()), "horizontal")
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, `<div class="alert alert-danger">`)
	assert.Contains(t, out, `<p>Please correct the errors below.</p>`)
	assert.Contains(t, out, `<input type="hidden" id="id_csrf_token" name="csrf_token" value="abc">`)
	assert.Contains(t, out, `<div class="control-group required">`)
	assert.Contains(t, out, `<label class="control-label" for="id_title">Title</label>`)
	assert.Contains(t, out, `<input type="text" id="id_title" name="title" required="required" value="Hello">`)
	assert.Contains(t, out, `<div class="control-group error">`)
	assert.Contains(t, out, `<textarea id="id_body" name="body"></textarea>`)
	assert.Contains(t, out, `<span class="help-inline">This field is required.</span>`)
	assert.Contains(t, out, `<p class="help-block">Markdown allowed.</p>`)
	assert.Contains(t, out, `<div class="input-prepend"><span class="add-on">$</span>`)
	assert.Contains(t, out, `<option value="open" selected>Open</option>`)
	assert.Contains(t, out, `<option value="closed">Closed</option>`)
	assert.Contains(t, out, `<input type="checkbox" id="id_subscribe" name="subscribe" checked>`)
	assert.Contains(t, out, `<input type="text" id="id_code" name="code" value="" disabled>`)

	// hidden fields come first
	assert.Less(t, strings.Index(out, "csrf_token"), strings.Index(out, "id_title"))
}

func TestAsBootstrap_FieldInlineLayout(t *testing.T) {
	r := newTestRenderer(t, RendererConfig{})

	field := &forms.Field{Name: "q", Widget: forms.Widget{Kind: forms.WidgetText, InputType: "search"}}
	html, err := r.AsBootstrap(forms.FieldTarget(field), "inline")
	require.NoError(t, err)

	assert.Contains(t, string(html), `<input type="search" id="id_q" name="q" value="">`)
	assert.NotContains(t, string(html), "control-group")
}

func TestAsBootstrap_FloatLayout(t *testing.T) {
	r := newTestRenderer(t, RendererConfig{})

	field := &forms.Field{Name: "q", Widget: forms.Widget{Kind: forms.WidgetText}}
	html, err := r.AsBootstrap(forms.FieldTarget(field), "vertical", "float")
	require.NoError(t, err)

	assert.Contains(t, string(html), `<div class="control-group pull-left">`)
}

func TestAsBootstrap_InvalidTarget(t *testing.T) {
	r := newTestRenderer(t, RendererConfig{InvalidString: "<invalid>"})

	html, err := r.AsBootstrap(forms.Target{})
	require.NoError(t, err)
	assert.Equal(t, template.HTML("&lt;invalid&gt;"), html)
}

func TestBootstrapFormset(t *testing.T) {
	r := newTestRenderer(t, RendererConfig{})

	fs := &forms.Formset{
		ManagementForm: forms.Form{Fields: []forms.Field{{Name: "form-TOTAL_FORMS", Value: "2", Hidden: true}}},
		Forms: []forms.Form{
			{Fields: []forms.Field{{Name: "form-0-name", Value: "a"}}},
			{Fields: []forms.Field{{Name: "form-1-name", Value: "b"}}},
		},
	}

	html, err := r.BootstrapFormset(fs, "layout=horizontal")
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, `name="form-TOTAL_FORMS" value="2"`)
	assert.Equal(t, 2, strings.Count(out, "<fieldset>"))
	assert.Contains(t, out, `<input type="text" id="id_form-1-name" name="form-1-name" value="b">`)

	_, err = r.BootstrapFormset(nil)
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
}

func TestBootstrapField_ChoiceGroup(t *testing.T) {
	r := newTestRenderer(t, RendererConfig{})

	field := &forms.Field{
		Name:   "size",
		Value:  "m",
		Widget: forms.Widget{Kind: forms.WidgetRadio, Choices: []forms.Choice{{Value: "s", Label: "Small"}, {Value: "m", Label: "Medium"}}},
	}
	html, err := r.BootstrapField(field)
	require.NoError(t, err)

	assert.Contains(t, string(html), `<label class="radio"><input type="radio" name="size" value="m" checked> Medium</label>`)
	assert.Contains(t, string(html), `<label class="radio"><input type="radio" name="size" value="s"> Small</label>`)
}

// =============================================================================
// Components
// =============================================================================

func TestButton(t *testing.T) {
	r := newTestRenderer(t, RendererConfig{})

	html, err := r.Button("Save", "type=primary", "icon=ok", "url=/save")
	require.NoError(t, err)
	assert.Equal(t, template.HTML(`<a href="/save" class="btn btn-primary"><i class="glyphicon glyphicon-ok glyphicon-white"></i> Save</a>`), html)

	html, err = r.Button("Nope", "disabled=true", "enabled=false")
	require.NoError(t, err)
	assert.Equal(t, template.HTML(`<a href="#" class="btn btn-default">Nope</a>`), html)
}

func TestMessages(t *testing.T) {
	r := newTestRenderer(t, RendererConfig{})

	html, err := r.Messages([]components.Message{{Level: "error", Text: "Could not <save>."}})
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, `class="alert alert-danger"`)
	assert.Contains(t, out, `<strong>Error:</strong> Could not &lt;save&gt;.`)
}

// =============================================================================
// Page templates using Funcs
// =============================================================================

func TestFuncs_InPageTemplate(t *testing.T) {
	r := newTestRenderer(t, RendererConfig{Assets: assets.Config{BaseURL: "/b/"}})

	page, err := template.New("page").Funcs(r.Funcs()).Parse(`
{{- stylesheetTag ""}}
<li class="{{activeURL .Path "/sites"}}">Sites</li>
<div {{htmlAttrs (mergeAttrs .Attrs "class=table hidden" "id=main")}}></div>
<p class="{{mergeClasses "px-2 py-1" "p-3"}}"></p>
{{range split "a,b" ","}}[{{.}}]{{end}}
{{pagination .Page 5}}
{{javascriptTag "modal"}}`)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = page.Execute(&buf, map[string]interface{}{
		"Path":  "/sites",
		"Attrs": attrs.Attrs{{Name: "class", Value: "box p-2"}},
		"Page":  pagination.Page{Number: 2, NumPages: 3},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `<link rel="stylesheet" href="/b/css/bootstrap.css">`)
	assert.Contains(t, out, `<li class="active">Sites</li>`)
	assert.Contains(t, out, `<div class="box p-2 table hidden" id="main"></div>`)
	assert.Contains(t, out, `<p class="p-3"></p>`)
	assert.Contains(t, out, "[a][b]")
	assert.Contains(t, out, `<li class="active"><a href="?page=2">2</a></li>`)
	assert.Contains(t, out, `<script src="/b/js/bootstrap-modal.js"></script>`)
}

func TestFuncs_HelperErrorAbortsPage(t *testing.T) {
	r := newTestRenderer(t, RendererConfig{})

	page := template.Must(template.New("page").Funcs(r.Funcs()).Parse(`{{pagination . -1}}`))
	err := page.Execute(io.Discard, pagination.Page{Number: 1, NumPages: 2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "you specified -1")
}

// =============================================================================
// templ adapter
// =============================================================================

func TestComponent(t *testing.T) {
	r := newTestRenderer(t, RendererConfig{})

	var buf bytes.Buffer
	err := r.Component("icon", components.Icon("heart", false)).Render(context.Background(), &buf)
	require.NoError(t, err)
	assert.Equal(t, `<i class="glyphicon glyphicon-heart"></i>`, buf.String())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, r.Component("icon", nil).Render(ctx, io.Discard), context.Canceled)
}

func TestPaginationComponent(t *testing.T) {
	r := newTestRenderer(t, RendererConfig{})

	var buf bytes.Buffer
	err := r.PaginationComponent(pagination.Page{Number: 20, NumPages: 20}, pagination.Options{Align: "center"}).
		Render(context.Background(), &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `<div class="pagination pagination-centered">`)
	assert.Contains(t, out, `<a href="?page=15">15</a>`)
	assert.Contains(t, out, `<li><a href="?page=11" title="Page 11">&hellip;</a></li>`)
	assert.Contains(t, out, `<li class="last disabled"><a href="#"`)
}

func TestPaginationComponent_ConcurrentRenders(t *testing.T) {
	r := newTestRenderer(t, RendererConfig{PagesToShow: 5})
	c := r.PaginationComponent(pagination.Page{Number: 3, NumPages: 9}, pagination.Options{})

	var wg sync.WaitGroup
	outs := make([]string, 8)
	for i := range outs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var buf bytes.Buffer
			if err := c.Render(context.Background(), &buf); err == nil {
				outs[i] = buf.String()
			}
		}(i)
	}
	wg.Wait()

	for _, out := range outs {
		assert.Contains(t, out, `<li class="active"><a href="?page=3">3</a></li>`)
	}
}

func TestFormComponent(t *testing.T) {
	r := newTestRenderer(t, RendererConfig{InvalidString: "n/a"})

	var buf bytes.Buffer
	require.NoError(t, r.FormComponent(forms.Target{}, forms.Layout{}).Render(context.Background(), &buf))
	assert.Equal(t, "n/a", buf.String())

	buf.Reset()
	field := &forms.Field{Name: "email", Widget: forms.Widget{Kind: forms.WidgetText, InputType: "email"}}
	require.NoError(t, r.FormComponent(forms.FieldTarget(field), forms.ParseLayout("")).Render(context.Background(), &buf))
	assert.Contains(t, buf.String(), `<input type="email" id="id_email" name="email" value="">`)
}
