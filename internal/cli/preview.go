package cli

import (
	"bytes"
	"fmt"
	"html/template"
	"sort"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"

	"github.com/DukeRupert/bootkit/internal/attrs"
	"github.com/DukeRupert/bootkit/internal/components"
	"github.com/DukeRupert/bootkit/internal/forms"
	"github.com/DukeRupert/bootkit/internal/pagination"
	"github.com/DukeRupert/bootkit/internal/render"
)

const previewPage = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
  {{stylesheetTag ""}}
  {{glyphiconsStylesheetTag}}
</head>
<body>
<div {{htmlAttrs .Attrs}}>
  {{- if .Nav}}
  <ul class="nav nav-tabs">
    {{- range .Nav}}
    <li class="{{activeURL $.Path .URL}}"><a href="{{.URL}}">{{.Label}}</a></li>
    {{- end}}
  </ul>
  {{- end}}
  {{messages .Messages}}
  {{- if .Form}}
  <form method="post" class="form-{{.Layout}}">
    {{asBootstrap (formTarget .Form) .Layout}}
  </form>
  {{- end}}
  {{- if .HasPage}}
  {{.Pagination}}
  {{- end}}
  <p>
    {{- range .Buttons}}
    {{.}}
    {{- end}}
  </p>
  <p>
    {{- range .Icons}}
    {{icon .}}
    {{- end}}
  </p>
</div>
{{javascriptTag ""}}
</body>
</html>
`

type PreviewArgs struct {
	*RootArgs

	FixturePath string
	OutPath     string
}

func NewPreviewCmd(rootArgs *RootArgs) *cobra.Command {
	pa := &PreviewArgs{RootArgs: rootArgs}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render a component preview page from a YAML fixture",
		Example: `  # Write the preview next to the fixture:
  bootkit preview --fixture demo.yaml --out demo.html

  # Print to stdout:
  bootkit preview --fixture demo.yaml`,
		Args: cobra.NoArgs,
		RunE: pa.Run,
	}

	cmd.Flags().StringVarP(&pa.FixturePath, "fixture", "f", "", "Path to the YAML fixture")
	cmd.Flags().StringVarP(&pa.OutPath, "out", "o", "-", "Output file, - for stdout")

	if err := cmd.MarkFlagRequired("fixture"); err != nil {
		panic(fmt.Errorf("mark fixture flag: %w", err))
	}
	if err := cmd.MarkFlagFilename("fixture", "yaml", "yml"); err != nil {
		panic(fmt.Errorf("mark fixture flag: %w", err))
	}

	return cmd
}

func (pa *PreviewArgs) Run(cmd *cobra.Command, _ []string) error {
	fixture, err := LoadFixture(pa.FixturePath)
	if err != nil {
		return err
	}

	renderer, err := render.NewRenderer(render.RendererConfig{
		TemplatesDir:  pa.Config.TemplatesDir,
		Logger:        pa.Logger,
		Assets:        pa.Config.Assets(),
		PagesToShow:   pa.Config.PagesToShow,
		InvalidString: pa.Config.InvalidString,
	})
	if err != nil {
		return fmt.Errorf("renderer initialization failed: %w", err)
	}

	html, err := RenderPreview(renderer, fixture, pa.Config.PagesToShow)
	if err != nil {
		return err
	}

	if pa.OutPath == "-" {
		_, err = cmd.OutOrStdout().Write(html)
		return err
	}

	if err := atomic.WriteFile(pa.OutPath, bytes.NewReader(html)); err != nil {
		return fmt.Errorf("write preview: %w", err)
	}
	pa.Logger.Info("preview written", "path", pa.OutPath, "bytes", len(html))

	return nil
}

type previewData struct {
	Title      string
	Path       string
	Nav        []NavFixture
	Attrs      attrs.Attrs
	Messages   []components.Message
	Form       *forms.Form
	Layout     string
	HasPage    bool
	Pagination template.HTML
	Buttons    []template.HTML
	Icons      []string
}

// RenderPreview renders the preview page for fixture.
func RenderPreview(r *render.Renderer, fixture *Fixture, pagesToShow int) ([]byte, error) {
	page, err := template.New("preview").Funcs(r.Funcs()).Parse(previewPage)
	if err != nil {
		return nil, fmt.Errorf("parse preview page: %w", err)
	}

	data := previewData{
		Title:    fixture.Title,
		Path:     fixture.Path,
		Nav:      fixture.Nav,
		Attrs:    fixture.AttrModel(),
		Messages: fixture.MessageModels(),
		Form:     fixture.FormModel(),
		Icons:    fixture.Icons,
	}
	if len(data.Attrs) == 0 {
		data.Attrs = attrs.Attrs{{Name: "class", Value: "container"}}
	}
	for _, b := range fixture.ButtonModels() {
		html, err := r.RenderHTML("button", b)
		if err != nil {
			return nil, err
		}
		data.Buttons = append(data.Buttons, html)
	}
	if fixture.Form != nil {
		data.Layout = forms.ParseLayout(fixture.Form.Layout).Name
	}

	if p, opts, ok := fixture.PageModel(pagesToShow); ok {
		ctx, err := pagination.NewContext(p, opts)
		if err != nil {
			return nil, err
		}
		data.HasPage = true
		data.Pagination, err = r.RenderHTML("pagination", ctx)
		if err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := page.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render preview page: %w", err)
	}
	return buf.Bytes(), nil
}

func sortedAttrs(m map[string]string) attrs.Attrs {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return attrs.FromMap(m, keys...)
}
