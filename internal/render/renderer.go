// Package render is the default view renderer for the Bootstrap helpers. It
// executes the embedded component templates (form, field, formset,
// pagination, button, icon, messages), optionally overridden by templates
// on disk, and exposes the helpers to page templates through Funcs.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/DukeRupert/bootkit/internal/assets"
	"github.com/DukeRupert/bootkit/internal/domain"
	"github.com/DukeRupert/bootkit/internal/metrics"
	"github.com/DukeRupert/bootkit/internal/pagination"
)

//go:embed templates/*.html
var embedded embed.FS

// Renderer manages the component template set.
type Renderer struct {
	tmpl   *template.Template
	logger *slog.Logger
	isDev  bool
	mu     sync.RWMutex

	// Overrides parsed after the embedded templates
	templatesDir string
	overrides    fs.FS

	assets        *assets.Assets
	pagesToShow   int
	invalidString string
}

// RendererConfig holds configuration for the renderer.
type RendererConfig struct {
	// Directory of *.html files redefining component templates. Optional.
	TemplatesDir string
	Logger       *slog.Logger
	// Reload templates from disk on every top-level render
	IsDev bool

	Assets        assets.Config
	PagesToShow   int    // Default pagination window; 0 means 11
	InvalidString string // Output for targets that cannot be rendered
}

// NewRenderer creates a new component renderer.
func NewRenderer(cfg RendererConfig) (*Renderer, error) {
	var overrides fs.FS
	if cfg.TemplatesDir != "" {
		overrides = os.DirFS(cfg.TemplatesDir)
	}
	return newRenderer(cfg, overrides)
}

// NewRendererFromFS creates a renderer whose overrides come from fsys.
func NewRendererFromFS(fsys fs.FS, cfg RendererConfig) (*Renderer, error) {
	return newRenderer(cfg, fsys)
}

func newRenderer(cfg RendererConfig, overrides fs.FS) (*Renderer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	pagesToShow := cfg.PagesToShow
	if pagesToShow == 0 {
		pagesToShow = pagination.DefaultPagesToShow
	}
	if pagesToShow < 1 {
		return nil, domain.Errorf(domain.EINVALID, "render.new", "pages to show should be a positive integer, you specified %d", pagesToShow)
	}

	r := &Renderer{
		logger:        logger,
		isDev:         cfg.IsDev,
		templatesDir:  cfg.TemplatesDir,
		overrides:     overrides,
		assets:        assets.New(cfg.Assets),
		pagesToShow:   pagesToShow,
		invalidString: cfg.InvalidString,
	}

	if err := r.loadTemplates(); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Renderer) loadTemplates() error {
	tmpl, err := template.New("bootkit").Funcs(r.Funcs()).ParseFS(embedded, "templates/*.html")
	if err != nil {
		return fmt.Errorf("failed to parse embedded templates: %w", err)
	}

	if r.overrides != nil {
		matches, err := fs.Glob(r.overrides, "*.html")
		if err != nil {
			return fmt.Errorf("failed to glob template overrides: %w", err)
		}
		if len(matches) > 0 {
			// Later definitions replace the embedded ones
			tmpl, err = tmpl.ParseFS(r.overrides, matches...)
			if err != nil {
				return fmt.Errorf("failed to parse template overrides: %w", err)
			}
		}
	}

	r.mu.Lock()
	r.tmpl = tmpl
	r.mu.Unlock()

	r.logger.Debug("templates loaded", "count", len(r.ListTemplates()), "overrides", r.templatesDir)
	return nil
}

// Reload reloads all templates. Useful for development.
func (r *Renderer) Reload() error {
	metrics.TemplateReloads.Inc()
	return r.loadTemplates()
}

// Render renders the named component template to w.
func (r *Renderer) Render(w io.Writer, name string, data interface{}) error {
	// In dev mode, reload templates on each render
	if r.isDev {
		if err := r.Reload(); err != nil {
			return fmt.Errorf("template reload failed: %w", err)
		}
	}

	return r.execute(w, name, data)
}

// RenderHTML renders a template and returns the HTML.
func (r *Renderer) RenderHTML(name string, data interface{}) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, name, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// execute renders without reloading; helpers called while a page is being
// rendered go through here.
func (r *Renderer) execute(w io.Writer, name string, data interface{}) error {
	r.mu.RLock()
	tmpl := r.tmpl.Lookup(name)
	r.mu.RUnlock()

	if tmpl == nil {
		metrics.RenderFailed(name)
		return domain.NotFound("render.execute", "template", name)
	}

	start := time.Now()

	// Render to buffer first so a failed render writes nothing
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		metrics.RenderFailed(name)
		r.logger.Error("template execution failed", "name", name, "error", err)
		return domain.Internal(err, "render.execute", fmt.Sprintf("template %q failed", name))
	}
	metrics.RenderCompleted(name, time.Since(start))

	_, err := buf.WriteTo(w)
	return err
}

func (r *Renderer) executeHTML(name string, data interface{}) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.execute(&buf, name, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// ListTemplates returns the names of all defined component templates.
func (r *Renderer) ListTemplates() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var names []string
	for _, t := range r.tmpl.Templates() {
		name := t.Name()
		if name == "bootkit" || strings.HasSuffix(name, ".html") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Assets returns the asset resolver used by the asset helpers.
func (r *Renderer) Assets() *assets.Assets {
	return r.assets
}
