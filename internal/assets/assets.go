// Package assets builds the URLs and tags that load Bootstrap and
// Glyphicons into a page.
package assets

import (
	"fmt"
	"html/template"
)

// DefaultBaseURL is the CDN location of the Bootstrap distribution.
const DefaultBaseURL = "//netdna.bootstrapcdn.com/bootstrap/3.0.0-rc1/"

// Config locates the Bootstrap assets. Empty fields are derived from
// BaseURL the same way Defaults does.
type Config struct {
	BaseURL    string
	JSBaseURL  string
	JSURL      string
	CSSBaseURL string
	CSSURL     string
	StaticURL  string
}

// Defaults returns the CDN configuration.
func Defaults() Config {
	return Config{BaseURL: DefaultBaseURL, StaticURL: "/static/"}.withDefaults()
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.JSBaseURL == "" {
		c.JSBaseURL = c.BaseURL + "js/"
	}
	if c.JSURL == "" {
		c.JSURL = c.JSBaseURL + "bootstrap.js"
	}
	if c.CSSBaseURL == "" {
		c.CSSBaseURL = c.BaseURL + "css/"
	}
	if c.CSSURL == "" {
		c.CSSURL = c.CSSBaseURL + "bootstrap.css"
	}
	if c.StaticURL == "" {
		c.StaticURL = "/static/"
	}
	return c
}

// Assets resolves asset URLs for one configuration.
type Assets struct {
	cfg Config
}

// New returns Assets for cfg, filling unset URLs from the base URL.
func New(cfg Config) *Assets {
	return &Assets{cfg: cfg.withDefaults()}
}

// Config returns the resolved configuration.
func (a *Assets) Config() Config {
	return a.cfg
}

// StylesheetURL returns the Bootstrap stylesheet URL, or the URL of the
// named variant (e.g. "responsive") when css is set.
func (a *Assets) StylesheetURL(css string) string {
	if css != "" {
		return a.cfg.CSSBaseURL + "bootstrap-" + css + ".css"
	}
	return a.cfg.CSSURL
}

// StylesheetTag returns a <link> tag for StylesheetURL(css).
func (a *Assets) StylesheetTag(css string) template.HTML {
	return linkTag(a.StylesheetURL(css))
}

// GlyphiconsStylesheetURL returns the Glyphicons stylesheet URL.
func (a *Assets) GlyphiconsStylesheetURL() string {
	return a.cfg.StaticURL + "glyphicons/css/bootstrap-glyphicons.css"
}

// GlyphiconsStylesheetTag returns a <link> tag for the Glyphicons stylesheet.
func (a *Assets) GlyphiconsStylesheetTag() template.HTML {
	return linkTag(a.GlyphiconsStylesheetURL())
}

// JavaScriptURL returns the Bootstrap script URL, or the URL of the named
// plugin (e.g. "modal") when name is set.
func (a *Assets) JavaScriptURL(name string) string {
	if name != "" {
		return a.cfg.JSBaseURL + "bootstrap-" + name + ".js"
	}
	return a.cfg.JSURL
}

// JavaScriptTag returns a <script> tag for JavaScriptURL(name).
func (a *Assets) JavaScriptTag(name string) template.HTML {
	url := a.JavaScriptURL(name)
	if url == "" {
		return ""
	}
	return template.HTML(fmt.Sprintf(`<script src="%s"></script>`, template.HTMLEscapeString(url)))
}

func linkTag(url string) template.HTML {
	return template.HTML(fmt.Sprintf(`<link rel="stylesheet" href="%s">`, template.HTMLEscapeString(url)))
}
