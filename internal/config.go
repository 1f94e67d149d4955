package internal

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/DukeRupert/bootkit/internal/assets"
	"github.com/DukeRupert/bootkit/internal/pagination"
)

type Config struct {
	Env      string
	LogLevel string

	// Template overrides directory; empty uses the embedded templates only
	TemplatesDir string

	// Output of a helper given a value it cannot render
	InvalidString string

	// Default pagination window size
	PagesToShow int

	// Bootstrap asset locations
	BootstrapBaseURL    string
	BootstrapJSBaseURL  string
	BootstrapJSURL      string
	BootstrapCSSBaseURL string
	BootstrapCSSURL     string
	StaticURL           string
}

func NewConfig() (*Config, error) {
	// Load .env file if it exists (ignored in production)
	_ = godotenv.Load()

	cfg := &Config{
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		TemplatesDir:  getEnv("TEMPLATES_DIR", ""),
		InvalidString: getEnv("TEMPLATE_STRING_IF_INVALID", ""),

		BootstrapBaseURL:    getEnv("BOOTSTRAP_BASE_URL", assets.DefaultBaseURL),
		BootstrapJSBaseURL:  getEnv("BOOTSTRAP_JS_BASE_URL", ""),
		BootstrapJSURL:      getEnv("BOOTSTRAP_JS_URL", ""),
		BootstrapCSSBaseURL: getEnv("BOOTSTRAP_CSS_BASE_URL", ""),
		BootstrapCSSURL:     getEnv("BOOTSTRAP_CSS_URL", ""),
		StaticURL:           getEnv("STATIC_URL", "/static/"),
	}

	pagesToShow, err := getEnvInt("PAGINATION_PAGES_TO_SHOW", pagination.DefaultPagesToShow)
	if err != nil {
		return nil, err
	}
	cfg.PagesToShow = pagesToShow

	if cfg.PagesToShow < 1 {
		return nil, fmt.Errorf("PAGINATION_PAGES_TO_SHOW must be a positive integer, got: %d", cfg.PagesToShow)
	}

	switch cfg.Env {
	case "development", "production", "test":
	default:
		return nil, fmt.Errorf("ENV must be one of 'development', 'production' or 'test', got: %s", cfg.Env)
	}

	return cfg, nil
}

// Assets returns the asset configuration. Unset URLs are derived from
// BootstrapBaseURL by assets.New.
func (c *Config) Assets() assets.Config {
	return assets.Config{
		BaseURL:    c.BootstrapBaseURL,
		JSBaseURL:  c.BootstrapJSBaseURL,
		JSURL:      c.BootstrapJSURL,
		CSSBaseURL: c.BootstrapCSSBaseURL,
		CSSURL:     c.BootstrapCSSURL,
		StaticURL:  c.StaticURL,
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got: %q", key, value)
	}
	return i, nil
}
