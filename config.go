package folio

import (
	"strings"

	"github.com/labstack/gommon/log"

	"github.com/rmaulika/folio/content"
)

// SiteConfig holds all configuration for a folio site.
type SiteConfig struct {
	Name        string `mapstructure:"name"`        // Site name (default: the profile name)
	URL         string `mapstructure:"url"`         // Canonical URL (default "http://localhost:3000")
	Description string `mapstructure:"description"` // Meta description (default: the profile intro)
	Author      string `mapstructure:"author"`      // Author for JSON-LD (default: the profile name)

	Addr     string `mapstructure:"addr"`      // Listen address (default ":3000")
	LogLevel string `mapstructure:"log_level"` // debug, info, warn, error or off (default "info")

	// NavRateLimit caps /nav/ requests per client IP per minute (default 60).
	NavRateLimit int `mapstructure:"nav_rate_limit"`

	// WASM loads the browser client. Requires folio.wasm and wasm_exec.js
	// in the static directory.
	WASM bool `mapstructure:"wasm"`
}

func (c *SiteConfig) setDefaults(p content.Profile) {
	if c.Name == "" {
		c.Name = p.Name
	}
	if c.Name == "" {
		c.Name = "Portfolio"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	c.URL = strings.TrimRight(c.URL, "/")
	if c.Description == "" {
		c.Description = p.Intro
	}
	if c.Author == "" {
		c.Author = p.Name
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.NavRateLimit <= 0 {
		c.NavRateLimit = 60
	}
}

// logLevel maps LogLevel onto the Echo logger's levels. Unknown names fall
// back to INFO.
func (c SiteConfig) logLevel() log.Lvl {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return log.DEBUG
	case "warn", "warning":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithContent replaces the built-in records.
func WithContent(s *content.Store) Option {
	return func(a *App) {
		a.Content = s
	}
}
