// Package folio serves a single-page portfolio built with Go, Echo, and templ.
// It renders the page from the content store, serves the motion stylesheet,
// the Open Graph card, sitemap and robots, and can export everything as a
// static directory.
package folio

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rmaulika/folio/content"
	"github.com/rmaulika/folio/views"
)

// App is the central folio application. It wires together the content
// store, asset cache, handlers and middleware.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	Content *content.Store
	Assets  *AssetCache

	customRoutes []func(*App)
	navLimiter   *Limiter
	staticDir    string
	now          func() time.Time

	setupOnce sync.Once
	setupErr  error
}

// New creates a folio App. The built-in records are used unless WithContent
// supplies others.
func New(cfg SiteConfig, opts ...Option) *App {
	a := &App{
		Echo:      echo.New(),
		Content:   content.Default(),
		staticDir: "public",
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}

	cfg.setDefaults(a.Content.Profile())
	a.Config = cfg
	a.Assets = NewAssetCache(a.assetBuilders())
	a.Echo.HideBanner = true
	a.Echo.Logger.SetLevel(cfg.logLevel())
	return a
}

// Site returns the settings handed to the view components.
func (a *App) Site() views.Site {
	return views.Site{
		Name:        a.Config.Name,
		URL:         a.Config.URL,
		Description: a.Config.Description,
		Author:      a.Config.Author,
		WASM:        a.Config.WASM,
	}
}

// Setup validates the content and registers middleware and routes. It runs
// once; later calls return the first result.
func (a *App) Setup() error {
	a.setupOnce.Do(func() {
		if err := a.Content.Validate(); err != nil {
			a.setupErr = fmt.Errorf("folio: %w", err)
			return
		}
		a.setupMiddleware()
		a.setupRoutes()
		for _, fn := range a.customRoutes {
			fn(a)
		}
	})
	return a.setupErr
}

// Handler returns the configured HTTP handler.
func (a *App) Handler() (http.Handler, error) {
	if err := a.Setup(); err != nil {
		return nil, err
	}
	return a.Echo, nil
}

// Start sets the app up and serves until the server is shut down.
func (a *App) Start() error {
	if err := a.Setup(); err != nil {
		return err
	}
	a.Echo.Logger.Infof("serving %s on %s", a.Config.URL, a.Config.Addr)
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded assets (boot.js, site.css) are served under /public/ ahead of
	// the user's static dir.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	for _, name := range embeddedPublic {
		e.GET("/public/"+name, echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))
	}
	e.Static("/public", a.staticDir)

	e.GET("/", a.handleHome)
	a.navLimiter = NewLimiter(a.Config.NavRateLimit, time.Minute)
	e.GET("/nav/", a.handleNav, a.navLimiter.Middleware)
	e.GET("/motion.css", a.handleAsset(assetMotionCSS))
	e.GET("/og.png", a.handleAsset(assetOGImage))
	e.GET("/sitemap.xml", a.handleAsset(assetSitemap))
	e.GET("/robots.txt", a.handleAsset(assetRobots))
	e.GET("/favicon.svg", a.handleAsset(assetFavicon))
	e.GET("/feed.xml", a.handleAsset(assetFeed))
	e.GET("/healthz", handleHealth)
}

// Close releases resources held by the app.
func (a *App) Close() error {
	if a.navLimiter != nil {
		a.navLimiter.Stop()
	}
	return a.Echo.Close()
}
