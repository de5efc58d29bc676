package views

import (
	"context"

	"github.com/a-h/templ"

	"github.com/rmaulika/folio/motion"
)

// Layout wraps body in the HTML document shell: head metadata, stylesheets
// and, when enabled, the WebAssembly client.
func Layout(site Site, meta PageMeta, body templ.Component) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		if meta.Title == "" {
			meta.Title = site.Name
		}
		if meta.Description == "" {
			meta.Description = site.Description
		}
		if meta.OGType == "" {
			meta.OGType = "website"
		}

		h.raw(`<!doctype html><html lang="en"><head>`)
		h.raw(`<meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>`)
		h.text(meta.Title)
		h.raw(`</title>`)
		if meta.Description != "" {
			h.raw(`<meta name="description"`)
			h.attr("content", meta.Description)
			h.raw(`>`)
		}
		if meta.Robots != "" {
			h.raw(`<meta name="robots"`)
			h.attr("content", meta.Robots)
			h.raw(`>`)
		}
		if meta.URL != "" {
			h.raw(`<link rel="canonical"`)
			h.href(meta.URL)
			h.raw(`><meta property="og:url"`)
			h.attr("content", meta.URL)
			h.raw(`>`)
		}
		h.raw(`<meta property="og:title"`)
		h.attr("content", meta.Title)
		h.raw(`><meta property="og:type"`)
		h.attr("content", meta.OGType)
		h.raw(`>`)
		if meta.Description != "" {
			h.raw(`<meta property="og:description"`)
			h.attr("content", meta.Description)
			h.raw(`>`)
		}
		h.raw(`<meta property="og:site_name"`)
		h.attr("content", site.Name)
		h.raw(`><meta property="og:image"`)
		h.attr("content", assetURL(site.URL, "og.png"))
		h.raw(`><meta name="twitter:card" content="summary_large_image">`)

		h.raw(`<link rel="icon" type="image/svg+xml" href="/favicon.svg">`)
		h.raw(`<link rel="alternate" type="application/rss+xml"`)
		h.attr("title", site.Name+" projects")
		h.raw(` href="/feed.xml">`)
		h.raw(`<link rel="stylesheet" href="/public/site.css">`)
		h.raw(`<link rel="stylesheet" href="/motion.css">`)
		if meta.JSONLD != "" {
			h.raw(`<script type="application/ld+json">`, meta.JSONLD, `</script>`)
		}
		// Fade items only start hidden when the client is there to reveal them.
		if site.WASM {
			h.raw(`<noscript><style>`, motion.NoScriptStyle, `</style></noscript>`)
			h.raw(`<script src="/public/wasm_exec.js" defer></script>`)
			h.raw(`<script src="/public/boot.js" defer></script>`)
		} else {
			h.raw(`<style>`, motion.NoScriptStyle, `</style>`)
		}
		h.raw(`</head><body>`)
		h.render(ctx, body)
		h.raw(`</body></html>`)
	})
}

// NotFound renders the 404 page.
func NotFound(site Site) templ.Component {
	return errorPage(site, "404", "Page not found", "There is nothing at this address.")
}

// ServerError renders the 500 page.
func ServerError(site Site) templ.Component {
	return errorPage(site, "500", "Something went wrong", "The page could not be rendered. Please try again shortly.")
}

func errorPage(site Site, code, title, message string) templ.Component {
	body := component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<main id="page" class="error-page"><div class="container">`)
		h.raw(`<p class="eyebrow">`)
		h.text(code)
		h.raw(`</p><h1 class="section-title">`)
		h.text(title)
		h.raw(`</h1><p class="lede muted">`)
		h.text(message)
		h.raw(`</p><a class="button" href="/">Back to the portfolio</a></div></main>`)
	})
	return Layout(site, PageMeta{Title: title + " | " + site.Name, Robots: "noindex"}, body)
}
