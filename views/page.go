package views

import (
	"context"

	"github.com/a-h/templ"

	"github.com/rmaulika/folio/content"
	"github.com/rmaulika/folio/nav"
)

// Parts names the direct children of <main id="page">, in render order.
var Parts = []string{
	"nav", "hero", "about", "skills", "projects",
	"experience", "education", "certifications", "contact", "footer",
}

// Main composes the page body: the navigation bar, the nine sections and
// the footer, always in the same order and always all of them, whatever the
// store holds.
func Main(store *content.Store, menu nav.State, year int) templ.Component {
	p := store.Profile()
	parts := []templ.Component{
		Navbar(p.Name, store.Nav(), menu),
		Hero(p),
		About(p, store.Stats()),
		Skills(store.Skills()),
		Projects(store.Projects()),
		Experience(store.Experience()),
		Education(store.Education()),
		Certifications(store.Certificates(), store.Achievements()),
		Contact(p),
		Footer(p, year),
	}
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<main id="page">`)
		for _, c := range parts {
			h.render(ctx, c)
		}
		h.raw(`</main>`)
	})
}

// Page renders the full document for the portfolio.
func Page(site Site, store *content.Store, menu nav.State, year int) templ.Component {
	p := store.Profile()
	title := site.Name
	if p.Tagline != "" {
		title += " | " + p.Tagline
	}
	desc := site.Description
	if desc == "" {
		desc = p.Intro
	}
	meta := PageMeta{
		Title:       title,
		Description: desc,
		URL:         assetURL(site.URL, "/"),
		OGType:      "profile",
		JSONLD:      PersonJsonLD(site, p),
	}
	return Layout(site, meta, Main(store, menu, year))
}
