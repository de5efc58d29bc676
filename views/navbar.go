package views

import (
	"context"
	"net/url"

	"github.com/a-h/templ"

	"github.com/rmaulika/folio/content"
	"github.com/rmaulika/folio/motion"
	"github.com/rmaulika/folio/nav"
)

// NavPath is the no-JavaScript endpoint that applies a menu event.
const NavPath = "/nav/"

// NavURL links to the menu endpoint. href is the in-page anchor to land on
// after a link selection.
func NavURL(state nav.State, ev nav.Event, href string) string {
	q := url.Values{}
	q.Set("state", state.String())
	q.Set("event", ev.String())
	if href != "" {
		q.Set("href", href)
	}
	return NavPath + "?" + q.Encode()
}

type staticLinksKey struct{}

// WithStaticLinks marks a render as a static export. Menu links then point
// straight at their anchors, since NavPath needs the server.
func WithStaticLinks(ctx context.Context) context.Context {
	return context.WithValue(ctx, staticLinksKey{}, true)
}

func staticLinks(ctx context.Context) bool {
	v, _ := ctx.Value(staticLinksKey{}).(bool)
	return v
}

func menuHref(ctx context.Context, menu nav.State, ev nav.Event, href string) string {
	if !staticLinks(ctx) {
		return NavURL(menu, ev, href)
	}
	if ev == nav.TogglePressed {
		return "#menu-panel"
	}
	return href
}

// Navbar renders the fixed navigation bar with its mobile overlay in the
// given menu state. Without JavaScript the toggle and overlay links go
// through NavPath; the browser client intercepts them and drives a
// nav.Machine instead.
func Navbar(name string, links []content.NavLink, menu nav.State) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		state := menu.String()

		h.raw(`<nav id="site-nav" class="site-nav"`, enterAttrs(motion.NavEntrance), `>`)
		h.raw(`<div class="container nav-bar">`)
		h.raw(`<a class="brand" href="#">`)
		h.text(name)
		h.raw(`</a>`)

		h.raw(`<ul class="nav-links">`)
		for _, l := range links {
			h.raw(`<li><a`)
			h.href(l.Href)
			h.raw(`>`)
			h.text(l.Label)
			h.raw(`</a></li>`)
		}
		h.raw(`</ul>`)

		h.raw(`<div class="nav-actions">`)
		h.raw(`<a class="button button-outline nav-cta" href="#contact">Get in touch</a>`)
		h.raw(`<a class="menu-toggle" data-menu-toggle`)
		h.attr("data-state", state)
		h.href(menuHref(ctx, menu, nav.TogglePressed, ""))
		h.raw(` role="button" aria-label="Toggle menu" aria-controls="menu-panel"`)
		if menu == nav.Open {
			h.raw(` aria-expanded="true">`)
		} else {
			h.raw(` aria-expanded="false">`)
		}
		h.raw(iconMenu, `</a>`)
		h.raw(`</div></div>`)

		menuPanel(ctx, h, links, menu)
		h.raw(`</nav>`)
	})
}

// NavPartial renders only the navigation bar, for requests that swap it in
// place.
func NavPartial(store *content.Store, menu nav.State) templ.Component {
	return Navbar(store.Profile().Name, store.Nav(), menu)
}

func menuPanel(ctx context.Context, h *htmlWriter, links []content.NavLink, menu nav.State) {
	h.raw(`<div id="menu-panel" class="menu-panel" data-menu-panel`)
	h.attr("data-state", menu.String())
	if menu == nav.Closed {
		h.raw(` aria-hidden="true" inert`)
	}
	h.raw(`><div><ul class="container menu-list">`)
	for _, l := range links {
		h.raw(`<li><a class="menu-link"`)
		h.attr("data-menu-link", l.Href)
		h.href(menuHref(ctx, menu, nav.LinkSelected, l.Href))
		h.raw(`>`)
		h.text(l.Label)
		h.raw(`</a></li>`)
	}
	h.raw(`<li class="menu-cta"><a class="button button-outline" data-menu-link="#contact"`)
	h.href(menuHref(ctx, menu, nav.LinkSelected, "#contact"))
	h.raw(`>Get in touch</a></li>`)
	h.raw(`</ul></div></div>`)
}
