package views

import (
	"encoding/json"
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/rmaulika/folio/content"
	"github.com/rmaulika/folio/motion"
	"github.com/rmaulika/folio/reveal"
)

// buildURL joins path segments onto a base URL, ensuring a trailing slash.
func buildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// assetURL joins a file path onto a base URL without a trailing slash.
func assetURL(base, file string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join("/", u.Path, file)
	return u.String()
}

// PersonJsonLD produces a Schema.org Person JSON-LD block for the profile.
func PersonJsonLD(site Site, p content.Profile) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "Person",
		"name":     p.Name,
		"url":      buildURL(site.URL),
		"jobTitle": p.Tagline,
	}
	var sameAs []string
	for _, link := range []string{p.GitHub, p.LinkedIn} {
		if link != "" {
			sameAs = append(sameAs, link)
		}
	}
	if len(sameAs) > 0 {
		data["sameAs"] = sameAs
	}
	if p.Email != "" {
		data["email"] = "mailto:" + p.Email
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// fadeAttrs marks an element as a scroll-triggered fade item. It starts in
// the hidden state; the browser client swaps in the visible one.
func fadeAttrs(ordinal, stagger int) string {
	return ` data-fade data-ordinal="` + strconv.Itoa(ordinal) +
		`" data-stagger="` + strconv.Itoa(stagger) +
		`" style="` + motion.Resolve(false, ordinal).Style() + `"`
}

// revealAttrs marks a section as a reveal container.
func revealAttrs() string {
	return ` data-reveal data-reveal-margin="` +
		strconv.FormatFloat(float64(reveal.DefaultMargin), 'f', -1, 64) + `"`
}

// enterAttrs marks an element for a page-load entrance.
func enterAttrs(e motion.Entrance) string {
	return ` data-enter="` + e.Name + `" style="` + e.Vars() + `"`
}
