package views

// Site holds site-wide settings. Every handler passes this to the
// components so nothing about the deployment is hardcoded.
type Site struct {
	Name        string // FOLIO_NAME (default: the profile name)
	URL         string // FOLIO_URL  (default "http://localhost:3000")
	Description string // FOLIO_DESCRIPTION
	Author      string // FOLIO_AUTHOR
	WASM        bool   // load the browser client from /public/folio.wasm
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head>.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "profile"
	Robots      string // optional robots meta, e.g. "noindex"
	JSONLD      string // optional schema.org block
}
