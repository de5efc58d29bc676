package folio

import "embed"

// EmbeddedAssets contains static assets shipped with folio:
// boot.js, site.css, favicon.svg
//
//go:embed embedded/*
var EmbeddedAssets embed.FS

// embeddedPublic lists the embedded files served under /public/.
var embeddedPublic = []string{"boot.js", "site.css"}
