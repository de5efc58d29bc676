package folio

import (
	"net/url"
	"path"
)

// assetURL joins a file name onto a base URL without a trailing slash.
func assetURL(base, file string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join("/", u.Path, file)
	return u.String()
}

// hostOf returns the host of rawURL, or rawURL itself if it does not parse.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Host
}

// anchorOnly returns href when it is a plain in-page anchor and "" otherwise,
// so redirects can never leave the page.
func anchorOnly(href string) string {
	if len(href) < 2 || href[0] != '#' {
		return ""
	}
	for _, r := range href[1:] {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return ""
		}
	}
	return href
}
