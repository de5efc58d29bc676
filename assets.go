package folio

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rmaulika/folio/motion"
	"github.com/rmaulika/folio/ogimage"
)

// Generated assets, by the path they are served at.
const (
	assetMotionCSS = "motion.css"
	assetOGImage   = "og.png"
	assetSitemap   = "sitemap.xml"
	assetRobots    = "robots.txt"
	assetFavicon   = "favicon.svg"
	assetFeed      = "feed.xml"
)

func (a *App) assetBuilders() map[string]func() (Asset, error) {
	return map[string]func() (Asset, error){
		assetMotionCSS: func() (Asset, error) {
			return Asset{Body: []byte(motion.Stylesheet()), ContentType: "text/css; charset=utf-8"}, nil
		},
		assetOGImage: a.buildOGImage,
		assetSitemap: func() (Asset, error) {
			b, err := renderSitemap(a.Config.URL)
			return Asset{Body: b, ContentType: "application/xml; charset=utf-8"}, err
		},
		assetRobots: func() (Asset, error) {
			body := fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s\n", assetURL(a.Config.URL, assetSitemap))
			return Asset{Body: []byte(body), ContentType: "text/plain; charset=utf-8"}, nil
		},
		assetFavicon: a.buildFavicon,
		assetFeed: func() (Asset, error) {
			b, err := renderFeed(a.Config.URL, a.Config.Name, a.Config.Description, a.Content.Projects())
			return Asset{Body: b, ContentType: "application/rss+xml; charset=utf-8"}, err
		},
	}
}

func (a *App) buildOGImage() (Asset, error) {
	p := a.Content.Profile()
	var buf bytes.Buffer
	err := ogimage.Encode(&buf, ogimage.Card{
		Title:    a.Config.Name,
		Subtitle: p.Tagline,
		Footer:   hostOf(a.Config.URL),
	})
	if err != nil {
		return Asset{}, err
	}
	return Asset{Body: buf.Bytes(), ContentType: "image/png"}, nil
}

// buildFavicon prefers favicon.svg from the static dir over the embedded one.
func (a *App) buildFavicon() (Asset, error) {
	b, err := os.ReadFile(filepath.Join(a.staticDir, assetFavicon))
	if err != nil {
		b, err = fs.ReadFile(EmbeddedAssets, "embedded/"+assetFavicon)
		if err != nil {
			return Asset{}, err
		}
	}
	return Asset{Body: b, ContentType: "image/svg+xml"}, nil
}
