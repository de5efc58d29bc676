package folio

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/a-h/templ"

	"github.com/rmaulika/folio/nav"
	"github.com/rmaulika/folio/views"
)

// Export writes the site to dir as static files: index.html, 404.html, the
// generated assets, the embedded assets and a copy of the static dir under
// public/. It returns the written paths relative to dir.
//
// The no-JavaScript menu fallback needs the server, so exported menu links
// point straight at their anchors and the toggle at the overlay.
func (a *App) Export(ctx context.Context, dir string) ([]string, error) {
	if err := a.Content.Validate(); err != nil {
		return nil, fmt.Errorf("folio: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("folio: export: %w", err)
	}

	var written []string
	renderCtx := views.WithStaticLinks(ctx)
	page := func(name string, cmp templ.Component) error {
		if err := RenderFile(renderCtx, filepath.Join(dir, name), cmp); err != nil {
			return fmt.Errorf("folio: export %s: %w", name, err)
		}
		written = append(written, name)
		return nil
	}

	if err := page("index.html", views.Page(a.Site(), a.Content, nav.Closed, a.now().Year())); err != nil {
		return written, err
	}
	if err := page("404.html", views.NotFound(a.Site())); err != nil {
		return written, err
	}

	for _, name := range a.Assets.Names() {
		asset, err := a.Assets.Get(name)
		if err != nil {
			return written, err
		}
		if err := writeFile(filepath.Join(dir, name), asset.Body); err != nil {
			return written, fmt.Errorf("folio: export %s: %w", name, err)
		}
		written = append(written, name)
	}

	for _, name := range embeddedPublic {
		b, err := fs.ReadFile(EmbeddedAssets, "embedded/"+name)
		if err != nil {
			return written, fmt.Errorf("folio: export %s: %w", name, err)
		}
		rel := filepath.Join("public", name)
		if err := writeFile(filepath.Join(dir, rel), b); err != nil {
			return written, fmt.Errorf("folio: export %s: %w", rel, err)
		}
		written = append(written, rel)
	}

	copied, err := copyTree(a.staticDir, filepath.Join(dir, "public"), dir)
	for _, c := range copied {
		written = append(written, filepath.Join("public", c))
	}
	if err != nil {
		return written, fmt.Errorf("folio: export static: %w", err)
	}
	return written, nil
}

func writeFile(path string, b []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// copyTree copies every regular file under src into dst, overwriting. A
// missing src copies nothing. The skip directory is left out of the walk, so
// an export dir inside src is never copied into itself.
func copyTree(src, dst, skip string) ([]string, error) {
	if _, err := os.Stat(src); os.IsNotExist(err) {
		return nil, nil
	}
	absSkip, err := filepath.Abs(skip)
	if err != nil {
		return nil, err
	}
	var copied []string
	err = filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			abs, err := filepath.Abs(path)
			if err != nil {
				return err
			}
			if within(abs, absSkip) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		b, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := writeFile(filepath.Join(dst, rel), b); err != nil {
			return err
		}
		copied = append(copied, rel)
		return nil
	})
	return copied, err
}

// within reports whether path is root or lies below it. Both must be
// absolute.
func within(path, root string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
