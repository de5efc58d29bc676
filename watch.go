package folio

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long Watch waits after the last change before
// rebuilding.
const DefaultDebounce = 300 * time.Millisecond

// Watch runs rebuild whenever files under paths change, coalescing bursts of
// events into one call. Directories are watched recursively, including ones
// created later; plain files are watched directly. Rebuild errors are logged
// and watching continues. Watch returns when ctx is done.
func Watch(ctx context.Context, paths []string, debounce time.Duration, rebuild func() error) error {
	return WatchExcept(ctx, paths, nil, debounce, rebuild)
}

// WatchExcept is Watch with directories that are never watched, such as the
// output of the rebuild itself.
func WatchExcept(ctx context.Context, paths, exclude []string, debounce time.Duration, rebuild func() error) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("folio: watch: %w", err)
	}
	defer watcher.Close()

	skip, err := excluder(exclude)
	if err != nil {
		return fmt.Errorf("folio: watch: %w", err)
	}

	watched := 0
	for _, p := range paths {
		n, err := addTree(watcher, p, skip)
		if err != nil {
			return fmt.Errorf("folio: watch %s: %w", p, err)
		}
		watched += n
	}
	if watched == 0 {
		return fmt.Errorf("folio: watch: none of %v exist", paths)
	}

	// Stop and Reset never leave a stale tick behind on go1.23+ timers.
	timer := time.NewTimer(debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			if skip(event.Name) {
				continue
			}
			log.Printf("change detected: %s (%s)", event.Name, event.Op)
			if event.Has(fsnotify.Create) && isDir(event.Name) {
				if _, err := addTree(watcher, event.Name, skip); err != nil {
					log.Printf("watch %s: %v", event.Name, err)
				}
			}
			timer.Reset(debounce)

		case <-timer.C:
			if err := rebuild(); err != nil {
				log.Printf("rebuild failed: %v", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("watcher error: %v", err)
		}
	}
}

// addTree watches p and, if it is a directory, every directory under it.
// A missing p and directories matched by skip are left out. It returns the
// number of paths added.
func addTree(w *fsnotify.Watcher, p string, skip func(string) bool) (int, error) {
	info, err := os.Stat(p)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if !info.IsDir() {
		return 1, w.Add(p)
	}
	n := 0
	err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skip(path) {
				return filepath.SkipDir
			}
			if err := w.Add(path); err != nil {
				return err
			}
			n++
		}
		return nil
	})
	return n, err
}

// excluder returns a predicate matching paths at or below any of dirs.
func excluder(dirs []string) (func(string) bool, error) {
	roots := make([]string, 0, len(dirs))
	for _, d := range dirs {
		abs, err := filepath.Abs(d)
		if err != nil {
			return nil, err
		}
		roots = append(roots, abs)
	}
	return func(path string) bool {
		abs, err := filepath.Abs(path)
		if err != nil {
			return false
		}
		for _, r := range roots {
			if within(abs, r) {
				return true
			}
		}
		return false
	}, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
