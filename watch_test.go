package folio

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchRebuildsOnChange(t *testing.T) {
	dir := t.TempDir()
	rebuilt := make(chan struct{}, 8)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, []string{dir}, 20*time.Millisecond, func() error {
			rebuilt <- struct{}{}
			return nil
		})
	}()

	// Give the watcher time to register before writing.
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(100 * time.Millisecond)
	defer tick.Stop()
	for i := 0; ; i++ {
		if err := os.WriteFile(filepath.Join(dir, "site.css"), []byte{byte(i)}, 0o644); err != nil {
			t.Fatal(err)
		}
		select {
		case <-rebuilt:
			cancel()
			if err := <-done; err != nil {
				t.Fatalf("Watch: %v", err)
			}
			return
		case <-tick.C:
		case <-deadline:
			cancel()
			t.Fatal("rebuild never ran")
		}
	}
}

func TestWatchNothingToWatch(t *testing.T) {
	err := Watch(context.Background(), []string{filepath.Join(t.TempDir(), "missing")}, 0, func() error { return nil })
	if err == nil {
		t.Fatal("Watch should fail when no path exists")
	}
}

func TestWatchExceptIgnoresExcludedDir(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "dist")
	if err := os.Mkdir(out, 0o755); err != nil {
		t.Fatal(err)
	}
	rebuilt := make(chan struct{}, 8)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- WatchExcept(ctx, []string{dir}, []string{out}, 20*time.Millisecond, func() error {
			rebuilt <- struct{}{}
			return nil
		})
	}()

	deadline := time.After(time.Second)
	tick := time.NewTicker(100 * time.Millisecond)
	defer tick.Stop()
	for i := 0; ; i++ {
		if err := os.WriteFile(filepath.Join(out, "index.html"), []byte{byte(i)}, 0o644); err != nil {
			t.Fatal(err)
		}
		select {
		case <-rebuilt:
			cancel()
			<-done
			t.Fatal("a write in the excluded dir triggered a rebuild")
		case <-tick.C:
		case <-deadline:
			cancel()
			if err := <-done; err != nil {
				t.Fatalf("WatchExcept: %v", err)
			}
			return
		}
	}
}

func TestExcluder(t *testing.T) {
	dir := t.TempDir()
	skip, err := excluder([]string{filepath.Join(dir, "dist")})
	if err != nil {
		t.Fatal(err)
	}
	if !skip(filepath.Join(dir, "dist", "index.html")) {
		t.Error("file under the excluded dir should be skipped")
	}
	if skip(filepath.Join(dir, "site.css")) {
		t.Error("file outside the excluded dir should not be skipped")
	}
}
