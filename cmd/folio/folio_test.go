package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/rmaulika/folio/content"
	"github.com/rmaulika/folio/nav"
	"github.com/rmaulika/folio/reveal"
	"github.com/rmaulika/folio/views"
)

func TestToTitle(t *testing.T) {
	tests := []struct{ in, want string }{
		{"my-folio", "My Folio"},
		{"folio", "Folio"},
		{"a--b", "A  B"},
	}
	for _, tt := range tests {
		if got := toTitle(tt.in); got != tt.want {
			t.Errorf("toTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriteScaffold(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "my-site")
	data := scaffoldData{ProjectName: "my-site", Module: modulePath, SiteName: "My Site"}

	var out bytes.Buffer
	if err := writeScaffold(dir, data, &out); err != nil {
		t.Fatalf("writeScaffold: %v", err)
	}

	want := map[string]string{
		"folio.yaml":   `name: "My Site"`,
		".env.example": "FOLIO_ADDR=:3000",
		"Makefile":     modulePath + "/cmd/folio-wasm",
		"go.mod":       "module my-site",
	}
	for name, substr := range want {
		b, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("read %s: %v", name, err)
			continue
		}
		if !strings.Contains(string(b), substr) {
			t.Errorf("%s does not contain %q:\n%s", name, substr, b)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "public", ".gitkeep")); err != nil {
		t.Errorf("public/.gitkeep: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "dotenv")); !os.IsNotExist(err) {
		t.Error("dotenv should be renamed to .env.example")
	}
	if !strings.Contains(out.String(), "created") {
		t.Errorf("output = %q", out.String())
	}
}

func TestRunInitRefusesExistingDir(t *testing.T) {
	if err := runInit(t.TempDir(), &bytes.Buffer{}); err == nil {
		t.Fatal("existing directory should fail")
	}
}

func renderedPage(t *testing.T) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	if err := views.Main(content.Default(), nav.Closed, 2026).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

func TestTraceSections(t *testing.T) {
	traces, err := traceSections(renderedPage(t), reveal.Viewport{Width: 1280, Height: 800}, 200)
	if err != nil {
		t.Fatalf("traceSections: %v", err)
	}
	if len(traces) != len(views.Parts) {
		t.Fatalf("got %d parts, want %d", len(traces), len(views.Parts))
	}

	byName := map[string]sectionTrace{}
	for _, tr := range traces {
		byName[tr.Name] = tr
	}

	for _, name := range []string{"site-nav", "hero", "site-footer"} {
		tr, ok := byName[name]
		if !ok {
			t.Errorf("missing part %q", name)
			continue
		}
		if tr.Reveals || tr.RevealedAt != -1 {
			t.Errorf("%s should not be a reveal container: %+v", name, tr)
		}
	}

	about := byName["about"]
	if about.Rect.Top != chromeHeight+800 {
		t.Errorf("about top = %v", about.Rect.Top)
	}
	// 896-200 = 696 is the first offset past the 740px margin line.
	if about.RevealedAt != 200 {
		t.Errorf("about revealed at %v, want 200", about.RevealedAt)
	}

	last := -1.0
	for _, tr := range traces {
		if !tr.Reveals {
			continue
		}
		if tr.RevealedAt < 0 {
			t.Errorf("%s never revealed", tr.Name)
		}
		if tr.RevealedAt < last {
			t.Errorf("%s revealed at %v, before the section above it (%v)", tr.Name, tr.RevealedAt, last)
		}
		last = tr.RevealedAt
		if len(tr.Items) > 0 && tr.Settled() != tr.LastStart()+550*time.Millisecond {
			t.Errorf("%s settles at %v, last start %v", tr.Name, tr.Settled(), tr.LastStart())
		}
	}

	contact := byName["contact"]
	if len(contact.Items) != 4 {
		t.Fatalf("contact items = %d, want 4", len(contact.Items))
	}
	// Links: ordinal 2 (160ms) plus stagger index 3 (210ms).
	if got := contact.LastStart(); got != 370*time.Millisecond {
		t.Errorf("contact last start = %v, want 370ms", got)
	}
}

func TestTraceSectionsRejectsBadInput(t *testing.T) {
	doc := renderedPage(t)
	if _, err := traceSections(doc, reveal.Viewport{Width: 1280, Height: 800}, 0); err == nil {
		t.Error("zero step should fail")
	}
	if _, err := traceSections(doc, reveal.Viewport{Width: 0, Height: 800}, 100); err == nil {
		t.Error("zero width should fail")
	}
	empty, err := goquery.NewDocumentFromReader(strings.NewReader("<p>nothing</p>"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := traceSections(empty, reveal.Viewport{Width: 1280, Height: 800}, 100); err == nil {
		t.Error("a page without main#page should fail")
	}
}

func TestPrintTraces(t *testing.T) {
	traces := []sectionTrace{
		{Name: "hero", RevealedAt: -1},
		{Name: "about", Reveals: true, RevealedAt: 200},
		{Name: "contact", Reveals: true, RevealedAt: -1},
	}
	var buf bytes.Buffer
	if err := printTraces(&buf, traces, false); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"SECTION", "REVEALED AT", "about", "200", "never"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDumpAndVersionCommands(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	t.Cleanup(func() { rootCmd.SetOut(nil); rootCmd.SetArgs(nil) })

	rootCmd.SetArgs([]string{"dump", "--section", "nav"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("dump: %v", err)
	}
	if !strings.Contains(out.String(), "href: '#about'") {
		t.Errorf("dump output:\n%s", out.String())
	}

	out.Reset()
	rootCmd.SetArgs([]string{"version"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("version: %v", err)
	}
	if got := out.String(); got != "folio dev\n" {
		t.Errorf("version output = %q", got)
	}
}
