package folio

import (
	"encoding/xml"
	"testing"
)

func TestRenderSitemap(t *testing.T) {
	b, err := renderSitemap("https://example.com/folio")
	if err != nil {
		t.Fatalf("renderSitemap: %v", err)
	}
	var got sitemapURLSet
	if err := xml.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got.URLs) != 1 {
		t.Fatalf("urls = %+v, want one", got.URLs)
	}
	if got.URLs[0].Loc != "https://example.com/folio" {
		t.Errorf("loc = %q", got.URLs[0].Loc)
	}
}

func TestHostOf(t *testing.T) {
	tests := map[string]string{
		"https://example.com":     "example.com",
		"http://localhost:3000/x": "localhost:3000",
		"not a url":               "not a url",
	}
	for in, want := range tests {
		if got := hostOf(in); got != want {
			t.Errorf("hostOf(%q) = %q, want %q", in, got, want)
		}
	}
}
