package folio

import (
	"encoding/xml"
	"testing"

	"github.com/rmaulika/folio/content"
)

func TestRenderFeed(t *testing.T) {
	projects := []content.Project{
		{Title: "Edge Vision, v2", Description: "Pruned detector.", Tags: []string{"PyTorch", "ONNX"}, Link: "https://github.com/x/edge", Date: "July 2025"},
		{Title: "Private Notes", Description: "Internal.", Tags: []string{"Go"}, Link: "#", Date: "someday"},
	}
	b, err := renderFeed("https://example.com", "Jane", "Portfolio", projects)
	if err != nil {
		t.Fatalf("renderFeed: %v", err)
	}
	var got rssXML
	if err := xml.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Version != "2.0" || got.Channel.Link != "https://example.com/" {
		t.Errorf("channel = %+v", got.Channel)
	}
	if len(got.Channel.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(got.Channel.Items))
	}

	first, second := got.Channel.Items[0], got.Channel.Items[1]
	if first.Link != "https://github.com/x/edge" {
		t.Errorf("first link = %q", first.Link)
	}
	if first.PubDate != "Tue, 01 Jul 2025 00:00:00 +0000" {
		t.Errorf("first pubDate = %q", first.PubDate)
	}
	if first.GUID.Value != "https://example.com/#edge-vision-v2" || first.GUID.IsPermaLink {
		t.Errorf("first guid = %+v", first.GUID)
	}
	if len(first.Categories) != 2 {
		t.Errorf("first categories = %v", first.Categories)
	}
	if second.Link != "https://example.com/#projects" {
		t.Errorf("second link = %q", second.Link)
	}
	if second.PubDate != "" {
		t.Errorf("second pubDate = %q, want empty", second.PubDate)
	}
}

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Edge Vision, v2": "edge-vision-v2",
		"  Hello--World ": "hello-world",
		"ÄI":              "i",
		"":                "",
	}
	for in, want := range tests {
		if got := slugify(in); got != want {
			t.Errorf("slugify(%q) = %q, want %q", in, got, want)
		}
	}
}
