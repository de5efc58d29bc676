package folio

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/rmaulika/folio/content"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	Description string   `xml:"description"`
	Categories  []string `xml:"category"`
	PubDate     string   `xml:"pubDate,omitempty"`
	GUID        rssGUID  `xml:"guid"`
}

type rssGUID struct {
	IsPermaLink bool   `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

// projectDateLayouts are the month formats project dates are written in.
var projectDateLayouts = []string{"January 2006", "Jan 2006", "2006-01-02", "2006"}

// renderFeed lists the projects as an RSS 2.0 channel. Projects without an
// outbound link point at the projects section of the page.
func renderFeed(base, title, description string, projects []content.Project) ([]byte, error) {
	home := assetURL(base, "/")
	items := make([]rssItem, 0, len(projects))
	for _, p := range projects {
		link := p.Link
		if !strings.HasPrefix(link, "http://") && !strings.HasPrefix(link, "https://") {
			link = home + "#projects"
		}
		items = append(items, rssItem{
			Title:       p.Title,
			Link:        link,
			Description: p.Description,
			Categories:  p.Tags,
			PubDate:     pubDate(p.Date),
			GUID:        rssGUID{Value: home + "#" + slugify(p.Title)},
		})
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       title,
			Link:        home,
			Description: description,
			Items:       items,
		},
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(feed); err != nil {
		return nil, fmt.Errorf("encode feed: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// pubDate converts a project date to RFC 1123 form, or "" if it is not in a
// known layout.
func pubDate(s string) string {
	for _, layout := range projectDateLayouts {
		if t, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
			return t.Format(time.RFC1123Z)
		}
	}
	return ""
}

// slugify lowercases s and joins its alphanumeric runs with hyphens.
func slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
		default:
			dash = true
		}
	}
	return b.String()
}
