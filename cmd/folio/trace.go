package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/cobra"

	"github.com/rmaulika/folio/motion"
	"github.com/rmaulika/folio/nav"
	"github.com/rmaulika/folio/reveal"
	"github.com/rmaulika/folio/views"
)

// Height estimates for laying the page out without a browser.
const (
	sectionPadding = 192.0
	fadeItemHeight = 64.0
	chromeHeight   = 96.0
)

var (
	traceWidth   float64
	traceHeight  float64
	traceStep    float64
	traceVerbose bool
)

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Simulate scrolling the page and print when each section reveals",
	Long: `trace renders the page, estimates a layout for the given viewport and
scrolls it top to bottom in fixed steps. For every section it prints the
scroll offset at which it first entered view and the schedule of its fade
items: when the last one starts and when all of them have settled.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadStore(cfg)
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := views.Main(store, nav.Closed, time.Now().Year()).Render(context.Background(), &buf); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		doc, err := goquery.NewDocumentFromReader(&buf)
		if err != nil {
			return fmt.Errorf("parse: %w", err)
		}
		traces, err := traceSections(doc, reveal.Viewport{Width: traceWidth, Height: traceHeight}, traceStep)
		if err != nil {
			return err
		}
		return printTraces(cmd.OutOrStdout(), traces, traceVerbose)
	},
}

func init() {
	traceCmd.Flags().Float64Var(&traceWidth, "width", 1280, "viewport width in px")
	traceCmd.Flags().Float64Var(&traceHeight, "height", 800, "viewport height in px")
	traceCmd.Flags().Float64Var(&traceStep, "step", 200, "scroll step in px")
	traceCmd.Flags().BoolVarP(&traceVerbose, "verbose", "v", false, "print every fade item")
	rootCmd.AddCommand(traceCmd)
}

// fadeItem is one scroll-triggered element and its visible state.
type fadeItem struct {
	Ordinal int
	Stagger int
	State   motion.VisualState
}

// sectionTrace is the outcome of scrolling past one top-level section.
type sectionTrace struct {
	Name       string
	Rect       reveal.Rect
	Reveals    bool    // has a reveal container
	RevealedAt float64 // scroll offset, -1 if never revealed
	Items      []fadeItem
}

// LastStart is the delay of the latest fade item.
func (s sectionTrace) LastStart() time.Duration {
	var d time.Duration
	for _, it := range s.Items {
		d = max(d, it.State.Delay)
	}
	return d
}

// Settled is when the last fade item finishes its transition.
func (s sectionTrace) Settled() time.Duration {
	var d time.Duration
	for _, it := range s.Items {
		d = max(d, it.State.Delay+it.State.Duration)
	}
	return d
}

// traceSections lays out the children of main#page and scrolls a Field over
// them from the top until the bottom of the document is in view.
func traceSections(doc *goquery.Document, vp reveal.Viewport, step float64) ([]sectionTrace, error) {
	if step <= 0 {
		return nil, fmt.Errorf("step must be positive, got %v", step)
	}
	if vp.Width <= 0 || vp.Height <= 0 {
		return nil, fmt.Errorf("viewport must be positive, got %vx%v", vp.Width, vp.Height)
	}

	parts := doc.Find("main#page").Children()
	if parts.Length() == 0 {
		return nil, fmt.Errorf("no page sections found")
	}

	margin := reveal.DefaultMargin
	var (
		traces  []sectionTrace
		heights []float64
		err     error
	)
	parts.EachWithBreak(func(_ int, s *goquery.Selection) bool {
		t := sectionTrace{Name: partName(s), RevealedAt: -1}
		_, t.Reveals = s.Attr("data-reveal")
		if raw, ok := s.Attr("data-reveal-margin"); ok {
			m, perr := strconv.ParseFloat(raw, 64)
			if perr != nil {
				err = fmt.Errorf("%s: bad reveal margin %q", t.Name, raw)
				return false
			}
			margin = reveal.Margin(m)
		}
		s.Find("[data-fade]").Each(func(_ int, item *goquery.Selection) {
			ord, _ := strconv.Atoi(item.AttrOr("data-ordinal", "0"))
			stg, _ := strconv.Atoi(item.AttrOr("data-stagger", "0"))
			t.Items = append(t.Items, fadeItem{
				Ordinal: ord,
				Stagger: stg,
				State:   motion.Resolve(true, ord).Staggered(stg),
			})
		})
		traces = append(traces, t)
		heights = append(heights, estimateHeight(s, len(t.Items), vp))
		return true
	})
	if err != nil {
		return nil, err
	}

	rects := reveal.Stack(vp.Width, heights...)
	field := reveal.NewField(vp, margin)
	var controllers []*reveal.Controller
	for i := range traces {
		traces[i].Rect = rects[i]
		if !traces[i].Reveals {
			continue
		}
		t := &traces[i]
		controllers = append(controllers, reveal.New(field.Region(rects[i]), func() {
			t.RevealedAt = field.ScrollY()
		}))
	}
	defer func() {
		for _, c := range controllers {
			c.Close()
		}
	}()

	end := rects[len(rects)-1].Bottom - vp.Height
	for y := step; y < end; y += step {
		field.Scroll(y)
	}
	if end > 0 {
		field.Scroll(end)
	}
	return traces, nil
}

// estimateHeight guesses the rendered height of a top-level page part. The
// hero fills the first screen.
func estimateHeight(s *goquery.Selection, items int, vp reveal.Viewport) float64 {
	switch goquery.NodeName(s) {
	case "nav", "footer":
		return chromeHeight
	}
	if s.HasClass("hero") {
		return vp.Height
	}
	return sectionPadding + float64(items)*fadeItemHeight
}

// partName names a page part by its anchor, falling back to its class.
func partName(s *goquery.Selection) string {
	if id, ok := s.Attr("id"); ok && id != "" {
		return id
	}
	for _, c := range strings.Fields(s.AttrOr("class", "")) {
		if c != "section" {
			return c
		}
	}
	return goquery.NodeName(s)
}

func printTraces(w io.Writer, traces []sectionTrace, verbose bool) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SECTION\tTOP\tREVEALED AT\tITEMS\tLAST START\tSETTLED")
	for _, t := range traces {
		at := "-"
		switch {
		case t.RevealedAt >= 0:
			at = strconv.FormatFloat(t.RevealedAt, 'f', 0, 64)
		case t.Reveals:
			at = "never"
		}
		fmt.Fprintf(tw, "%s\t%.0f\t%s\t%d\t%s\t%s\n",
			t.Name, t.Rect.Top, at, len(t.Items), t.LastStart(), t.Settled())
		if verbose {
			for _, it := range t.Items {
				fmt.Fprintf(tw, "  ordinal %d\tstagger %d\t%s\t\t\t\n", it.Ordinal, it.Stagger, it.State.Style())
			}
		}
	}
	return tw.Flush()
}
