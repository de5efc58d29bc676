package motion

import (
	"fmt"
	"strings"
	"time"
)

// Entrance is a one-off animation played when the page loads, independent of
// scrolling.
type Entrance struct {
	Name     string
	OffsetY  float64 // px the element starts away from its resting position
	Duration time.Duration
	Delay    time.Duration
}

// Vars renders the CSS custom properties read by the folio-enter keyframes.
func (e Entrance) Vars() string {
	return fmt.Sprintf("--enter-from:%spx;--enter-duration:%s;--enter-delay:%s",
		num(e.OffsetY), ms(e.Duration), ms(e.Delay))
}

// NavEntrance slides the navigation bar down from above the viewport.
var NavEntrance = Entrance{Name: "nav", OffsetY: -80, Duration: 700 * time.Millisecond}

// Hero entrances, in the order they play.
var (
	HeroBadge   = Entrance{Name: "badge", OffsetY: 20, Duration: 600 * time.Millisecond, Delay: 200 * time.Millisecond}
	HeroHeading = Entrance{Name: "heading", OffsetY: 32, Duration: 800 * time.Millisecond, Delay: 300 * time.Millisecond}
	HeroLede    = Entrance{Name: "lede", OffsetY: 24, Duration: 700 * time.Millisecond, Delay: 500 * time.Millisecond}
	HeroLinks   = Entrance{Name: "links", OffsetY: 16, Duration: 600 * time.Millisecond, Delay: 700 * time.Millisecond}
)

// HeroTimeline returns the hero entrances ordered by start time.
func HeroTimeline() []Entrance {
	return []Entrance{HeroBadge, HeroHeading, HeroLede, HeroLinks}
}

// OverlayDuration is how long the mobile menu takes to open or close.
const OverlayDuration = 250 * time.Millisecond

// OverlayState is the visual state of the mobile menu panel. The logical
// menu state flips immediately; this only describes how it looks.
type OverlayState struct {
	Height   string // "0" or "auto"
	Opacity  float64
	Duration time.Duration
	Easing   CubicBezier
}

// Overlay returns the panel state for an open or closed menu.
func Overlay(open bool) OverlayState {
	s := OverlayState{Height: "0", Opacity: 0, Duration: OverlayDuration, Easing: Ease}
	if open {
		s.Height = "auto"
		s.Opacity = 1
	}
	return s
}

// Style renders the panel state. Height auto is animated through a one-row
// grid going from 0fr to 1fr.
func (o OverlayState) Style() string {
	rows := "0fr"
	if o.Height == "auto" {
		rows = "1fr"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "grid-template-rows:%s;opacity:%s;", rows, num(o.Opacity))
	fmt.Fprintf(&b, "transition:grid-template-rows %s %s,opacity %s %s",
		ms(o.Duration), o.Easing, ms(o.Duration), o.Easing)
	return b.String()
}
