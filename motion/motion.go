// Package motion computes the visual states of the page's entrance
// animations. Every function is pure: the same inputs always produce the
// same VisualState, so the server and the browser client agree on timing.
package motion

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CubicBezier is a CSS cubic-bezier easing curve.
type CubicBezier struct {
	X1, Y1, X2, Y2 float64
}

func (c CubicBezier) String() string {
	return fmt.Sprintf("cubic-bezier(%s, %s, %s, %s)", num(c.X1), num(c.Y1), num(c.X2), num(c.Y2))
}

// Timing of the scroll-triggered fade.
const (
	FadeOffset    = 28.0                   // px below the resting position while hidden
	FadeDuration  = 550 * time.Millisecond // per element
	OrdinalStep   = 80 * time.Millisecond  // delay per explicit child ordinal
	ContainerStep = 70 * time.Millisecond  // delay per direct child of a reveal container
)

// Ease is shared by every entrance on the page.
var Ease = CubicBezier{X1: 0.25, Y1: 0.4, X2: 0, Y2: 1}

// VisualState is the target of an element's entrance transition.
type VisualState struct {
	Opacity  float64
	OffsetY  float64 // px, positive moves the element down
	Delay    time.Duration
	Duration time.Duration
	Easing   CubicBezier
}

// Resolve returns the visual state of a fade element. Hidden elements sit
// FadeOffset below their final position with zero delay; visible elements
// rest in place after ordinal*OrdinalStep. Negative ordinals count as zero.
func Resolve(inView bool, ordinal int) VisualState {
	if !inView {
		return VisualState{Opacity: 0, OffsetY: FadeOffset, Easing: Ease}
	}
	if ordinal < 0 {
		ordinal = 0
	}
	return VisualState{
		Opacity:  1,
		OffsetY:  0,
		Delay:    time.Duration(ordinal) * OrdinalStep,
		Duration: FadeDuration,
		Easing:   Ease,
	}
}

// ContainerDelay is the stagger a reveal container adds to its index-th
// direct child.
func ContainerDelay(index int) time.Duration {
	if index < 0 {
		return 0
	}
	return time.Duration(index) * ContainerStep
}

// Staggered adds the container stagger for the index-th child on top of the
// state's own delay. Hidden states are returned unchanged.
func (v VisualState) Staggered(index int) VisualState {
	if v.Opacity == 0 {
		return v
	}
	v.Delay += ContainerDelay(index)
	return v
}

// Visible reports whether the state is the resting, fully shown one.
func (v VisualState) Visible() bool {
	return v.Opacity == 1 && v.OffsetY == 0
}

// Style renders v as an inline CSS declaration list.
func (v VisualState) Style() string {
	var b strings.Builder
	b.WriteString("opacity:")
	b.WriteString(num(v.Opacity))
	b.WriteString(";transform:translateY(")
	b.WriteString(num(v.OffsetY))
	b.WriteString("px)")
	if v.Duration > 0 {
		fmt.Fprintf(&b, ";transition:opacity %s %s %s,transform %s %s %s",
			ms(v.Duration), v.Easing, ms(v.Delay),
			ms(v.Duration), v.Easing, ms(v.Delay))
	}
	return b.String()
}

func ms(d time.Duration) string {
	return strconv.FormatInt(d.Milliseconds(), 10) + "ms"
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
