package reveal

import (
	"sync"
	"testing"
)

func TestIntersectsShrunkenViewport(t *testing.T) {
	vp := Viewport{Width: 1000, Height: 800}

	tests := []struct {
		name string
		r    Rect
		m    Margin
		want bool
	}{
		{"fully inside", Rect{Top: 100, Bottom: 300, Right: 1000}, DefaultMargin, true},
		{"below viewport", Rect{Top: 900, Bottom: 1200, Right: 1000}, DefaultMargin, false},
		{"inside the 60px band at the bottom", Rect{Top: 750, Bottom: 1200, Right: 1000}, DefaultMargin, false},
		{"just past the band", Rect{Top: 739, Bottom: 1200, Right: 1000}, DefaultMargin, true},
		{"touching the shrunken edge", Rect{Top: 740, Bottom: 1200, Right: 1000}, DefaultMargin, false},
		{"no margin sees the band", Rect{Top: 750, Bottom: 1200, Right: 1000}, 0, true},
		{"positive margin sees below", Rect{Top: 850, Bottom: 1200, Right: 1000}, 100, true},
		{"above viewport", Rect{Top: -400, Bottom: -10, Right: 1000}, DefaultMargin, false},
		{"tall region spans viewport", Rect{Top: -2000, Bottom: 2000, Right: 1000}, DefaultMargin, true},
	}
	for _, tt := range tests {
		if got := Intersects(tt.r, vp, tt.m); got != tt.want {
			t.Errorf("%s: Intersects = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIntersectsViewportSmallerThanMargin(t *testing.T) {
	if Intersects(Rect{Top: 0, Bottom: 100, Right: 100}, Viewport{Width: 100, Height: 100}, DefaultMargin) {
		t.Error("a viewport shrunk to nothing should never intersect")
	}
}

func TestControllerStartsFalse(t *testing.T) {
	f := NewField(Viewport{Width: 1000, Height: 800}, DefaultMargin)
	c := New(f.Region(Rect{Top: 2000, Bottom: 2600, Right: 1000}), nil)
	if c.InView() {
		t.Fatal("controller should start out of view")
	}
	select {
	case <-c.Revealed():
		t.Fatal("Revealed should not be closed yet")
	default:
	}
}

func TestControllerIsMonotonic(t *testing.T) {
	f := NewField(Viewport{Width: 1000, Height: 800}, DefaultMargin)
	c := New(f.Region(Rect{Top: 2000, Bottom: 2600, Right: 1000}), nil)

	history := []bool{c.InView()}
	for _, y := range []float64{0, 500, 1200, 2200, 0, 5000, 0} {
		f.Scroll(y)
		history = append(history, c.InView())
	}

	want := []bool{false, false, false, false, true, true, true, true}
	for i := range want {
		if history[i] != want[i] {
			t.Fatalf("InView history = %v, want %v", history, want)
		}
	}
}

func TestControllerUnsubscribesAfterFirstEntry(t *testing.T) {
	f := NewField(Viewport{Width: 1000, Height: 800}, DefaultMargin)
	calls := 0
	New(f.Region(Rect{Top: 1000, Bottom: 1400, Right: 1000}), func() { calls++ })

	if f.Live() != 1 {
		t.Fatalf("Live = %d, want 1", f.Live())
	}
	f.Scroll(600)
	f.Scroll(0)
	f.Scroll(600)

	if calls != 1 {
		t.Errorf("onReveal ran %d times, want 1", calls)
	}
	if f.Live() != 0 {
		t.Errorf("Live = %d after reveal, want 0", f.Live())
	}
}

func TestControllerRevealsOnSubscribeWhenVisible(t *testing.T) {
	f := NewField(Viewport{Width: 1000, Height: 800}, DefaultMargin)
	c := New(f.Region(Rect{Top: 100, Bottom: 500, Right: 1000}), nil)
	if !c.InView() {
		t.Fatal("region visible at subscribe time should reveal")
	}
	if f.Live() != 0 {
		t.Errorf("Live = %d, want 0", f.Live())
	}
}

func TestControllerRevealsOnResize(t *testing.T) {
	f := NewField(Viewport{Width: 1000, Height: 600}, DefaultMargin)
	c := New(f.Region(Rect{Top: 700, Bottom: 900, Right: 1000}), nil)
	if c.InView() {
		t.Fatal("should be out of view before resize")
	}
	f.Resize(Viewport{Width: 1000, Height: 1200})
	if !c.InView() {
		t.Fatal("should be in view after resize")
	}
}

func TestControllerNeverScrolledStaysFalse(t *testing.T) {
	f := NewField(Viewport{Width: 1000, Height: 800}, DefaultMargin)
	c := New(f.Region(Rect{Top: 10000, Bottom: 10400, Right: 1000}), nil)
	for y := 0.0; y < 5000; y += 250 {
		f.Scroll(y)
	}
	if c.InView() {
		t.Fatal("region never reached should stay out of view")
	}
}

func TestControllerCloseStopsObserving(t *testing.T) {
	f := NewField(Viewport{Width: 1000, Height: 800}, DefaultMargin)
	c := New(f.Region(Rect{Top: 1000, Bottom: 1400, Right: 1000}), nil)
	c.Close()
	c.Close()
	if f.Live() != 0 {
		t.Fatalf("Live = %d after Close, want 0", f.Live())
	}
	f.Scroll(800)
	if c.InView() {
		t.Error("closed controller should not reveal")
	}
}

func TestSectionsRevealIndependently(t *testing.T) {
	f := NewField(Viewport{Width: 1000, Height: 800}, DefaultMargin)
	rects := Stack(1000, 900, 700, 700, 700)

	var mu sync.Mutex
	var order []int
	ctrls := make([]*Controller, len(rects))
	for i, r := range rects {
		i := i
		ctrls[i] = New(f.Region(r), func() {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
		})
	}

	// Jump straight to the bottom: the sections in between are skipped.
	f.Scroll(2300)
	if ctrls[1].InView() {
		t.Error("section 1 was never in view")
	}
	if !ctrls[3].InView() {
		t.Error("section 3 should be in view")
	}
	f.Scroll(900)
	if !ctrls[1].InView() {
		t.Error("section 1 should reveal after scrolling back")
	}
	if !ctrls[2].InView() {
		t.Error("section 2 should reveal after scrolling back")
	}
	if len(order) != 4 {
		t.Fatalf("revealed %v, want all four", order)
	}
	if order[0] != 0 {
		t.Errorf("first section should reveal on subscribe, order = %v", order)
	}
}

func TestStack(t *testing.T) {
	rects := Stack(800, 100, 200)
	if rects[0] != (Rect{Top: 0, Bottom: 100, Right: 800}) {
		t.Errorf("rects[0] = %+v", rects[0])
	}
	if rects[1] != (Rect{Top: 100, Bottom: 300, Right: 800}) {
		t.Errorf("rects[1] = %+v", rects[1])
	}
}
