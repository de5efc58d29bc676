package reveal

import (
	"sort"
	"sync"
)

// Margin grows (positive) or shrinks (negative) the viewport on every edge
// before intersection is tested, in CSS pixels.
type Margin float64

// DefaultMargin makes a section count as in view only once it is 60px past
// the viewport edge.
const DefaultMargin Margin = -60

// Rect is a box in CSS pixels.
type Rect struct {
	Top, Left, Bottom, Right float64
}

// Offset returns r moved up by dy.
func (r Rect) Offset(dy float64) Rect {
	r.Top -= dy
	r.Bottom -= dy
	return r
}

// Viewport is the size of the visible area.
type Viewport struct {
	Width, Height float64
}

// Intersects reports whether any part of r, given in viewport coordinates,
// lies inside the viewport adjusted by m. Boxes that only touch an edge do
// not count.
func Intersects(r Rect, vp Viewport, m Margin) bool {
	top, left := -float64(m), -float64(m)
	bottom, right := vp.Height+float64(m), vp.Width+float64(m)
	if bottom <= top || right <= left {
		return false
	}
	return r.Bottom > top && r.Top < bottom && r.Right > left && r.Left < right
}

// Field is an in-process visibility engine. Regions are placed in document
// coordinates; Scroll and Resize play the role of the browser's scroll and
// resize events and notify every subscribed region that now intersects the
// viewport.
type Field struct {
	mu       sync.Mutex
	viewport Viewport
	margin   Margin
	scrollY  float64
	nextID   int
	subs     map[int]subscription
}

type subscription struct {
	rect    Rect
	onEnter func()
}

// NewField returns a Field scrolled to the top of the document.
func NewField(vp Viewport, m Margin) *Field {
	return &Field{
		viewport: vp,
		margin:   m,
		subs:     make(map[int]subscription),
	}
}

// Region returns an Observer for the box r in document coordinates.
// Subscribing checks the region right away, like IntersectionObserver's
// initial callback.
func (f *Field) Region(r Rect) Observer {
	return ObserverFunc(func(onEnter func()) func() {
		f.mu.Lock()
		id := f.nextID
		f.nextID++
		f.subs[id] = subscription{rect: r, onEnter: onEnter}
		hit := Intersects(r.Offset(f.scrollY), f.viewport, f.margin)
		f.mu.Unlock()

		if hit {
			onEnter()
		}
		return func() {
			f.mu.Lock()
			delete(f.subs, id)
			f.mu.Unlock()
		}
	})
}

// Scroll moves the viewport so its top edge sits at document offset y.
func (f *Field) Scroll(y float64) {
	f.mu.Lock()
	f.scrollY = y
	f.mu.Unlock()
	f.dispatch()
}

// Resize changes the viewport size.
func (f *Field) Resize(vp Viewport) {
	f.mu.Lock()
	f.viewport = vp
	f.mu.Unlock()
	f.dispatch()
}

// ScrollY returns the current scroll offset.
func (f *Field) ScrollY() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.scrollY
}

// Live returns the number of active subscriptions.
func (f *Field) Live() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}

// dispatch calls onEnter outside the lock so callbacks may unsubscribe.
// Regions are notified in subscription order.
func (f *Field) dispatch() {
	f.mu.Lock()
	var ids []int
	for id, s := range f.subs {
		if Intersects(s.rect.Offset(f.scrollY), f.viewport, f.margin) {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	hits := make([]func(), 0, len(ids))
	for _, id := range ids {
		hits = append(hits, f.subs[id].onEnter)
	}
	f.mu.Unlock()

	for _, fn := range hits {
		fn()
	}
}

// Stack lays out boxes of the given heights top to bottom at full width,
// starting at document offset 0.
func Stack(width float64, heights ...float64) []Rect {
	rects := make([]Rect, len(heights))
	y := 0.0
	for i, h := range heights {
		rects[i] = Rect{Top: y, Left: 0, Bottom: y + h, Right: width}
		y += h
	}
	return rects
}
