//go:build js && wasm

// Command folio-wasm is the browser client. It plays the fade-in of each
// reveal section the first time the section scrolls into view and drives
// the mobile menu.
package main

import (
	"strconv"
	"sync"
	"syscall/js"

	"github.com/rmaulika/folio/motion"
	"github.com/rmaulika/folio/nav"
	"github.com/rmaulika/folio/reveal"
)

// controllers keeps every section's controller alive for the page lifetime.
var controllers []*reveal.Controller

func main() {
	doc := js.Global().Get("document")
	bindReveal(doc)
	bindMenu(doc)
	doc.Get("documentElement").Get("classList").Call("add", "wasm-ready")
	select {}
}

func bindReveal(doc js.Value) {
	sections := doc.Call("querySelectorAll", "[data-reveal]")
	for i := 0; i < sections.Length(); i++ {
		section := sections.Index(i)
		margin := reveal.DefaultMargin
		if raw := section.Call("getAttribute", "data-reveal-margin"); !raw.IsNull() {
			if m, err := strconv.ParseFloat(raw.String(), 64); err == nil {
				margin = reveal.Margin(m)
			}
		}
		controllers = append(controllers, reveal.New(observe(section, margin), func() {
			show(section)
		}))
	}
}

// observe backs an Observer with IntersectionObserver. Browsers without it
// report the section as in view right away.
func observe(el js.Value, m reveal.Margin) reveal.Observer {
	ctor := js.Global().Get("IntersectionObserver")
	if ctor.IsUndefined() {
		return reveal.ObserverFunc(func(onEnter func()) func() {
			onEnter()
			return func() {}
		})
	}
	return reveal.ObserverFunc(func(onEnter func()) func() {
		cb := js.FuncOf(func(this js.Value, args []js.Value) any {
			entries := args[0]
			for i := 0; i < entries.Length(); i++ {
				if entries.Index(i).Get("isIntersecting").Bool() {
					onEnter()
					break
				}
			}
			return nil
		})
		opts := js.Global().Get("Object").New()
		opts.Set("rootMargin", strconv.FormatFloat(float64(m), 'f', -1, 64)+"px")
		io := ctor.New(cb, opts)
		io.Call("observe", el)

		var once sync.Once
		return func() {
			once.Do(func() {
				io.Call("disconnect")
				cb.Release()
			})
		}
	})
}

// show moves every fade item of section to its visible state.
func show(section js.Value) {
	section.Call("setAttribute", "data-revealed", "")
	items := section.Call("querySelectorAll", "[data-fade]")
	for i := 0; i < items.Length(); i++ {
		item := items.Index(i)
		ordinal := intAttr(item, "data-ordinal")
		stagger := intAttr(item, "data-stagger")
		item.Call("setAttribute", "style", motion.Resolve(true, ordinal).Staggered(stagger).Style())
	}
}

func intAttr(el js.Value, name string) int {
	raw := el.Call("getAttribute", name)
	if raw.IsNull() {
		return 0
	}
	n, _ := strconv.Atoi(raw.String())
	return n
}

func bindMenu(doc js.Value) {
	toggle := doc.Call("querySelector", "[data-menu-toggle]")
	panel := doc.Call("querySelector", "[data-menu-panel]")
	if toggle.IsNull() || panel.IsNull() {
		return
	}

	m := nav.NewMachine(func(s nav.State) { applyMenu(toggle, panel, s) })
	// The server may have rendered the menu open.
	if nav.ParseState(toggle.Call("getAttribute", "data-state").String()) == nav.Open {
		m.Fire(nav.TogglePressed)
	}

	toggle.Call("addEventListener", "click", js.FuncOf(func(this js.Value, args []js.Value) any {
		args[0].Call("preventDefault")
		m.Fire(nav.TogglePressed)
		return nil
	}))

	links := doc.Call("querySelectorAll", "[data-menu-link]")
	for i := 0; i < links.Length(); i++ {
		link := links.Index(i)
		target := link.Call("getAttribute", "data-menu-link").String()
		link.Call("addEventListener", "click", js.FuncOf(func(this js.Value, args []js.Value) any {
			args[0].Call("preventDefault")
			m.Fire(nav.LinkSelected)
			js.Global().Get("location").Set("hash", target)
			return nil
		}))
	}
}

func applyMenu(toggle, panel js.Value, s nav.State) {
	state := s.String()
	toggle.Call("setAttribute", "data-state", state)
	panel.Call("setAttribute", "data-state", state)
	if s == nav.Open {
		toggle.Call("setAttribute", "aria-expanded", "true")
		panel.Call("removeAttribute", "aria-hidden")
		panel.Call("removeAttribute", "inert")
		return
	}
	toggle.Call("setAttribute", "aria-expanded", "false")
	panel.Call("setAttribute", "aria-hidden", "true")
	panel.Call("setAttribute", "inert", "")
}
