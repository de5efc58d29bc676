package motion

import (
	"fmt"
	"strings"
)

// Stylesheet returns the CSS that drives the entrances. Fade items get their
// hidden state inline from the server and their visible state from the
// browser client, so only the shared rules live here.
func Stylesheet() string {
	var b strings.Builder
	hidden := Resolve(false, 0)

	b.WriteString("@keyframes folio-enter{")
	b.WriteString("from{opacity:0;transform:translateY(var(--enter-from))}")
	b.WriteString("to{opacity:1;transform:none}}\n")

	fmt.Fprintf(&b, "[data-enter]{animation:folio-enter var(--enter-duration) %s var(--enter-delay) both}\n", Ease)

	fmt.Fprintf(&b, "[data-fade]{opacity:%s;transform:translateY(%spx);will-change:opacity,transform}\n",
		num(hidden.Opacity), num(hidden.OffsetY))

	b.WriteString("[data-menu-panel]{display:grid;overflow:hidden}\n")
	b.WriteString("[data-menu-panel]>*{min-height:0}\n")
	fmt.Fprintf(&b, "[data-menu-panel][data-state=closed]{%s}\n", Overlay(false).Style())
	fmt.Fprintf(&b, "[data-menu-panel][data-state=open]{%s}\n", Overlay(true).Style())

	b.WriteString("[data-menu-toggle][data-state=closed] .icon-close,")
	b.WriteString("[data-menu-toggle][data-state=open] .icon-open{display:none}\n")

	b.WriteString("@media (prefers-reduced-motion:reduce){")
	b.WriteString("[data-enter]{animation:none}")
	b.WriteString("[data-fade]{opacity:1!important;transform:none!important;transition:none!important}")
	b.WriteString("[data-menu-panel]{transition:none!important}}\n")
	return b.String()
}

// NoScriptStyle is emitted inside <noscript> so content never stays hidden
// when the client cannot run.
const NoScriptStyle = "[data-fade]{opacity:1!important;transform:none!important}"
