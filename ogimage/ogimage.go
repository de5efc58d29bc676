// Package ogimage draws the Open Graph preview card for the portfolio.
//
// The card is laid out on a small canvas with the fixed-size basicfont face
// and scaled up with nearest-neighbour sampling, which keeps the bitmap
// glyphs sharp at 1200x630.
package ogimage

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Output size, as recommended for og:image.
const (
	Width  = 1200
	Height = 630
)

const (
	scale   = 5
	canvasW = Width / scale
	canvasH = Height / scale
	pad     = 12
	advance = 7 // basicfont.Face7x13 is monospaced
	line    = 13
)

var (
	Background = color.RGBA{R: 0x0f, G: 0x0f, B: 0x10, A: 0xff}
	Accent     = color.RGBA{R: 0xc8, G: 0xa4, B: 0x6e, A: 0xff}
	Foreground = color.RGBA{R: 0xed, G: 0xed, B: 0xed, A: 0xff}
	Muted      = color.RGBA{R: 0x8a, G: 0x8a, B: 0x8f, A: 0xff}
)

// Card is the text shown on the preview.
type Card struct {
	Title    string // owner name
	Subtitle string // headline, wrapped to fit
	Footer   string // usually the site host
}

// Draw renders c at full size.
func Draw(c Card) *image.RGBA {
	small := image.NewRGBA(image.Rect(0, 0, canvasW, canvasH))
	draw.Draw(small, small.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	// Accent bar above the title.
	draw.Draw(small, image.Rect(pad, pad, pad+24, pad+3), image.NewUniform(Accent), image.Point{}, draw.Src)

	maxChars := (canvasW - 2*pad) / advance
	y := pad + 3 + 8 + line
	for _, l := range wrap(c.Title, maxChars) {
		text(small, Foreground, pad, y, l)
		y += line
	}
	y += 4
	for _, l := range wrap(c.Subtitle, maxChars) {
		if y > canvasH-pad-line {
			break
		}
		text(small, Muted, pad, y, l)
		y += line
	}
	if c.Footer != "" {
		text(small, Accent, pad, canvasH-pad, truncate(c.Footer, maxChars))
	}

	out := image.NewRGBA(image.Rect(0, 0, Width, Height))
	draw.NearestNeighbor.Scale(out, out.Bounds(), small, small.Bounds(), draw.Src, nil)
	return out
}

// Encode writes c as a PNG.
func Encode(w io.Writer, c Card) error {
	if err := png.Encode(w, Draw(c)); err != nil {
		return fmt.Errorf("ogimage: encode: %w", err)
	}
	return nil
}

func text(dst draw.Image, col color.Color, x, baseline int, s string) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(s)
}

// wrap breaks s into lines of at most n characters on word boundaries.
// Words longer than n are truncated.
func wrap(s string, n int) []string {
	var lines []string
	var cur string
	for _, w := range strings.Fields(s) {
		w = truncate(w, n)
		switch {
		case cur == "":
			cur = w
		case len([]rune(cur))+1+len([]rune(w)) <= n:
			cur += " " + w
		default:
			lines = append(lines, cur)
			cur = w
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
