package ogimage

import (
	"bytes"
	"image/color"
	"image/png"
	"reflect"
	"testing"
)

func TestEncodeProducesFullSizePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, Card{Title: "Maulika Rongala", Subtitle: "AI & ML developer", Footer: "example.com"}); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != Width || b.Dy() != Height {
		t.Fatalf("bounds = %v, want %dx%d", b, Width, Height)
	}
}

func TestDrawColors(t *testing.T) {
	img := Draw(Card{Title: "x"})
	if got := img.RGBAAt(0, 0); got != Background {
		t.Errorf("corner = %v, want background %v", got, Background)
	}
	// Centre of the accent bar, scaled up from (pad+12, pad+1).
	if got := img.RGBAAt((pad+12)*scale+2, (pad+1)*scale+2); got != Accent {
		t.Errorf("accent bar = %v, want %v", got, Accent)
	}
}

func TestDrawTitleInksPixels(t *testing.T) {
	blank := Draw(Card{})
	titled := Draw(Card{Title: "Maulika"})
	if bytes.Equal(blank.Pix, titled.Pix) {
		t.Fatal("title did not change the image")
	}
	found := false
	for i := 0; i+3 < len(titled.Pix) && !found; i += 4 {
		c := color.RGBA{R: titled.Pix[i], G: titled.Pix[i+1], B: titled.Pix[i+2], A: titled.Pix[i+3]}
		found = c == Foreground
	}
	if !found {
		t.Error("no foreground pixels drawn")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want []string
	}{
		{"", 10, nil},
		{"an AI & ML developer.", 10, []string{"an AI & ML", "developer."}},
		{"one two three", 20, []string{"one two three"}},
		{"supercalifragilistic", 5, []string{"super"}},
	}
	for _, tt := range tests {
		if got := wrap(tt.in, tt.n); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("wrap(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
