package mandel

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestPalettesInteriorIsBlack(t *testing.T) {
	black := color.RGBA{A: 0xff}
	for _, p := range []Palette{Heat{}, Smooth{}, Grayscale{}} {
		if got := p.Color(100, 100); got != black {
			t.Errorf("%T interior color = %v; want %v", p, got, black)
		}
	}
}

func TestGrayscaleMonotonic(t *testing.T) {
	prev := -1
	for count := 0; count < 100; count++ {
		c := Grayscale{}.Color(count, 100)
		if c.R != c.G || c.G != c.B {
			t.Fatalf("count %d: not gray: %v", count, c)
		}
		if int(c.R) < prev {
			t.Fatalf("count %d: brightness decreased: %d -> %d", count, prev, c.R)
		}
		prev = int(c.R)
	}
}

func TestHeatRampEndpoints(t *testing.T) {
	if got := (Heat{}).Color(0, 100); got != (color.RGBA{A: 0xff}) {
		t.Errorf("Heat at count 0 = %v; want black", got)
	}
	// Just outside the set the ramp is near white.
	got := Heat{}.Color(99, 100)
	if got.R != 0xff || got.G != 0xff || got.B < 200 {
		t.Errorf("Heat at count 99 = %v; want near white", got)
	}
}

func TestSmoothStartsRed(t *testing.T) {
	if got := (Smooth{}).Color(0, 100); got != (color.RGBA{R: 0xff, A: 0xff}) {
		t.Errorf("Smooth at count 0 = %v; want pure red", got)
	}
}

func TestPaletteByName(t *testing.T) {
	for name, want := range map[string]Palette{
		"heat":   Heat{},
		"smooth": Smooth{},
		"gray":   Grayscale{},
	} {
		got, err := PaletteByName(name)
		if err != nil {
			t.Fatalf("PaletteByName(%q): %v", name, err)
		}
		if got != want {
			t.Errorf("PaletteByName(%q) = %T; want %T", name, got, want)
		}
	}
	if _, err := PaletteByName("neon"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("PaletteByName(neon) err = %v; want ErrInvalidArgument", err)
	}
}

func TestGridImage(t *testing.T) {
	grid := &IterationGrid{W: 2, H: 2, Counts: []uint32{0, 3, 7, 10}}
	img := grid.Image(Grayscale{}, 10)
	if got, want := img.Bounds(), image.Rect(0, 0, 2, 2); got != want {
		t.Fatalf("bounds = %v; want %v", got, want)
	}
	if got := img.RGBAAt(1, 1); got != (color.RGBA{A: 0xff}) {
		t.Errorf("in-set pixel = %v; want black", got)
	}
	if got := img.RGBAAt(1, 0); got == (color.RGBA{A: 0xff}) {
		t.Errorf("escaped pixel is black; want colored")
	}
}

func TestGridDrawOffset(t *testing.T) {
	grid := &IterationGrid{W: 2, H: 1, Counts: []uint32{5, 10}}
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	grid.Draw(dst, image.Pt(1, 2), Grayscale{}, 10)
	if got := dst.RGBAAt(1, 2); got == (color.RGBA{}) {
		t.Errorf("offset pixel not written: %v", got)
	}
	if got := dst.RGBAAt(2, 2); got != (color.RGBA{A: 0xff}) {
		t.Errorf("in-set pixel at offset = %v; want black", got)
	}
	if got := dst.RGBAAt(0, 0); got != (color.RGBA{}) {
		t.Errorf("pixel outside the grid written: %v", got)
	}
}
