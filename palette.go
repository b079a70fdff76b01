package mandel

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

// Palette maps an escape count to a pixel color. Implementations must map
// the in-set sentinel (count >= maxIter) to a stable interior color.
type Palette interface {
	Color(count, maxIter int) color.RGBA
}

// PaletteByName resolves the palette names accepted on the command line.
func PaletteByName(name string) (Palette, error) {
	switch name {
	case "heat":
		return Heat{}, nil
	case "smooth":
		return Smooth{}, nil
	case "gray":
		return Grayscale{}, nil
	}
	return nil, fmt.Errorf("%w: unknown palette %q", ErrInvalidArgument, name)
}

// Heat approximates the "hot" colormap: black through red and yellow to
// white, with a power-law norm so low counts keep contrast as the cap
// grows. Interior points are black.
type Heat struct {
	// Gamma is the power-norm exponent; zero means the default 0.3.
	Gamma float64
}

func (h Heat) Color(count, maxIter int) color.RGBA {
	if count >= maxIter {
		return color.RGBA{A: 0xff}
	}
	gamma := h.Gamma
	if gamma == 0 {
		gamma = 0.3
	}
	t := math.Pow(float64(count)/float64(maxIter), gamma)
	var r, g, b float64
	switch {
	case t < 1.0/3:
		r = 3 * t
	case t < 2.0/3:
		r = 1
		g = 3*t - 1
	default:
		r = 1
		g = 1
		b = 3*t - 2
	}
	return color.RGBA{
		R: uint8(math.Round(r * 255)),
		G: uint8(math.Round(g * 255)),
		B: uint8(math.Round(b * 255)),
		A: 0xff,
	}
}

// Smooth cycles a fully saturated HSV wheel with the count. Interior
// points are black.
type Smooth struct {
	// Density is the hue advance per iteration; zero means the default 0.02.
	Density float64
}

func (s Smooth) Color(count, maxIter int) color.RGBA {
	if count >= maxIter {
		return color.RGBA{A: 0xff}
	}
	d := s.Density
	if d == 0 {
		d = 0.02
	}
	return hsv(math.Mod(float64(count)*d, 1), 1, 1)
}

// Grayscale maps the count linearly to brightness, brightest just outside
// the set boundary. Interior points are black.
type Grayscale struct{}

func (Grayscale) Color(count, maxIter int) color.RGBA {
	if count >= maxIter {
		return color.RGBA{A: 0xff}
	}
	v := uint8(255 * float64(count) / float64(maxIter))
	return color.RGBA{R: v, G: v, B: v, A: 0xff}
}

// Simple HSV → RGB
func hsv(h, s, v float64) color.RGBA {
	h = math.Mod(h, 1)
	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch i % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}
	return color.RGBA{uint8(r * 255), uint8(g * 255), uint8(b * 255), 255}
}

// Image colorizes the grid into a freshly allocated image.
func (g *IterationGrid) Image(p Palette, maxIter int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.W, g.H))
	g.Draw(img, image.Point{}, p, maxIter)
	return img
}

// Draw colorizes the grid into dst with the grid's (0, 0) placed at offset.
// Pixels falling outside dst's bounds are dropped.
func (g *IterationGrid) Draw(dst *image.RGBA, offset image.Point, p Palette, maxIter int) {
	for py := 0; py < g.H; py++ {
		for px := 0; px < g.W; px++ {
			dst.SetRGBA(offset.X+px, offset.Y+py, p.Color(int(g.Counts[py*g.W+px]), maxIter))
		}
	}
}
