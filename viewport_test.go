package mandel

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"
)

func TestPixelToPointKnownPoints(t *testing.T) {
	v := Viewport{Center: complex(-0.5, 0), HalfWidth: 1.5, PixelW: 100, PixelH: 100}
	tests := []struct {
		px, py int
		want   complex128
	}{
		{50, 50, complex(-0.5, 0)},
		{0, 50, complex(-2.0, 0)},
		{0, 0, complex(-2.0, 1.5)},
		{50, 0, complex(-0.5, 1.5)},
		{75, 75, complex(0.25, -0.75)},
	}
	for _, tc := range tests {
		got, err := v.PixelToPoint(tc.px, tc.py)
		if err != nil {
			t.Fatalf("PixelToPoint(%d, %d): %v", tc.px, tc.py, err)
		}
		if cmplx.Abs(got-tc.want) > 1e-12 {
			t.Errorf("PixelToPoint(%d, %d) = %v; want %v", tc.px, tc.py, got, tc.want)
		}
	}
}

func TestPixelToPointOutOfRange(t *testing.T) {
	v := Viewport{Center: complex(-0.5, 0), HalfWidth: 1.5, PixelW: 100, PixelH: 100}
	for _, tc := range []struct{ px, py int }{
		{100, 50}, {-1, 50}, {50, 100}, {50, -1},
	} {
		if _, err := v.PixelToPoint(tc.px, tc.py); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("PixelToPoint(%d, %d) err = %v; want ErrOutOfRange", tc.px, tc.py, err)
		}
	}
}

func TestPointToPixelRoundTrip(t *testing.T) {
	v := Viewport{Center: complex(-0.7435, 0.1314), HalfWidth: 0.0008, PixelW: 640, PixelH: 480}
	for _, p := range []struct{ px, py int }{
		{0, 0}, {639, 479}, {320, 240}, {17, 401},
	} {
		c, err := v.PixelToPoint(p.px, p.py)
		if err != nil {
			t.Fatalf("PixelToPoint(%d, %d): %v", p.px, p.py, err)
		}
		gx, gy := v.PointToPixel(c)
		if math.Abs(gx-float64(p.px)) > 1e-6 || math.Abs(gy-float64(p.py)) > 1e-6 {
			t.Errorf("PointToPixel(PixelToPoint(%d, %d)) = (%v, %v)", p.px, p.py, gx, gy)
		}
	}
}

func TestZoomAnchorsFocusPixel(t *testing.T) {
	v := DefaultViewport(800, 600)
	before, err := v.PixelToPoint(200, 450)
	if err != nil {
		t.Fatal(err)
	}
	z, err := v.Zoom(2, 200, 450)
	if err != nil {
		t.Fatalf("Zoom: %v", err)
	}
	if got, want := z.HalfWidth, v.HalfWidth/2; got != want {
		t.Errorf("HalfWidth = %v; want %v", got, want)
	}
	if z.PixelW != v.PixelW || z.PixelH != v.PixelH {
		t.Errorf("resolution changed: %dx%d", z.PixelW, z.PixelH)
	}
	after, err := z.PixelToPoint(200, 450)
	if err != nil {
		t.Fatal(err)
	}
	if cmplx.Abs(after-before) > 1e-12 {
		t.Errorf("focus point moved: %v -> %v", before, after)
	}
}

func TestZoomOutInvertsZoomIn(t *testing.T) {
	v := DefaultViewport(640, 480)
	in, err := v.Zoom(1/0.7, 100, 100)
	if err != nil {
		t.Fatal(err)
	}
	out, err := in.Zoom(0.7, 100, 100)
	if err != nil {
		t.Fatal(err)
	}
	if cmplx.Abs(out.Center-v.Center) > 1e-12 || math.Abs(out.HalfWidth-v.HalfWidth) > 1e-12 {
		t.Errorf("zoom out did not invert zoom in: %+v vs %+v", out, v)
	}
}

func TestZoomInvalidInputs(t *testing.T) {
	v := DefaultViewport(100, 100)
	for _, factor := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := v.Zoom(factor, 50, 50); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Zoom(%v, 50, 50) err = %v; want ErrInvalidArgument", factor, err)
		}
	}
	if _, err := v.Zoom(2, 100, 50); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Zoom focus outside grid err = %v; want ErrOutOfRange", err)
	}
}

func TestPan(t *testing.T) {
	v := DefaultViewport(100, 50) // half height 0.625
	p := v.Pan(10, -5)
	want := complex(-0.75+0.25, 0.125)
	if cmplx.Abs(p.Center-want) > 1e-12 {
		t.Errorf("Pan(10, -5) center = %v; want %v", p.Center, want)
	}
	if p.HalfWidth != v.HalfWidth || p.PixelW != v.PixelW || p.PixelH != v.PixelH {
		t.Errorf("Pan changed scale or resolution: %+v", p)
	}
	back := p.Pan(-10, 5)
	if cmplx.Abs(back.Center-v.Center) > 1e-12 {
		t.Errorf("Pan(-10, 5) did not undo Pan(10, -5): %v", back.Center)
	}
}

func TestViewportValidate(t *testing.T) {
	tests := []struct {
		name string
		v    Viewport
		ok   bool
	}{
		{"default", DefaultViewport(100, 100), true},
		{"zero half width", Viewport{Center: 0, HalfWidth: 0, PixelW: 10, PixelH: 10}, false},
		{"negative half width", Viewport{Center: 0, HalfWidth: -1, PixelW: 10, PixelH: 10}, false},
		{"nan half width", Viewport{Center: 0, HalfWidth: math.NaN(), PixelW: 10, PixelH: 10}, false},
		{"zero width", Viewport{Center: 0, HalfWidth: 1, PixelW: 0, PixelH: 10}, false},
		{"negative height", Viewport{Center: 0, HalfWidth: 1, PixelW: 10, PixelH: -1}, false},
		{"inf center", Viewport{Center: complex(math.Inf(1), 0), HalfWidth: 1, PixelW: 10, PixelH: 10}, false},
	}
	for _, tc := range tests {
		err := tc.v.Validate()
		if tc.ok && err != nil {
			t.Errorf("%s: Validate() = %v; want nil", tc.name, err)
		}
		if !tc.ok && !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%s: Validate() = %v; want ErrInvalidArgument", tc.name, err)
		}
	}
}

func TestRegionRoundTrip(t *testing.T) {
	v := ViewportForRegion(SeahorseValley, 200, 200)
	r := v.Region()
	for _, d := range []struct {
		name      string
		got, want float64
	}{
		{"Xmin", r.Xmin, SeahorseValley.Xmin},
		{"Xmax", r.Xmax, SeahorseValley.Xmax},
		{"Ymin", r.Ymin, SeahorseValley.Ymin},
		{"Ymax", r.Ymax, SeahorseValley.Ymax},
	} {
		if math.Abs(d.got-d.want) > 1e-12 {
			t.Errorf("%s = %v; want %v", d.name, d.got, d.want)
		}
	}
}

func TestLandmarkByName(t *testing.T) {
	r, ok := LandmarkByName("seahorse-valley")
	if !ok || r != SeahorseValley {
		t.Errorf("LandmarkByName(seahorse-valley) = %+v, %v", r, ok)
	}
	if _, ok := LandmarkByName("atlantis"); ok {
		t.Error("LandmarkByName(atlantis) unexpectedly found")
	}
}
