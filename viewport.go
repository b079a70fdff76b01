package mandel

import (
	"fmt"
	"math"
)

// Viewport is the rectangle of the complex plane currently mapped onto the
// output pixel grid. It is an immutable value: Zoom and Pan return a new
// Viewport, so a shell can keep a history of views if it wants to.
type Viewport struct {
	Center    complex128 // midpoint of the view in the plane
	HalfWidth float64    // half extent along the real axis, > 0
	PixelW    int        // grid width in pixels, > 0
	PixelH    int        // grid height in pixels, > 0
}

// DefaultViewport is the whole-set view shown at startup:
// x in [-2.0, 0.5], y in [-1.25, 1.25].
func DefaultViewport(pixelW, pixelH int) Viewport {
	return Viewport{
		Center:    complex(-0.75, 0),
		HalfWidth: 1.25,
		PixelW:    pixelW,
		PixelH:    pixelH,
	}
}

// HalfHeight derives the vertical half extent from HalfWidth, keeping the
// plane rectangle in the pixel grid's aspect ratio.
func (v Viewport) HalfHeight() float64 {
	return v.HalfWidth * float64(v.PixelH) / float64(v.PixelW)
}

func (v Viewport) Validate() error {
	if v.PixelW <= 0 || v.PixelH <= 0 {
		return fmt.Errorf("%w: resolution %dx%d", ErrInvalidArgument, v.PixelW, v.PixelH)
	}
	// NaN fails the > 0 comparison as well
	if !(v.HalfWidth > 0) || math.IsInf(v.HalfWidth, 0) {
		return fmt.Errorf("%w: half width %v", ErrInvalidArgument, v.HalfWidth)
	}
	if !isFinite(real(v.Center)) || !isFinite(imag(v.Center)) {
		return fmt.Errorf("%w: center %v", ErrInvalidArgument, v.Center)
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// PixelToPoint maps pixel (px, py), 0-indexed from the top-left corner, to
// its point in the complex plane. Image rows grow downward while the
// imaginary axis grows upward, so the vertical mapping is inverted.
func (v Viewport) PixelToPoint(px, py int) (complex128, error) {
	if err := v.Validate(); err != nil {
		return 0, err
	}
	if px < 0 || px >= v.PixelW || py < 0 || py >= v.PixelH {
		return 0, fmt.Errorf("%w: pixel (%d, %d) outside %dx%d grid",
			ErrOutOfRange, px, py, v.PixelW, v.PixelH)
	}
	return v.pointAt(float64(px), float64(py)), nil
}

// pointAt is PixelToPoint without validation, on fractional pixel
// coordinates. The render loop calls it per pixel.
func (v Viewport) pointAt(px, py float64) complex128 {
	hh := v.HalfHeight()
	re := real(v.Center) - v.HalfWidth + 2*v.HalfWidth*px/float64(v.PixelW)
	im := imag(v.Center) + hh - 2*hh*py/float64(v.PixelH)
	return complex(re, im)
}

// PointToPixel inverts the linear map of PixelToPoint. It returns
// fractional pixel coordinates and does not clamp: points outside the view
// land outside [0, PixelW) x [0, PixelH).
func (v Viewport) PointToPixel(c complex128) (px, py float64) {
	hh := v.HalfHeight()
	px = (real(c) - real(v.Center) + v.HalfWidth) * float64(v.PixelW) / (2 * v.HalfWidth)
	py = (imag(v.Center) + hh - imag(c)) * float64(v.PixelH) / (2 * hh)
	return px, py
}

// Zoom returns a viewport whose half width is divided by factor (factor > 1
// zooms in, factor < 1 zooms out) with the center adjusted so the plane
// point under the focus pixel stays under that same pixel. Resolution is
// unchanged.
func (v Viewport) Zoom(factor float64, focusPx, focusPy int) (Viewport, error) {
	if err := v.Validate(); err != nil {
		return Viewport{}, err
	}
	if !(factor > 0) || math.IsInf(factor, 0) {
		return Viewport{}, fmt.Errorf("%w: zoom factor %v", ErrInvalidArgument, factor)
	}
	if focusPx < 0 || focusPx >= v.PixelW || focusPy < 0 || focusPy >= v.PixelH {
		return Viewport{}, fmt.Errorf("%w: focus pixel (%d, %d) outside %dx%d grid",
			ErrOutOfRange, focusPx, focusPy, v.PixelW, v.PixelH)
	}

	p := v.pointAt(float64(focusPx), float64(focusPy))
	z := v
	z.HalfWidth = v.HalfWidth / factor

	// Solve pointAt(focus) == p for the new center.
	fx := float64(focusPx) / float64(v.PixelW)
	fy := float64(focusPy) / float64(v.PixelH)
	re := real(p) - z.HalfWidth*(2*fx-1)
	im := imag(p) - z.HalfHeight()*(1-2*fy)
	z.Center = complex(re, im)
	return z, nil
}

// Pan translates the center by the plane displacement of (dx, dy) pixels at
// the current scale. Half width and resolution are unchanged.
func (v Viewport) Pan(dx, dy int) Viewport {
	hh := v.HalfHeight()
	re := real(v.Center) + 2*v.HalfWidth*float64(dx)/float64(v.PixelW)
	im := imag(v.Center) - 2*hh*float64(dy)/float64(v.PixelH)
	v.Center = complex(re, im)
	return v
}

// Region returns the plane rectangle covered by the viewport.
func (v Viewport) Region() Region {
	hh := v.HalfHeight()
	return Region{
		Xmin: real(v.Center) - v.HalfWidth,
		Xmax: real(v.Center) + v.HalfWidth,
		Ymin: imag(v.Center) - hh,
		Ymax: imag(v.Center) + hh,
	}
}

// ViewportForRegion centers a viewport on r. The region's width wins when
// its aspect ratio disagrees with the pixel grid's.
func ViewportForRegion(r Region, pixelW, pixelH int) Viewport {
	return Viewport{
		Center:    complex((r.Xmin+r.Xmax)/2, (r.Ymin+r.Ymax)/2),
		HalfWidth: (r.Xmax - r.Xmin) / 2,
		PixelW:    pixelW,
		PixelH:    pixelH,
	}
}
