package mandel

import (
	"context"
	"fmt"
	"image"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Defaults taken from the reference settings: a 128 iteration cap and the
// escape radius 2, which is mathematically sufficient for the quadratic map.
const (
	DefaultMaxIter      = 128
	DefaultEscapeRadius = 2.0
)

// RenderRequest is the pure input of one render: a viewport plus the
// iteration cap and the divergence threshold. It has no identity beyond its
// values.
type RenderRequest struct {
	Viewport     Viewport
	MaxIter      int
	EscapeRadius float64
}

func (r RenderRequest) Validate() error {
	if err := r.Viewport.Validate(); err != nil {
		return err
	}
	if r.MaxIter <= 0 {
		return fmt.Errorf("%w: max iterations %d", ErrInvalidArgument, r.MaxIter)
	}
	if !(r.EscapeRadius > 0) {
		return fmt.Errorf("%w: escape radius %v", ErrInvalidArgument, r.EscapeRadius)
	}
	return nil
}

// EscapeCount iterates z = z*z + c from z = 0 and returns the step at which
// |z| first exceeded escapeRadius, or maxIter if it never did within the
// cap. maxIter is therefore the "in the set" sentinel value.
func EscapeCount(c complex128, maxIter int, escapeRadius float64) int {
	rr := escapeRadius * escapeRadius
	cr, ci := real(c), imag(c)
	var zr, zi float64
	for n := 0; n < maxIter; n++ {
		if zr*zr+zi*zi > rr {
			return n
		}
		zr, zi = zr*zr-zi*zi+cr, 2*zr*zi+ci
	}
	return maxIter
}

// Render computes the escape count of every pixel of the request's
// viewport. Rows are mutually independent, so they are fanned out across
// one worker per CPU. Cancellation is observed between rows and fails the
// whole render; there is no partial grid.
func Render(ctx context.Context, req RenderRequest) (*IterationGrid, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	grid := newIterationGrid(req.Viewport.PixelW, req.Viewport.PixelH)

	rows := make(chan int)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(rows)
		for py := 0; py < req.Viewport.PixelH; py++ {
			select {
			case rows <- py:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	for w := 0; w < runtime.NumCPU(); w++ {
		g.Go(func() error {
			for py := range rows {
				renderRow(grid, req, py)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return grid, nil
}

func renderRow(grid *IterationGrid, req RenderRequest, py int) {
	v := req.Viewport
	row := grid.Counts[py*grid.W : (py+1)*grid.W]
	for px := 0; px < v.PixelW; px++ {
		c := v.pointAt(float64(px), float64(py))
		row[px] = uint32(EscapeCount(c, req.MaxIter, req.EscapeRadius))
	}
}

// RenderTile renders only the pixels inside tile, which must lie within the
// viewport's grid. The returned grid is tile-sized; its (0, 0) corresponds
// to tile.Min. Tiles are the scheduling unit of the progressive shells.
func RenderTile(ctx context.Context, req RenderRequest, tile image.Rectangle) (*IterationGrid, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	bounds := image.Rect(0, 0, req.Viewport.PixelW, req.Viewport.PixelH)
	if !tile.In(bounds) {
		return nil, fmt.Errorf("%w: tile %v outside grid %v", ErrOutOfRange, tile, bounds)
	}
	grid := newIterationGrid(tile.Dx(), tile.Dy())
	for py := tile.Min.Y; py < tile.Max.Y; py++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		row := grid.Counts[(py-tile.Min.Y)*grid.W : (py-tile.Min.Y+1)*grid.W]
		for px := tile.Min.X; px < tile.Max.X; px++ {
			c := req.Viewport.pointAt(float64(px), float64(py))
			row[px-tile.Min.X] = uint32(EscapeCount(c, req.MaxIter, req.EscapeRadius))
		}
	}
	return grid, nil
}
