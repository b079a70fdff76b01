package mandel

import (
	"fmt"
	"image"
)

// SplitTiles cuts r into tiles of at most tw x th pixels. Tiles on the
// right and bottom edges shrink when r does not divide evenly. The tiles
// cover r exactly and do not overlap.
func SplitTiles(r image.Rectangle, tw, th int) ([]image.Rectangle, error) {
	if tw <= 0 || th <= 0 {
		return nil, fmt.Errorf("%w: tile size %dx%d", ErrInvalidArgument, tw, th)
	}
	var tiles []image.Rectangle
	for y := r.Min.Y; y < r.Max.Y; y += th {
		yMax := min(y+th, r.Max.Y)
		for x := r.Min.X; x < r.Max.X; x += tw {
			tiles = append(tiles, image.Rect(x, y, min(x+tw, r.Max.X), yMax))
		}
	}
	return tiles, nil
}
