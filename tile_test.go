package mandel

import (
	"errors"
	"image"
	"testing"
)

func TestSplitTilesCoversExactlyOnce(t *testing.T) {
	r := image.Rect(0, 0, 100, 57)
	tiles, err := SplitTiles(r, 16, 16)
	if err != nil {
		t.Fatalf("SplitTiles: %v", err)
	}
	seen := make([]int, r.Dx()*r.Dy())
	for _, tile := range tiles {
		if !tile.In(r) {
			t.Fatalf("tile %v outside %v", tile, r)
		}
		for y := tile.Min.Y; y < tile.Max.Y; y++ {
			for x := tile.Min.X; x < tile.Max.X; x++ {
				seen[y*r.Dx()+x]++
			}
		}
	}
	for i, n := range seen {
		if n != 1 {
			t.Fatalf("pixel (%d, %d) covered %d times", i%r.Dx(), i/r.Dx(), n)
		}
	}
}

func TestSplitTilesEdgeTilesShrink(t *testing.T) {
	tiles, err := SplitTiles(image.Rect(0, 0, 100, 57), 16, 16)
	if err != nil {
		t.Fatalf("SplitTiles: %v", err)
	}
	// 7 columns (last 4 wide) x 4 rows (last 9 tall)
	if got, want := len(tiles), 7*4; got != want {
		t.Fatalf("len(tiles) = %d; want %d", got, want)
	}
	last := tiles[len(tiles)-1]
	if last.Dx() != 4 || last.Dy() != 9 {
		t.Errorf("last tile is %dx%d; want 4x9", last.Dx(), last.Dy())
	}
}

func TestSplitTilesOffsetRect(t *testing.T) {
	r := image.Rect(10, 20, 42, 52)
	tiles, err := SplitTiles(r, 16, 16)
	if err != nil {
		t.Fatalf("SplitTiles: %v", err)
	}
	union := image.Rectangle{}
	for _, tile := range tiles {
		union = union.Union(tile)
	}
	if union != r {
		t.Errorf("union of tiles = %v; want %v", union, r)
	}
}

func TestSplitTilesInvalidSize(t *testing.T) {
	for _, tc := range []struct{ tw, th int }{{0, 16}, {16, 0}, {-1, -1}} {
		if _, err := SplitTiles(image.Rect(0, 0, 10, 10), tc.tw, tc.th); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("SplitTiles(%dx%d) err = %v; want ErrInvalidArgument", tc.tw, tc.th, err)
		}
	}
}

func TestSplitTilesEmptyRect(t *testing.T) {
	tiles, err := SplitTiles(image.Rectangle{}, 16, 16)
	if err != nil {
		t.Fatalf("SplitTiles: %v", err)
	}
	if len(tiles) != 0 {
		t.Errorf("len(tiles) = %d; want 0", len(tiles))
	}
}
