package mandel

// IterationGrid holds one escape count per pixel in row-major order. It is
// written exactly once by a render and read-only afterwards. A cell equal
// to the render's iteration cap means the point never escaped.
type IterationGrid struct {
	W, H   int
	Counts []uint32
}

func newIterationGrid(w, h int) *IterationGrid {
	return &IterationGrid{W: w, H: h, Counts: make([]uint32, w*h)}
}

// At returns the escape count at pixel (px, py). Like image.Image
// accessors it assumes in-bounds coordinates.
func (g *IterationGrid) At(px, py int) uint32 {
	return g.Counts[py*g.W+px]
}

// InSet reports whether pixel (px, py) was assumed inside the set, i.e.
// its count reached the given iteration cap.
func (g *IterationGrid) InSet(px, py int, maxIter int) bool {
	return g.At(px, py) >= uint32(maxIter)
}
