package mandel

import (
	"context"
	"image"
)

// TileRenderer is the unit of work the progressive shells schedule over.
// RendererFunc(RenderTile) is the in-process implementation; tests
// substitute fakes.
type TileRenderer interface {
	RenderTile(ctx context.Context, req RenderRequest, tile image.Rectangle) (*IterationGrid, error)
}

// RendererFunc adapts a function to TileRenderer.
type RendererFunc func(ctx context.Context, req RenderRequest, tile image.Rectangle) (*IterationGrid, error)

func (f RendererFunc) RenderTile(ctx context.Context, req RenderRequest, tile image.Rectangle) (*IterationGrid, error) {
	return f(ctx, req, tile)
}
