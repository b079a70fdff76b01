package main

import (
	"context"
	"errors"
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	mandel "mandelzoom"
)

type renderResult struct {
	view mandel.Viewport
	img  *image.RGBA
	took time.Duration
	err  error
}

// renderSession is one asynchronous render. It reports on done exactly
// once; canceling it makes that report a context error.
type renderSession struct {
	cancel context.CancelFunc
	done   chan renderResult
}

func startRender(view mandel.Viewport, maxIter int, palette mandel.Palette) *renderSession {
	ctx, cancel := context.WithCancel(context.Background())
	s := &renderSession{cancel: cancel, done: make(chan renderResult, 1)}
	go func() {
		defer cancel()
		start := time.Now()
		grid, err := mandel.Render(ctx, mandel.RenderRequest{
			Viewport:     view,
			MaxIter:      maxIter,
			EscapeRadius: mandel.DefaultEscapeRadius,
		})
		if err != nil {
			s.done <- renderResult{view: view, err: err}
			return
		}
		s.done <- renderResult{
			view: view,
			img:  grid.Image(palette, maxIter),
			took: time.Since(start),
		}
	}()
	return s
}

// restartRender discards any in-flight render and starts one for the
// current viewport. Canceled grids are thrown away, never merged.
func (g *game) restartRender() {
	if g.session != nil {
		g.session.cancel()
	}
	g.session = startRender(g.view, g.maxIter, g.palette)
}

// pollSession picks up a finished render without blocking the frame loop.
func (g *game) pollSession() {
	if g.session == nil {
		return
	}
	select {
	case res := <-g.session.done:
		g.session = nil
		if res.err != nil {
			if !errors.Is(res.err, context.Canceled) {
				g.err = res.err
			}
			return
		}
		g.frame = &frame{
			view: res.view,
			img:  ebiten.NewImageFromImage(res.img),
			raw:  res.img,
			took: res.took,
		}
	default:
	}
}
