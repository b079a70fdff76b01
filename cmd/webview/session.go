package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"log"
	"runtime"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"golang.org/x/sync/errgroup"

	mandel "mandelzoom"
)

// gestureMsg is what the browser sends. The first message on a fresh
// connection must be a resize, which establishes the viewport.
type gestureMsg struct {
	Op     string  `json:"op"` // zoom, pan, reset or resize
	Factor float64 `json:"factor,omitempty"`
	Px     int     `json:"px,omitempty"`
	Py     int     `json:"py,omitempty"`
	Dx     int     `json:"dx,omitempty"`
	Dy     int     `json:"dy,omitempty"`
	W      int     `json:"w,omitempty"`
	H      int     `json:"h,omitempty"`
}

// frameMsg announces a new frame before its tiles arrive. The browser
// drops tiles whose sequence number is not the latest announced one.
type frameMsg struct {
	Type string `json:"type"` // "frame"
	Seq  int    `json:"seq"`
	W    int    `json:"w"`
	H    int    `json:"h"`
}

// tileMsg carries one finished tile, PNG-encoded and base64-wrapped so it
// travels inside JSON.
type tileMsg struct {
	Type string `json:"type"` // "tile"
	Seq  int    `json:"seq"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
	PNG  string `json:"png"`
}

// doneMsg closes a fully delivered frame.
type doneMsg struct {
	Type    string  `json:"type"` // "done"
	Seq     int     `json:"seq"`
	Seconds float64 `json:"seconds"`
}

// session is the server side of one connected viewer: the current
// viewport, the in-flight frame and the websocket it reports to.
type session struct {
	conn     *websocket.Conn
	renderer mandel.TileRenderer
	palette  mandel.Palette
	maxIter  int
	tileSize int

	view mandel.Viewport
	seq  int

	cancelFrame context.CancelFunc

	writeMu sync.Mutex
}

func newSession(conn *websocket.Conn, maxIter, tileSize int, palette mandel.Palette) *session {
	return &session{
		conn:        conn,
		renderer:    mandel.RendererFunc(mandel.RenderTile),
		palette:     palette,
		maxIter:     maxIter,
		tileSize:    tileSize,
		cancelFrame: func() {},
	}
}

// run reads gestures until the connection closes. Every accepted gesture
// cancels the in-flight frame and starts a fresh one; canceled frames are
// discarded, never merged.
func (s *session) run(ctx context.Context) error {
	defer s.cancelFrame()
	for {
		var g gestureMsg
		if err := wsjson.Read(ctx, s.conn, &g); err != nil {
			return err
		}
		view, err := s.apply(g)
		if err != nil {
			log.Printf("gesture %q rejected: %v", g.Op, err)
			continue
		}
		s.view = view
		s.startFrame(ctx)
	}
}

func (s *session) apply(g gestureMsg) (mandel.Viewport, error) {
	if g.Op != "resize" {
		// no viewport yet until the browser reports its canvas size
		if err := s.view.Validate(); err != nil {
			return mandel.Viewport{}, err
		}
	}
	switch g.Op {
	case "zoom":
		return s.view.Zoom(g.Factor, g.Px, g.Py)
	case "pan":
		return s.view.Pan(g.Dx, g.Dy), nil
	case "reset":
		return mandel.DefaultViewport(s.view.PixelW, s.view.PixelH), nil
	case "resize":
		v := mandel.Viewport{
			Center:    s.view.Center,
			HalfWidth: s.view.HalfWidth,
			PixelW:    g.W,
			PixelH:    g.H,
		}
		if s.view.Validate() != nil {
			v = mandel.DefaultViewport(g.W, g.H)
		}
		return v, v.Validate()
	}
	return mandel.Viewport{}, fmt.Errorf("%w: unknown op %q", mandel.ErrInvalidArgument, g.Op)
}

// startFrame kicks off an asynchronous render of the current viewport and
// pushes tiles as they finish.
func (s *session) startFrame(ctx context.Context) {
	s.cancelFrame()
	ctx, cancel := context.WithCancel(ctx)
	s.cancelFrame = cancel

	s.seq++
	seq := s.seq
	req := mandel.RenderRequest{
		Viewport:     s.view,
		MaxIter:      s.maxIter,
		EscapeRadius: mandel.DefaultEscapeRadius,
	}

	go func() {
		start := time.Now()
		if err := s.writeJSON(ctx, frameMsg{Type: "frame", Seq: seq, W: req.Viewport.PixelW, H: req.Viewport.PixelH}); err != nil {
			return
		}
		err := renderFrame(ctx, s.renderer, req, s.tileSize, s.palette,
			func(tile image.Rectangle, img *image.RGBA) error {
				return s.pushTile(ctx, seq, tile, img)
			})
		if err != nil {
			if ctx.Err() == nil {
				log.Printf("frame %d: %v", seq, err)
			}
			return
		}
		s.writeJSON(ctx, doneMsg{Type: "done", Seq: seq, Seconds: time.Since(start).Seconds()})
	}()
}

// renderFrame fans the frame's tiles out across one worker per CPU and
// hands each finished tile to emit, which must be safe for concurrent use.
// It returns once every tile is delivered or ctx is canceled.
func renderFrame(ctx context.Context, r mandel.TileRenderer, req mandel.RenderRequest, tileSize int, palette mandel.Palette, emit func(tile image.Rectangle, img *image.RGBA) error) error {
	tiles, err := mandel.SplitTiles(image.Rect(0, 0, req.Viewport.PixelW, req.Viewport.PixelH), tileSize, tileSize)
	if err != nil {
		return err
	}

	queue := make(chan image.Rectangle)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(queue)
		for _, t := range tiles {
			select {
			case queue <- t:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	for w := 0; w < runtime.NumCPU(); w++ {
		g.Go(func() error {
			for tile := range queue {
				grid, err := r.RenderTile(ctx, req, tile)
				if err != nil {
					return err
				}
				if err := emit(tile, grid.Image(palette, req.MaxIter)); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}

func (s *session) pushTile(ctx context.Context, seq int, tile image.Rectangle, img *image.RGBA) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	return s.writeJSON(ctx, tileMsg{
		Type: "tile",
		Seq:  seq,
		X:    tile.Min.X,
		Y:    tile.Min.Y,
		PNG:  base64.StdEncoding.EncodeToString(buf.Bytes()),
	})
}

// writeJSON serializes the concurrent tile writers onto the single
// websocket.
func (s *session) writeJSON(ctx context.Context, v any) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return wsjson.Write(ctx, s.conn, v)
}
