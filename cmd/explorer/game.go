package main

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	mandel "mandelzoom"
)

// zoomStep is the half-width shrink per wheel notch or +/- key press, the
// inverse of the 0.7 width factor of the reference settings.
const zoomStep = 1 / 0.7

// frame is one finished render: the viewport it was computed for, the GPU
// image drawn each tick and the CPU image kept for screenshots.
type frame struct {
	view mandel.Viewport
	img  *ebiten.Image
	raw  *image.RGBA
	took time.Duration
}

type game struct {
	view    mandel.Viewport
	maxIter int
	palette mandel.Palette

	session *renderSession // in-flight render, nil when idle
	frame   *frame         // last finished frame, nil before the first one
	zoomLvl int

	dragging     bool
	dragX, dragY int

	err error
}

func newGame(width, height, maxIter int, palette string) (*game, error) {
	pal, err := mandel.PaletteByName(palette)
	if err != nil {
		return nil, err
	}
	g := &game{
		view:    mandel.DefaultViewport(width, height),
		maxIter: maxIter,
		palette: pal,
	}
	if err := g.view.Validate(); err != nil {
		return nil, err
	}
	if g.maxIter <= 0 {
		return nil, fmt.Errorf("iteration cap must be positive, got %d", maxIter)
	}
	g.restartRender()
	return g, nil
}

func (g *game) Update() error {
	if g.err != nil {
		return g.err
	}
	g.handleInput()
	g.pollSession()
	return g.err
}

func (g *game) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.err = ebiten.Termination
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.saveScreenshot()
	}

	view := g.view
	changed := false

	if _, wy := ebiten.Wheel(); wy != 0 {
		factor := zoomStep
		if wy < 0 {
			factor = 1 / zoomStep
		}
		cx, cy := ebiten.CursorPosition()
		if next, err := view.Zoom(factor, cx, cy); err == nil {
			view, changed = next, true
			g.zoomLvl += zoomDelta(wy > 0)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		// keyboard zoom is anchored on the view center, like the original
		if next, err := view.Zoom(zoomStep, view.PixelW/2, view.PixelH/2); err == nil {
			view, changed = next, true
			g.zoomLvl++
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		if next, err := view.Zoom(1/zoomStep, view.PixelW/2, view.PixelH/2); err == nil {
			view, changed = next, true
			g.zoomLvl--
		}
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.dragging {
			// the content follows the cursor, so the center moves the
			// opposite way
			if dx, dy := g.dragX-x, g.dragY-y; dx != 0 || dy != 0 {
				view = view.Pan(dx, dy)
				changed = true
			}
		}
		g.dragging, g.dragX, g.dragY = true, x, y
	} else {
		g.dragging = false
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) || inpututil.IsKeyJustPressed(ebiten.KeyR) {
		view = mandel.DefaultViewport(view.PixelW, view.PixelH)
		g.zoomLvl = 0
		changed = true
	}

	for i, lm := range mandel.Landmarks {
		if i >= 9 {
			break
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyDigit1 + ebiten.Key(i)) {
			view = mandel.ViewportForRegion(lm.Region, view.PixelW, view.PixelH)
			g.zoomLvl = 0
			changed = true
		}
	}

	if changed {
		g.view = view
		g.restartRender()
	}
}

func zoomDelta(in bool) int {
	if in {
		return 1
	}
	return -1
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.frame != nil {
		var op ebiten.DrawImageOptions
		if g.frame.view != g.view {
			op.GeoM = previewTransform(g.frame.view, g.view)
		}
		screen.DrawImage(g.frame.img, &op)
	}
	g.drawHUD(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.view.PixelW, g.view.PixelH
}

// previewTransform maps the last finished frame onto the current viewport
// so pan and zoom feel immediate while the real render catches up.
func previewTransform(from, to mandel.Viewport) ebiten.GeoM {
	var m ebiten.GeoM
	s := from.HalfWidth / to.HalfWidth
	m.Scale(s, s)
	corner, err := from.PixelToPoint(0, 0)
	if err != nil {
		return m
	}
	tx, ty := to.PointToPixel(corner)
	m.Translate(tx, ty)
	return m
}

func (g *game) drawHUD(screen *ebiten.Image) {
	status := "processing..."
	if g.session == nil && g.frame != nil {
		status = fmt.Sprintf("done in %.3fs", g.frame.took.Seconds())
	}
	msg := fmt.Sprintf(
		"zoom level %d  center (%.6g, %.6g)  half-width %.3g  iter %d  %s\n"+
			"wheel/+/-: zoom  drag: pan  right/R: reset  1-%d: landmarks  S: screenshot  Esc: quit",
		g.zoomLvl, real(g.view.Center), imag(g.view.Center), g.view.HalfWidth,
		g.maxIter, status, min(len(mandel.Landmarks), 9))
	ebitenutil.DebugPrint(screen, msg)
}

func (g *game) saveScreenshot() {
	if g.frame == nil {
		return
	}
	name := fmt.Sprintf("mandelzoom_%s.png", time.Now().Format("20060102150405"))
	f, err := os.Create(name)
	if err != nil {
		log.Printf("screenshot: %v", err)
		return
	}
	defer f.Close()
	if err := png.Encode(f, g.frame.raw); err != nil {
		log.Printf("screenshot: %v", err)
		return
	}
	log.Printf("saved %s", name)
}
