// Command explorer is the interactive desktop viewer. It owns the current
// viewport, re-renders in the background on every gesture and shows the
// freshest finished frame.
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	mandel "mandelzoom"
)

func main() {
	width := flag.Int("width", 900, "window width in pixels")
	height := flag.Int("height", 600, "window height in pixels")
	maxIter := flag.Int("iter", mandel.DefaultMaxIter, "per-pixel iteration cap")
	palette := flag.String("palette", "heat", "palette: heat, smooth or gray")
	flag.Parse()

	if err := run(*width, *height, *maxIter, *palette); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run(width, height, maxIter int, palette string) error {
	g, err := newGame(width, height, maxIter, palette)
	if err != nil {
		return err
	}
	ebiten.SetWindowTitle("mandelzoom")
	ebiten.SetWindowSize(width, height)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}
