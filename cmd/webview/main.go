// Command webview serves the explorer to a browser. The page is a plain
// canvas that forwards gestures over a websocket; the server owns the
// viewport, renders tile by tile and pushes finished tiles back.
package main

import (
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/coder/websocket"

	mandel "mandelzoom"
)

//go:embed static
var staticFiles embed.FS

func main() {
	addr := flag.String("addr", ":8080", "http listen address")
	maxIter := flag.Int("iter", mandel.DefaultMaxIter, "per-pixel iteration cap")
	tileSize := flag.Int("tile", 128, "tile edge length in pixels")
	palette := flag.String("palette", "heat", "palette: heat, smooth or gray")
	flag.Parse()

	if err := run(*addr, *maxIter, *tileSize, *palette); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run(addr string, maxIter, tileSize int, paletteName string) error {
	palette, err := mandel.PaletteByName(paletteName)
	if err != nil {
		return err
	}
	if maxIter <= 0 {
		return fmt.Errorf("iteration cap must be positive, got %d", maxIter)
	}
	if tileSize <= 0 {
		return fmt.Errorf("tile size must be positive, got %d", tileSize)
	}

	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return err
	}
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.FS(static)))
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"}, // TODO: tighten in prod
		})
		if err != nil {
			log.Println(err)
			return
		}
		defer conn.CloseNow()

		log.Printf("viewer connected: %s", r.RemoteAddr)
		s := newSession(conn, maxIter, tileSize, palette)
		if err := s.run(r.Context()); err != nil {
			log.Printf("viewer %s gone: %v", r.RemoteAddr, err)
		}
	})

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Printf("listening on http://localhost%s", addr)
	return srv.ListenAndServe()
}
