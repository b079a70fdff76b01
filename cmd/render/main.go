// Command render writes one view of the Mandelbrot set to a PNG file.
package main

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	xdraw "golang.org/x/image/draw"

	mandel "mandelzoom"
)

type options struct {
	centerRe     float64
	centerIm     float64
	halfWidth    float64
	width        int
	height       int
	maxIter      int
	escapeRadius float64
	palette      string
	region       string
	supersample  int
	out          string
}

func mainCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a region of the Mandelbrot set to a PNG file",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			// At this point usage information has already been printed if
			// obviously incorrect.
			cmd.SilenceUsage = true
			return run(cmd.Context(), opts)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&opts.centerRe, "re", -0.75, "real part of the view center")
	f.Float64Var(&opts.centerIm, "im", 0, "imaginary part of the view center")
	f.Float64Var(&opts.halfWidth, "half-width", 1.25, "half extent of the view along the real axis")
	f.IntVar(&opts.width, "width", 1920, "image width in pixels")
	f.IntVar(&opts.height, "height", 1080, "image height in pixels")
	f.IntVar(&opts.maxIter, "iter", mandel.DefaultMaxIter, "per-pixel iteration cap")
	f.Float64Var(&opts.escapeRadius, "escape-radius", mandel.DefaultEscapeRadius, "divergence threshold")
	f.StringVar(&opts.palette, "palette", "heat", "palette: heat, smooth or gray")
	f.StringVar(&opts.region, "region", "", "named landmark region, overrides --re/--im/--half-width (see --list-regions)")
	f.IntVar(&opts.supersample, "supersample", 1, "render at this integer multiple and downscale for smoother edges")
	f.StringVar(&opts.out, "out", "mandelbrot.png", "output file")

	cmd.AddCommand(listRegionsCmd())
	return cmd
}

func listRegionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List the named landmark regions",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			names := make([]string, 0, len(mandel.Landmarks))
			for _, lm := range mandel.Landmarks {
				names = append(names, lm.Name)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, "\n"))
			return nil
		},
	}
}

func run(ctx context.Context, opts *options) error {
	view := mandel.Viewport{
		Center:    complex(opts.centerRe, opts.centerIm),
		HalfWidth: opts.halfWidth,
		PixelW:    opts.width,
		PixelH:    opts.height,
	}
	if opts.region != "" {
		r, ok := mandel.LandmarkByName(opts.region)
		if !ok {
			return fmt.Errorf("unknown region %q, try the regions subcommand", opts.region)
		}
		view = mandel.ViewportForRegion(r, opts.width, opts.height)
	}
	palette, err := mandel.PaletteByName(opts.palette)
	if err != nil {
		return err
	}
	if opts.supersample < 1 {
		return fmt.Errorf("supersample must be >= 1, got %d", opts.supersample)
	}

	renderView := view
	renderView.PixelW *= opts.supersample
	renderView.PixelH *= opts.supersample

	start := time.Now()
	grid, err := mandel.Render(ctx, mandel.RenderRequest{
		Viewport:     renderView,
		MaxIter:      opts.maxIter,
		EscapeRadius: opts.escapeRadius,
	})
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	img := grid.Image(palette, opts.maxIter)
	if opts.supersample > 1 {
		small := image.NewRGBA(image.Rect(0, 0, opts.width, opts.height))
		xdraw.CatmullRom.Scale(small, small.Bounds(), img, img.Bounds(), xdraw.Src, nil)
		img = small
	}

	f, err := os.Create(opts.out)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", opts.out, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	log.Printf("rendered %dx%d (iter %d) to %s in %.3fs",
		opts.width, opts.height, opts.maxIter, opts.out, time.Since(start).Seconds())
	return nil
}

func main() {
	if err := mainCmd().ExecuteContext(context.Background()); err != nil {
		// At this point the error has already been printed; no need to
		// print again.
		os.Exit(1)
	}
}
