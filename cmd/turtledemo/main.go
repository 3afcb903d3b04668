// Command turtledemo renders a closed fractal figure with the turtle
// library and saves it in the format of the selected backend.
//
//	turtledemo -order 4 -length 243 -output fractal.png
//	turtledemo -curve spiky -order 3 -backend svg -output spiky.svg
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/gg"

	turtle "github.com/gogpu/gg-turtle"
	_ "github.com/gogpu/gg-turtle/backends/raster"
	_ "github.com/gogpu/gg-turtle/backends/scanline"
	"github.com/gogpu/gg-turtle/backends/svg"
	_ "github.com/gogpu/gg-turtle/backends/vector"
	"github.com/gogpu/gg-turtle/fractal"
)

func main() {
	var (
		curveName = flag.String("curve", "square", "curve to draw ("+strings.Join(fractal.Curves(), ", ")+")")
		order     = flag.Int("order", 4, "recursion order")
		length    = flag.Float64("length", 243, "side length of the figure")
		width     = flag.Int("width", 500, "canvas width")
		height    = flag.Int("height", 500, "canvas height")
		penWidth  = flag.Float64("pen", 1, "pen width")
		penColor  = flag.String("color", "#000000", "pen color")
		bg        = flag.String("bg", "#ffffff", "background color")
		backend   = flag.String("backend", "raster", "output backend ("+strings.Join(turtle.Backends(), ", ")+")")
		output    = flag.String("output", "fractal.png", "output file")
		verbose   = flag.Bool("v", false, "log debug output")
	)
	flag.Parse()

	if *verbose {
		turtle.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	curve, err := fractal.CurveByName(*curveName)
	if err != nil {
		log.Fatal(err)
	}

	b, err := turtle.NewBackend(*backend)
	if err != nil {
		log.Fatal(err)
	}
	if sb, ok := b.(*svg.Backend); ok {
		sb.SetTitle("A " + curve.Name + " fractal")
	}
	fb, ok := b.(turtle.FileBackend)
	if !ok {
		log.Fatalf("backend %q cannot save to a file", *backend)
	}

	t, err := turtle.New(b,
		turtle.WithSize(*width, *height),
		turtle.WithBackground(gg.Hex(*bg)),
		turtle.WithPenColor(gg.Hex(*penColor)),
		turtle.WithPenWidth(*penWidth),
		turtle.WithUndoBuffer(0),
	)
	if err != nil {
		log.Fatalf("Failed to create turtle: %v", err)
	}

	if err := fractal.NewWithCurve(t, curve).DrawFigure(*order, *length); err != nil {
		log.Fatalf("Failed to draw: %v", err)
	}
	if err := t.Close(); err != nil {
		log.Fatalf("Failed to finish drawing: %v", err)
	}

	if err := fb.SaveToFile(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("%s fractal (order %d) saved to %s (%dx%d, %s)\n",
		curve.Name, *order, *output, *width, *height, *backend)
}
