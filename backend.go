package turtle

import (
	"io"

	"github.com/gogpu/gg"
)

// Pen describes how a polyline is stroked.
type Pen struct {
	Color gg.RGBA
	Width float64
}

// Backend is the interface every output format implements. A Turtle
// converts its world coordinates to device coordinates (origin top-left,
// y down) before calling into the backend, so backends never deal with
// headings or the turtle's coordinate system.
//
// Backends are created via the registry using NewBackend(name) and
// registered via Register() in their init() functions.
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using turtle.Register()
//  2. Accept drawing calls only between Begin and End
//  3. Make its output available (WriteTo, SaveToFile) after End
//  4. Not retain point slices past the call that received them
type Backend interface {
	// Begin prepares an empty canvas of the given size in pixels. It may
	// be called again before End to discard everything drawn so far;
	// Turtle.Undo restarts the canvas this way.
	Begin(width, height int) error

	// End finalizes the output.
	End() error

	// Clear paints the whole canvas with bg.
	Clear(bg gg.RGBA)

	// StrokePolyline strokes the open polyline through points.
	// Callers pass at least two points.
	StrokePolyline(points []gg.Point, pen Pen)

	// FillPolygon fills the closed polygon through points using the
	// non-zero winding rule.
	FillPolygon(points []gg.Point, fill gg.RGBA)

	// DrawDot paints a filled circle of the given diameter.
	DrawDot(center gg.Point, diameter float64, c gg.RGBA)

	// DrawText draws s with its baseline origin at the given point.
	DrawText(s string, at gg.Point, size float64, c gg.RGBA)
}

// WriterBackend extends Backend with the ability to stream its output.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered output. Call only after End.
	WriteTo(w io.Writer) (int64, error)
}

// FileBackend extends Backend with the ability to save its output to a file.
type FileBackend interface {
	Backend

	// SaveToFile saves the rendered output. Call only after End.
	SaveToFile(path string) error
}
