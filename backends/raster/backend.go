// Package raster provides the "raster" turtle backend, which renders to a
// pixel image using gg.Context and encodes PNG.
//
// Strokes use round caps and joins so fractal corners stay crisp at any
// pen width. Text is rendered with the Go Regular font embedded in
// golang.org/x/image; no font files are needed.
//
// # Example
//
//	import _ "github.com/gogpu/gg-turtle/backends/raster"
//
//	backend, _ := turtle.NewBackend("raster")
//	t, _ := turtle.New(backend)
//	// ... draw ...
//	t.Close()
//	backend.(turtle.FileBackend).SaveToFile("out.png")
package raster

import (
	"image"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	turtle "github.com/gogpu/gg-turtle"
)

func init() {
	turtle.Register("raster", func() turtle.Backend {
		return NewBackend()
	})
}

// Backend renders turtle drawings to a gg.Context.
type Backend struct {
	ctx    *gg.Context
	width  int
	height int

	font  *text.FontSource
	faces map[float64]text.Face
}

var (
	_ turtle.Backend       = (*Backend)(nil)
	_ turtle.WriterBackend = (*Backend)(nil)
	_ turtle.FileBackend   = (*Backend)(nil)
)

// NewBackend creates a new raster backend.
// The backend must be initialized with Begin before use.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin allocates a transparent canvas of the given size.
func (b *Backend) Begin(width, height int) error {
	b.width = width
	b.height = height
	b.ctx = gg.NewContext(width, height)
	b.ctx.SetLineCap(gg.LineCapRound)
	b.ctx.SetLineJoin(gg.LineJoinRound)
	b.ctx.SetFillRule(gg.FillRuleNonZero)
	return nil
}

// End flushes pending rendering work.
func (b *Backend) End() error {
	return b.ctx.FlushGPU()
}

// Clear paints the whole canvas with bg.
func (b *Backend) Clear(bg gg.RGBA) {
	b.ctx.ClearWithColor(bg)
}

// StrokePolyline strokes the polyline through points.
func (b *Backend) StrokePolyline(points []gg.Point, pen turtle.Pen) {
	if len(points) < 2 {
		return
	}
	b.ctx.SetStrokeBrush(gg.Solid(pen.Color))
	b.ctx.SetLineWidth(pen.Width)
	b.tracePath(points)
	_ = b.ctx.Stroke()
}

// FillPolygon fills the closed polygon through points.
func (b *Backend) FillPolygon(points []gg.Point, fill gg.RGBA) {
	if len(points) < 3 {
		return
	}
	b.ctx.SetFillBrush(gg.Solid(fill))
	b.tracePath(points)
	b.ctx.ClosePath()
	_ = b.ctx.Fill()
}

// DrawDot paints a filled circle.
func (b *Backend) DrawDot(center gg.Point, diameter float64, c gg.RGBA) {
	b.ctx.ClearPath()
	b.ctx.SetFillBrush(gg.Solid(c))
	b.ctx.DrawCircle(center.X, center.Y, diameter/2)
	_ = b.ctx.Fill()
}

// DrawText draws s with its baseline origin at the given point.
// Text is skipped if the embedded font cannot be parsed.
func (b *Backend) DrawText(s string, at gg.Point, size float64, c gg.RGBA) {
	face := b.face(size)
	if face == nil {
		return
	}
	b.ctx.SetFont(face)
	b.ctx.SetColor(c.Color())
	b.ctx.DrawString(s, at.X, at.Y)
}

// WriteTo writes the canvas as PNG to the given writer.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := b.ctx.EncodePNG(cw)
	return cw.n, err
}

// SaveToFile saves the canvas as PNG to a file.
func (b *Backend) SaveToFile(path string) error {
	return b.ctx.SavePNG(path)
}

// Image returns the rendered image.
func (b *Backend) Image() image.Image {
	return b.ctx.Image()
}

// Context returns the underlying drawing context, for callers that want
// to compose further gg drawing on top of the turtle's output.
func (b *Backend) Context() *gg.Context {
	return b.ctx
}

// Width returns the canvas width.
func (b *Backend) Width() int {
	return b.width
}

// Height returns the canvas height.
func (b *Backend) Height() int {
	return b.height
}

func (b *Backend) tracePath(points []gg.Point) {
	b.ctx.ClearPath()
	b.ctx.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		b.ctx.LineTo(p.X, p.Y)
	}
}

// face returns a cached Go Regular face of the given size.
func (b *Backend) face(size float64) text.Face {
	if b.font == nil {
		src, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			turtle.Logger().Warn("raster: embedded font unavailable", "err", err)
			return nil
		}
		b.font = src
		b.faces = make(map[float64]text.Face)
	}
	f, ok := b.faces[size]
	if !ok {
		f = b.font.Face(size)
		b.faces[size] = f
	}
	return f
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
