// Package scanline provides the "scanline" turtle backend, which renders
// with the rasterx scan converter into an image.RGBA and encodes PNG.
//
// It is an alternative to the "raster" backend for callers that want
// plain image.RGBA output or rasterx's stroking (round caps, joins and
// gaps computed in 26.6 fixed point).
package scanline

import (
	"image"
	"image/png"
	"io"
	"os"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	turtle "github.com/gogpu/gg-turtle"
)

// miterLimit is passed to rasterx for completeness; joins are round.
const miterLimit = 4.0

func init() {
	turtle.Register("scanline", func() turtle.Backend {
		return NewBackend()
	})
}

// Backend renders turtle drawings with rasterx.
type Backend struct {
	img     *image.RGBA
	scanner *rasterx.ScannerGV
	dasher  *rasterx.Dasher // strokes
	filler  *rasterx.Filler // polygons and dots

	font  *text.FontSource
	faces map[float64]text.Face
}

var (
	_ turtle.Backend       = (*Backend)(nil)
	_ turtle.WriterBackend = (*Backend)(nil)
	_ turtle.FileBackend   = (*Backend)(nil)
)

// NewBackend creates a new scanline backend.
// The backend must be initialized with Begin before use.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin allocates a transparent image of the given size.
func (b *Backend) Begin(width, height int) error {
	b.img = image.NewRGBA(image.Rect(0, 0, width, height))
	b.scanner = rasterx.NewScannerGV(width, height, b.img, b.img.Bounds())
	b.dasher = rasterx.NewDasher(width, height, b.scanner)
	b.filler = rasterx.NewFiller(width, height, b.scanner)
	b.filler.SetWinding(true)
	return nil
}

// End is a no-op; every call renders immediately.
func (b *Backend) End() error {
	return nil
}

// Clear paints the whole image with bg.
func (b *Backend) Clear(bg gg.RGBA) {
	draw.Draw(b.img, b.img.Bounds(), image.NewUniform(bg.Color()), image.Point{}, draw.Src)
}

// StrokePolyline strokes the polyline through points.
func (b *Backend) StrokePolyline(points []gg.Point, pen turtle.Pen) {
	if len(points) < 2 {
		return
	}
	b.dasher.Clear()
	b.dasher.SetStroke(toFixed(pen.Width), toFixed(miterLimit),
		rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.Round,
		nil, 0)
	b.scanner.SetColor(pen.Color.Color())

	b.dasher.Start(toFixedP(points[0]))
	for _, p := range points[1:] {
		b.dasher.Line(toFixedP(p))
	}
	b.dasher.Stop(false)
	b.dasher.Draw()
}

// FillPolygon fills the closed polygon through points.
func (b *Backend) FillPolygon(points []gg.Point, fill gg.RGBA) {
	if len(points) < 3 {
		return
	}
	b.filler.Clear()
	b.scanner.SetColor(fill.Color())

	b.filler.Start(toFixedP(points[0]))
	for _, p := range points[1:] {
		b.filler.Line(toFixedP(p))
	}
	b.filler.Stop(true)
	b.filler.Draw()
}

// DrawDot paints a filled circle.
func (b *Backend) DrawDot(center gg.Point, diameter float64, c gg.RGBA) {
	b.filler.Clear()
	b.scanner.SetColor(c.Color())
	rasterx.AddCircle(center.X, center.Y, diameter/2, b.filler)
	b.filler.Draw()
}

// DrawText draws s with gg's text renderer directly into the image.
func (b *Backend) DrawText(s string, at gg.Point, size float64, c gg.RGBA) {
	face := b.face(size)
	if face == nil {
		return
	}
	text.Draw(b.img, s, face, at.X, at.Y, c.Color())
}

// Image returns the rendered image.
func (b *Backend) Image() *image.RGBA {
	return b.img
}

// WriteTo writes the image as PNG to the given writer.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := png.Encode(cw, b.img)
	return cw.n, err
}

// SaveToFile saves the image as PNG to a file.
func (b *Backend) SaveToFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, b.img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func (b *Backend) face(size float64) text.Face {
	if b.font == nil {
		src, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			turtle.Logger().Warn("scanline: embedded font unavailable", "err", err)
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

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func toFixedP(p gg.Point) fixed.Point26_6 {
	return fixed.Point26_6{X: toFixed(p.X), Y: toFixed(p.Y)}
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
