// Package svg provides the "svg" turtle backend, which writes an SVG
// document with github.com/ajstarks/svgo.
//
// Polylines become <path> elements with coordinates rounded to 1/1000 of a
// pixel, so deep fractals keep their geometry instead of snapping to the
// integer grid.
package svg

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	svgo "github.com/ajstarks/svgo"
	"github.com/gogpu/gg"

	turtle "github.com/gogpu/gg-turtle"
)

// ErrNotFinished is returned when output is requested before End.
var ErrNotFinished = errors.New("svg: document not finished")

func init() {
	turtle.Register("svg", func() turtle.Backend {
		return NewBackend()
	})
}

// Backend builds an SVG document in memory.
type Backend struct {
	buf           bytes.Buffer
	canvas        *svgo.SVG
	width, height int
	title         string
	elements      int
	done          bool
}

var (
	_ turtle.Backend       = (*Backend)(nil)
	_ turtle.WriterBackend = (*Backend)(nil)
	_ turtle.FileBackend   = (*Backend)(nil)
)

// NewBackend creates a new SVG backend.
// The backend must be initialized with Begin before use.
func NewBackend() *Backend {
	return &Backend{}
}

// SetTitle sets the document title. It takes effect at the next Begin.
func (b *Backend) SetTitle(title string) {
	b.title = title
}

// Begin starts a new document of the given size.
func (b *Backend) Begin(width, height int) error {
	b.buf.Reset()
	b.width = width
	b.height = height
	b.elements = 0
	b.done = false
	b.canvas = svgo.New(&b.buf)
	b.canvas.Start(width, height)
	if b.title != "" {
		b.canvas.Title(b.title)
	}
	return nil
}

// End closes the document.
func (b *Backend) End() error {
	b.canvas.End()
	b.done = true
	turtle.Logger().Debug("svg: document finished", "elements", b.elements, "bytes", b.buf.Len())
	return nil
}

// Clear paints the whole canvas with bg.
func (b *Backend) Clear(bg gg.RGBA) {
	b.canvas.Rect(0, 0, b.width, b.height, fillStyle(bg))
	b.elements++
}

// StrokePolyline emits an open <path> through points.
func (b *Backend) StrokePolyline(points []gg.Point, pen turtle.Pen) {
	if len(points) < 2 {
		return
	}
	b.canvas.Path(pathData(points, false), strokeStyle(pen))
	b.elements++
}

// FillPolygon emits a closed, filled <path> through points.
func (b *Backend) FillPolygon(points []gg.Point, fill gg.RGBA) {
	if len(points) < 3 {
		return
	}
	b.canvas.Path(pathData(points, true), fillStyle(fill)+";fill-rule:nonzero;stroke:none")
	b.elements++
}

// DrawDot emits a filled circle built from two arcs.
func (b *Backend) DrawDot(center gg.Point, diameter float64, c gg.RGBA) {
	r := diameter / 2
	d := "M" + num(center.X-r) + " " + num(center.Y) +
		"a" + num(r) + " " + num(r) + " 0 1 0 " + num(diameter) + " 0" +
		"a" + num(r) + " " + num(r) + " 0 1 0 " + num(-diameter) + " 0Z"
	b.canvas.Path(d, fillStyle(c)+";stroke:none")
	b.elements++
}

// DrawText emits a <text> element. svgo escapes the content.
func (b *Backend) DrawText(s string, at gg.Point, size float64, c gg.RGBA) {
	style := "font-family:Go,sans-serif;font-size:" + num(size) + "px;" + fillStyle(c)
	b.canvas.Text(int(math.Round(at.X)), int(math.Round(at.Y)), s, style)
	b.elements++
}

// Bytes returns the document. It is complete only after End.
func (b *Backend) Bytes() []byte {
	return b.buf.Bytes()
}

// WriteTo writes the finished document to the given writer.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if !b.done {
		return 0, ErrNotFinished
	}
	return bytes.NewReader(b.buf.Bytes()).WriteTo(w)
}

// SaveToFile saves the finished document to a file.
func (b *Backend) SaveToFile(path string) error {
	if !b.done {
		return ErrNotFinished
	}
	return os.WriteFile(path, b.buf.Bytes(), 0o644)
}

func pathData(points []gg.Point, closed bool) string {
	var sb strings.Builder
	for i, p := range points {
		if i == 0 {
			sb.WriteByte('M')
		} else {
			sb.WriteByte('L')
		}
		sb.WriteString(num(p.X))
		sb.WriteByte(' ')
		sb.WriteString(num(p.Y))
	}
	if closed {
		sb.WriteByte('Z')
	}
	return sb.String()
}

func strokeStyle(pen turtle.Pen) string {
	return fmt.Sprintf("fill:none;stroke:%s;stroke-opacity:%s;stroke-width:%s;stroke-linecap:round;stroke-linejoin:round",
		rgb(pen.Color), num(pen.Color.A), num(pen.Width))
}

func fillStyle(c gg.RGBA) string {
	return "fill:" + rgb(c) + ";fill-opacity:" + num(c.A)
}

func rgb(c gg.RGBA) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) int {
	return int(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// num formats v with at most three decimals.
func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}
