// Package vector provides the "vector" turtle backend, which captures a
// drawing with gg's recording system instead of rasterizing it.
//
// The captured recording keeps every stroke as a path, so it can be played
// back to any gg recording backend: the built-in "raster" backend, or the
// PDF and SVG exporters when their packages are imported.
//
//	import (
//	    _ "github.com/gogpu/gg-turtle/backends/vector"
//	    _ "github.com/gogpu/gg-pdf" // registers the "pdf" recording backend
//	)
//
//	b := vector.NewBackendFor("pdf")
//	t, _ := turtle.New(b)
//	// ... draw ...
//	t.Close()
//	b.SaveToFile("out.pdf")
package vector

import (
	"errors"
	"fmt"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	_ "github.com/gogpu/gg/recording/backends/raster" // default export target

	turtle "github.com/gogpu/gg-turtle"
)

// DefaultFormat is the gg recording backend used for export when none is
// given.
const DefaultFormat = "raster"

// ErrNotFinished is returned when output is requested before End.
var ErrNotFinished = errors.New("vector: recording not finished")

func init() {
	turtle.Register("vector", func() turtle.Backend {
		return NewBackend()
	})
}

// Backend records turtle drawings as gg recording commands.
type Backend struct {
	rec    *recording.Recorder
	result *recording.Recording
	format string
}

var (
	_ turtle.Backend       = (*Backend)(nil)
	_ turtle.WriterBackend = (*Backend)(nil)
	_ turtle.FileBackend   = (*Backend)(nil)
)

// NewBackend creates a vector backend that exports through gg's "raster"
// recording backend.
func NewBackend() *Backend {
	return NewBackendFor(DefaultFormat)
}

// NewBackendFor creates a vector backend that exports through the named gg
// recording backend. The name is resolved when output is requested.
func NewBackendFor(format string) *Backend {
	return &Backend{format: format}
}

// Format returns the name of the export backend.
func (b *Backend) Format() string {
	return b.format
}

// Begin starts a new recording of the given size.
func (b *Backend) Begin(width, height int) error {
	b.rec = recording.NewRecorder(width, height)
	b.rec.SetLineCap(recording.LineCapRound)
	b.rec.SetLineJoin(recording.LineJoinRound)
	b.rec.SetFillRule(recording.FillRuleNonZero)
	b.result = nil
	return nil
}

// End finishes the recording.
func (b *Backend) End() error {
	b.result = b.rec.FinishRecording()
	turtle.Logger().Debug("vector: recording finished",
		"commands", len(b.result.Commands()),
		"paths", b.result.Resources().PathCount())
	return nil
}

// Clear records a full-canvas fill with bg.
func (b *Backend) Clear(bg gg.RGBA) {
	b.rec.ClearWithColor(bg)
}

// StrokePolyline records a stroked path through points.
func (b *Backend) StrokePolyline(points []gg.Point, pen turtle.Pen) {
	if len(points) < 2 {
		return
	}
	b.rec.SetStrokeRGBA(pen.Color.R, pen.Color.G, pen.Color.B, pen.Color.A)
	b.rec.SetLineWidth(pen.Width)
	b.tracePath(points)
	b.rec.Stroke()
}

// FillPolygon records a filled closed path through points.
func (b *Backend) FillPolygon(points []gg.Point, fill gg.RGBA) {
	if len(points) < 3 {
		return
	}
	b.rec.SetFillRGBA(fill.R, fill.G, fill.B, fill.A)
	b.tracePath(points)
	b.rec.ClosePath()
	b.rec.Fill()
}

// DrawDot records a filled circle.
func (b *Backend) DrawDot(center gg.Point, diameter float64, c gg.RGBA) {
	b.rec.ClearPath()
	b.rec.SetFillRGBA(c.R, c.G, c.B, c.A)
	b.rec.DrawCircle(center.X, center.Y, diameter/2)
	b.rec.Fill()
}

// DrawText records a text run.
func (b *Backend) DrawText(s string, at gg.Point, size float64, c gg.RGBA) {
	b.rec.SetFillRGBA(c.R, c.G, c.B, c.A)
	b.rec.SetFontSize(size)
	b.rec.DrawString(s, at.X, at.Y)
}

// Recording returns the finished recording, or nil before End.
func (b *Backend) Recording() *recording.Recording {
	return b.result
}

// Playback replays the finished recording to a gg recording backend.
func (b *Backend) Playback(to recording.Backend) error {
	if b.result == nil {
		return ErrNotFinished
	}
	return b.result.Playback(to)
}

// WriteTo plays the recording back to the export backend and streams its
// output.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	out, err := b.export()
	if err != nil {
		return 0, err
	}
	wb, ok := out.(recording.WriterBackend)
	if !ok {
		return 0, fmt.Errorf("vector: %q backend cannot write to a stream", b.format)
	}
	return wb.WriteTo(w)
}

// SaveToFile plays the recording back to the export backend and saves its
// output.
func (b *Backend) SaveToFile(path string) error {
	out, err := b.export()
	if err != nil {
		return err
	}
	fb, ok := out.(recording.FileBackend)
	if !ok {
		return fmt.Errorf("vector: %q backend cannot save to a file", b.format)
	}
	return fb.SaveToFile(path)
}

func (b *Backend) export() (recording.Backend, error) {
	if b.result == nil {
		return nil, ErrNotFinished
	}
	out, err := recording.NewBackend(b.format)
	if err != nil {
		return nil, err
	}
	if err := b.result.Playback(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (b *Backend) tracePath(points []gg.Point) {
	b.rec.ClearPath()
	b.rec.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		b.rec.LineTo(p.X, p.Y)
	}
}
