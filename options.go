package turtle

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// Default canvas and pen settings.
const (
	DefaultWidth    = 800
	DefaultHeight   = 800
	DefaultPenWidth = 1.0

	// DefaultUndoBuffer is the number of commands Undo can revert.
	DefaultUndoBuffer = 1000
)

// Option configures a Turtle during creation.
//
// Example:
//
//	t, err := turtle.New(backend,
//	    turtle.WithSize(500, 500),
//	    turtle.WithPenColor(gg.Hex("#1e3a8a")),
//	)
type Option func(*options)

// options holds the configuration collected from Option values.
type options struct {
	width, height int
	background    gg.RGBA
	pen           Pen
	fill          gg.RGBA
	undoBuffer    int
}

// defaultOptions returns the default turtle options: an 800x800 white
// canvas with a black pen one unit wide.
func defaultOptions() options {
	return options{
		width:      DefaultWidth,
		height:     DefaultHeight,
		background: gg.White,
		pen:        Pen{Color: gg.Black, Width: DefaultPenWidth},
		fill:       gg.Black,
		undoBuffer: DefaultUndoBuffer,
	}
}

// validate reports the first out-of-range setting.
func (o options) validate() error {
	if o.width <= 0 || o.height <= 0 {
		return fmt.Errorf("canvas size %dx%d: %w", o.width, o.height, ErrInvalidArgument)
	}
	if !(o.pen.Width > 0) || math.IsInf(o.pen.Width, 0) {
		return fmt.Errorf("pen width %v: %w", o.pen.Width, ErrInvalidArgument)
	}
	if o.undoBuffer < 0 {
		return fmt.Errorf("undo buffer %d: %w", o.undoBuffer, ErrInvalidArgument)
	}
	return nil
}

// WithSize sets the canvas size in pixels.
func WithSize(width, height int) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}

// WithBackground sets the color the canvas is cleared to.
func WithBackground(c gg.RGBA) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithPenColor sets the initial pen color.
func WithPenColor(c gg.RGBA) Option {
	return func(o *options) {
		o.pen.Color = c
	}
}

// WithPenWidth sets the initial pen width.
func WithPenWidth(width float64) Option {
	return func(o *options) {
		o.pen.Width = width
	}
}

// WithFillColor sets the initial color used by BeginFill/EndFill.
func WithFillColor(c gg.RGBA) Option {
	return func(o *options) {
		o.fill = c
	}
}

// WithUndoBuffer sets how many of the most recent commands Undo can
// revert. Zero disables the command history, which saves memory for
// long drawings that are never undone.
func WithUndoBuffer(n int) Option {
	return func(o *options) {
		o.undoBuffer = n
	}
}
