package turtle

import (
	"errors"
	"testing"

	"github.com/gogpu/gg"
)

// TestDefaultOptions verifies the settings New uses without options.
func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()

	if o.width != DefaultWidth || o.height != DefaultHeight {
		t.Errorf("size = %dx%d, want %dx%d", o.width, o.height, DefaultWidth, DefaultHeight)
	}
	if o.background != gg.White {
		t.Errorf("background = %v, want white", o.background)
	}
	if o.pen.Color != gg.Black || o.pen.Width != DefaultPenWidth {
		t.Errorf("pen = %+v, want black width %v", o.pen, DefaultPenWidth)
	}
	if err := o.validate(); err != nil {
		t.Errorf("default options invalid: %v", err)
	}
}

// TestOptionsApply verifies each option sets its field.
func TestOptionsApply(t *testing.T) {
	o := defaultOptions()
	for _, opt := range []Option{
		WithSize(640, 480),
		WithBackground(gg.Blue),
		WithPenColor(gg.Red),
		WithPenWidth(2.5),
		WithFillColor(gg.Green),
	} {
		opt(&o)
	}

	if o.width != 640 || o.height != 480 {
		t.Errorf("size = %dx%d, want 640x480", o.width, o.height)
	}
	if o.background != gg.Blue {
		t.Errorf("background = %v, want blue", o.background)
	}
	if o.pen != (Pen{Color: gg.Red, Width: 2.5}) {
		t.Errorf("pen = %+v", o.pen)
	}
	if o.fill != gg.Green {
		t.Errorf("fill = %v, want green", o.fill)
	}
}

// TestOptionsLastWins verifies later options override earlier ones.
func TestOptionsLastWins(t *testing.T) {
	b := newMockBackend("opts")
	tu, err := New(b, WithSize(10, 10), WithSize(20, 30), WithPenWidth(4), WithPenWidth(1))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if w, h := tu.Size(); w != 20 || h != 30 {
		t.Errorf("Size() = %dx%d, want 20x30", w, h)
	}
	if b.width != 20 || b.height != 30 {
		t.Errorf("Begin got %dx%d, want 20x30", b.width, b.height)
	}
	if tu.Pen().Width != 1 {
		t.Errorf("pen width = %v, want 1", tu.Pen().Width)
	}
}

func TestOptionsValidate(t *testing.T) {
	o := defaultOptions()
	WithSize(-5, 5)(&o)
	if err := o.validate(); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("validate() = %v, want ErrInvalidArgument", err)
	}
}

func TestUndoBufferOption(t *testing.T) {
	o := defaultOptions()
	if o.undoBuffer != DefaultUndoBuffer {
		t.Errorf("undo buffer = %d, want %d", o.undoBuffer, DefaultUndoBuffer)
	}
	WithUndoBuffer(-1)(&o)
	if err := o.validate(); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("validate() = %v, want ErrInvalidArgument", err)
	}
}
