package turtle

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/gogpu/gg"
)

func TestUndoRevertsLastCommand(t *testing.T) {
	tu, b := newTestTurtle(t)

	_ = tu.Forward(10)
	_ = tu.Forward(10)
	if n := tu.UndoBufferEntries(); n != 2 {
		t.Fatalf("UndoBufferEntries() = %d, want 2", n)
	}
	if err := tu.Undo(); err != nil {
		t.Fatalf("Undo failed: %v", err)
	}

	if p := tu.Position(); p != gg.Pt(10, 0) {
		t.Errorf("position after undo = %v, want (10, 0)", p)
	}
	if n := tu.UndoBufferEntries(); n != 1 {
		t.Errorf("UndoBufferEntries() = %d, want 1", n)
	}
	if b.beginCalls != 2 || len(b.cleared) != 1 {
		t.Errorf("undo should restart the canvas once: begin=%d clear=%d", b.beginCalls, len(b.cleared))
	}

	_ = tu.Close()
	if len(b.calls) != 1 {
		t.Fatalf("backend calls = %v, want one stroke", b.ops())
	}
	want := []gg.Point{gg.Pt(50, 50), gg.Pt(60, 50)}
	if got := b.calls[0].points; !slices.Equal(got, want) {
		t.Errorf("redrawn stroke = %v, want %v", got, want)
	}
}

func TestUndoRestoresState(t *testing.T) {
	tests := []struct {
		name  string
		run   func(*Turtle) error
		check func(*testing.T, *Turtle)
	}{
		{"heading", func(tu *Turtle) error { return tu.Left(90) }, func(t *testing.T, tu *Turtle) {
			if tu.Heading() != 0 {
				t.Errorf("heading = %v, want 0", tu.Heading())
			}
		}},
		{"pen color", func(tu *Turtle) error { return tu.SetPenColor(gg.Red) }, func(t *testing.T, tu *Turtle) {
			if tu.Pen().Color != gg.Black {
				t.Errorf("pen color = %v, want black", tu.Pen().Color)
			}
		}},
		{"pen up", func(tu *Turtle) error { return tu.PenUp() }, func(t *testing.T, tu *Turtle) {
			if !tu.IsDown() {
				t.Error("pen should be down again")
			}
		}},
		{"angle unit", func(tu *Turtle) error { return tu.Radians() }, func(t *testing.T, tu *Turtle) {
			if tu.FullCircle() != 360 {
				t.Errorf("FullCircle() = %v, want 360", tu.FullCircle())
			}
		}},
		{"circle", func(tu *Turtle) error { return tu.Circle(10, 270, 0) }, func(t *testing.T, tu *Turtle) {
			if tu.Position() != (gg.Point{}) || tu.Heading() != 0 {
				t.Errorf("pose = %v/%v, want the origin heading east", tu.Position(), tu.Heading())
			}
		}},
		{"end fill", func(tu *Turtle) error {
			_ = tu.BeginFill()
			_ = tu.Forward(10)
			_ = tu.Left(90)
			_ = tu.Forward(10)
			return tu.EndFill()
		}, func(t *testing.T, tu *Turtle) {
			if !tu.Filling() {
				t.Error("fill should be in progress again")
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tu, _ := newTestTurtle(t)
			if err := tt.run(tu); err != nil {
				t.Fatal(err)
			}
			if err := tu.Undo(); err != nil {
				t.Fatalf("Undo failed: %v", err)
			}
			tt.check(t, tu)
		})
	}
}

func TestUndoBufferLimit(t *testing.T) {
	tu, _ := newTestTurtle(t, WithUndoBuffer(2))
	for range 3 {
		_ = tu.Forward(10)
	}
	if n := tu.UndoBufferEntries(); n != 2 {
		t.Fatalf("UndoBufferEntries() = %d, want 2", n)
	}

	for range 3 {
		if err := tu.Undo(); err != nil {
			t.Fatalf("Undo failed: %v", err)
		}
	}
	// The first move is outside the buffer and survives.
	if p := tu.Position(); p != gg.Pt(10, 0) {
		t.Errorf("position = %v, want (10, 0)", p)
	}
}

func TestUndoDisabled(t *testing.T) {
	tu, b := newTestTurtle(t, WithUndoBuffer(0))
	_ = tu.Forward(10)

	if err := tu.Undo(); err != nil {
		t.Errorf("Undo with no history = %v, want nil", err)
	}
	if p := tu.Position(); p != gg.Pt(10, 0) {
		t.Errorf("position = %v, want (10, 0)", p)
	}
	if b.beginCalls != 1 {
		t.Errorf("Begin called %d times, want 1", b.beginCalls)
	}
}

func TestUndoSkipsFailedCommands(t *testing.T) {
	tu, _ := newTestTurtle(t)
	_ = tu.Forward(10)
	if err := tu.Forward(math.NaN()); err == nil {
		t.Fatal("Forward(NaN) should fail")
	}
	if n := tu.UndoBufferEntries(); n != 1 {
		t.Errorf("UndoBufferEntries() = %d, want 1", n)
	}
}

func TestUndoErrors(t *testing.T) {
	tu, b := newTestTurtle(t)
	_ = tu.Forward(10)

	b.beginErr = errors.New("device lost")
	if err := tu.Undo(); !errors.Is(err, b.beginErr) {
		t.Errorf("Undo = %v, want the Begin error", err)
	}

	_ = tu.Close()
	if err := tu.Undo(); !errors.Is(err, ErrClosed) {
		t.Errorf("Undo after Close = %v, want ErrClosed", err)
	}
}

func TestPolyRecordsVertices(t *testing.T) {
	tu, _ := newTestTurtle(t)
	_ = tu.Teleport(5, 5)

	_ = tu.BeginPoly()
	for range 4 {
		_ = tu.Forward(10)
		_ = tu.Left(90)
	}
	_ = tu.EndPoly()
	_ = tu.Forward(30)

	want := []gg.Point{gg.Pt(5, 5), gg.Pt(15, 5), gg.Pt(15, 15), gg.Pt(5, 15), gg.Pt(5, 5)}
	got := tu.Poly()
	if !slices.Equal(got, want) {
		t.Fatalf("Poly() = %v, want %v", got, want)
	}

	got[0] = gg.Pt(99, 99)
	if tu.Poly()[0] != gg.Pt(5, 5) {
		t.Error("Poly() should return a copy")
	}
}

func TestPolyIncludesPenUpMoves(t *testing.T) {
	tu, _ := newTestTurtle(t)
	_ = tu.PenUp()
	_ = tu.BeginPoly()
	_ = tu.MoveTo(0, 10)
	_ = tu.Teleport(10, 10)

	if n := len(tu.Poly()); n != 3 {
		t.Errorf("Poly() has %d vertices, want 3", n)
	}
	if tu.Poly() == nil {
		t.Error("Poly() should not be nil while recording")
	}
}

func TestAngleUnits(t *testing.T) {
	tu, _ := newTestTurtle(t)

	if err := tu.Degrees(400); err != nil {
		t.Fatalf("Degrees(400) failed: %v", err)
	}
	_ = tu.Left(100)
	if h := tu.Heading(); h != 100 {
		t.Errorf("heading = %v grads, want 100", h)
	}
	_ = tu.Forward(10)
	if p := tu.Position(); p != gg.Pt(0, 10) {
		t.Errorf("a quarter turn in grads should face north, ended at %v", p)
	}

	if err := tu.Radians(); err != nil {
		t.Fatalf("Radians failed: %v", err)
	}
	if fc := tu.FullCircle(); fc != 2*math.Pi {
		t.Errorf("FullCircle() = %v, want 2π", fc)
	}
	if h := tu.Heading(); math.Abs(h-math.Pi/2) > epsilon {
		t.Errorf("heading = %v rad, want π/2", h)
	}
	_ = tu.Right(math.Pi / 2)
	if h := tu.Heading(); math.Abs(h) > epsilon && math.Abs(h-2*math.Pi) > epsilon {
		t.Errorf("heading = %v rad, want 0", h)
	}
	if a := tu.Towards(0, 20); math.Abs(a-math.Pi/2) > epsilon {
		t.Errorf("Towards = %v rad, want π/2", a)
	}

	_ = tu.SetHeading(math.Pi)
	if h := tu.heading; math.Abs(h-180) > epsilon {
		t.Errorf("internal heading = %v degrees, want 180", h)
	}

	_ = tu.Degrees(360)
	if h := tu.Heading(); math.Abs(h-180) > epsilon {
		t.Errorf("heading = %v degrees, want 180", h)
	}
}

func TestCircleExtentInAngleUnit(t *testing.T) {
	tu, _ := newTestTurtle(t)
	_ = tu.Radians()
	if err := tu.Circle(10, math.Pi, 64); err != nil {
		t.Fatal(err)
	}
	if p := tu.Position(); math.Abs(p.X) > 1e-6 || math.Abs(p.Y-20) > 1e-6 {
		t.Errorf("half circle ended at %v, want (0, 20)", p)
	}
	if h := tu.Heading(); math.Abs(h-math.Pi) > 1e-6 {
		t.Errorf("heading = %v rad, want π", h)
	}
}

func TestDegreesInvalid(t *testing.T) {
	tu, _ := newTestTurtle(t)
	for _, fc := range []float64{0, -360, math.NaN(), math.Inf(1)} {
		if err := tu.Degrees(fc); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Degrees(%v) = %v, want ErrInvalidArgument", fc, err)
		}
	}
	if tu.FullCircle() != 360 {
		t.Errorf("FullCircle() = %v after rejected units, want 360", tu.FullCircle())
	}

	// A tiny unit makes ordinary angles overflow.
	_ = tu.Degrees(1e-320)
	if err := tu.Left(1e10); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("overflowing Left = %v, want ErrInvalidArgument", err)
	}
}
