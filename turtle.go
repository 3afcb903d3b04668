package turtle

import (
	"fmt"
	"math"
	"slices"

	"github.com/gogpu/gg"
)

// DefaultFontSize is the text size Write uses when given a non-positive size.
const DefaultFontSize = 12.0

// Turtle is a cursor on a canvas. It keeps its pose and pen in world
// coordinates and renders pen-down motion through a Backend.
//
// Consecutive pen-down moves with the same pen are collected into one
// polyline so corners are joined rather than capped. The polyline is
// handed to the backend when the pen lifts or changes, before dots, text
// and fills, and on Close.
//
// Every command is one undo step. Undo redraws the canvas from the
// command history, so the history grows with the drawing unless it is
// disabled with WithUndoBuffer(0).
//
// A Turtle is not safe for concurrent use.
type Turtle struct {
	backend Backend
	opts    options

	pos        gg.Point // world coordinates
	heading    float64  // degrees on [0, 360)
	fullCircle float64  // user angle units per turn
	down       bool
	pen        Pen
	fill       gg.RGBA

	trail    []gg.Point // pending polyline, device coordinates
	filling  bool
	fillPath []gg.Point // polygon vertices, device coordinates
	deferred []func()   // output issued while filling

	polying bool
	poly    []gg.Point // world coordinates

	history   []func() error
	undoable  int
	replaying bool

	strokes int
	closed  bool
}

var _ Surface = (*Turtle)(nil)

// New creates a Turtle at the origin heading east with the pen down, and
// prepares b with an empty canvas.
//
//	backend, _ := turtle.NewBackend("raster")
//	t, err := turtle.New(backend, turtle.WithSize(500, 500))
//	if err != nil {
//	    return err
//	}
//	t.Forward(100)
//	t.Close()
//	backend.(turtle.FileBackend).SaveToFile("out.png")
func New(b Backend, opts ...Option) (*Turtle, error) {
	if b == nil {
		return nil, ErrNoBackend
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	if err := b.Begin(o.width, o.height); err != nil {
		return nil, err
	}
	b.Clear(o.background)

	Logger().Debug("turtle: canvas ready", "width", o.width, "height", o.height)

	t := &Turtle{backend: b, opts: o}
	t.reset()
	return t, nil
}

// Backend returns the backend the turtle renders to.
func (t *Turtle) Backend() Backend {
	return t.backend
}

// Size returns the canvas size in pixels.
func (t *Turtle) Size() (width, height int) {
	return t.opts.width, t.opts.height
}

// Close hands any pending polyline to the backend and finalizes it.
// A fill still in progress is dropped; the lines drawn during it are kept.
// Every later command fails with ErrClosed. Close is idempotent.
func (t *Turtle) Close() error {
	if t.closed {
		return nil
	}
	t.flush()
	t.filling = false
	t.drain()
	t.closed = true
	Logger().Debug("turtle: canvas closed", "strokes", t.strokes)
	return t.backend.End()
}

func (t *Turtle) check() error {
	if t.closed {
		return ErrClosed
	}
	return nil
}

// do runs op as one undo step. op must validate its arguments before it
// changes any state.
func (t *Turtle) do(op func() error) error {
	if err := t.check(); err != nil {
		return err
	}
	if err := op(); err != nil {
		return err
	}
	if !t.replaying && t.opts.undoBuffer > 0 {
		t.history = append(t.history, op)
		t.undoable = min(t.undoable+1, t.opts.undoBuffer)
	}
	return nil
}

// reset restores the state New starts from.
func (t *Turtle) reset() {
	t.pos = gg.Point{}
	t.heading = 0
	t.fullCircle = 360
	t.down = true
	t.pen = t.opts.pen
	t.fill = t.opts.fill
	t.trail = t.trail[:0]
	t.filling = false
	t.fillPath = t.fillPath[:0]
	clear(t.deferred)
	t.deferred = t.deferred[:0]
	t.polying = false
	t.poly = nil
	t.strokes = 0
}

// --------------------------------------------------------------------------
// Motion
// --------------------------------------------------------------------------

// Forward moves along the current heading by distance. Negative distances
// move backwards.
func (t *Turtle) Forward(distance float64) error {
	return t.do(func() error { return t.forward(distance) })
}

// Backward moves against the current heading by distance.
func (t *Turtle) Backward(distance float64) error {
	return t.do(func() error { return t.forward(-distance) })
}

// MoveTo moves straight to (x, y), drawing when the pen is down.
// The heading is unchanged.
func (t *Turtle) MoveTo(x, y float64) error {
	return t.do(func() error { return t.goTo(x, y, true) })
}

// Teleport jumps to (x, y) without drawing, whatever the pen state.
func (t *Turtle) Teleport(x, y float64) error {
	return t.do(func() error { return t.goTo(x, y, false) })
}

// SetX moves horizontally to x.
func (t *Turtle) SetX(x float64) error {
	return t.do(func() error { return t.goTo(x, t.pos.Y, true) })
}

// SetY moves vertically to y.
func (t *Turtle) SetY(y float64) error {
	return t.do(func() error { return t.goTo(t.pos.X, y, true) })
}

// Home moves to the origin and faces east.
func (t *Turtle) Home() error {
	return t.do(func() error {
		t.moveTo(gg.Point{}, true)
		t.heading = 0
		return nil
	})
}

func (t *Turtle) forward(distance float64) error {
	if err := checkFinite("distance", distance); err != nil {
		return err
	}
	sin, cos := sincos(t.heading)
	t.moveTo(gg.Pt(t.pos.X+distance*cos, t.pos.Y+distance*sin), true)
	return nil
}

func (t *Turtle) goTo(x, y float64, draw bool) error {
	if err := checkFinite("x", x); err != nil {
		return err
	}
	if err := checkFinite("y", y); err != nil {
		return err
	}
	t.moveTo(gg.Pt(x, y), draw)
	return nil
}

func (t *Turtle) moveTo(p gg.Point, draw bool) {
	from := t.toDevice(t.pos)
	to := t.toDevice(p)
	t.pos = p

	if t.filling {
		t.fillPath = append(t.fillPath, to)
	}
	if t.polying {
		t.poly = append(t.poly, p)
	}
	if !draw || !t.down {
		t.flush()
		return
	}
	if len(t.trail) == 0 {
		t.trail = append(t.trail, from)
	}
	t.trail = append(t.trail, to)
}

// --------------------------------------------------------------------------
// Rotation
// --------------------------------------------------------------------------

// Left rotates the heading counter-clockwise by angle, in the current
// angle unit.
func (t *Turtle) Left(angle float64) error {
	return t.do(func() error { return t.left(angle) })
}

// Right rotates the heading clockwise by angle, in the current angle unit.
func (t *Turtle) Right(angle float64) error {
	return t.do(func() error { return t.left(-angle) })
}

// SetHeading points the turtle at an absolute heading in the current
// angle unit.
func (t *Turtle) SetHeading(angle float64) error {
	return t.do(func() error {
		deg := t.toDegrees(angle)
		if err := checkFinite("heading", deg); err != nil {
			return err
		}
		t.heading = normalizeHeading(deg)
		return nil
	})
}

// Degrees sets the angle unit so that fullCircle units make one turn.
// The default is 360.
func (t *Turtle) Degrees(fullCircle float64) error {
	return t.do(func() error {
		if !(fullCircle > 0) || math.IsInf(fullCircle, 0) {
			return fmt.Errorf("full circle %v: %w", fullCircle, ErrInvalidArgument)
		}
		t.fullCircle = fullCircle
		return nil
	})
}

// Radians measures angles in radians.
func (t *Turtle) Radians() error {
	return t.Degrees(2 * math.Pi)
}

// FullCircle returns the number of angle units in one turn.
func (t *Turtle) FullCircle() float64 {
	return t.fullCircle
}

func (t *Turtle) left(angle float64) error {
	deg := t.toDegrees(angle)
	if err := checkFinite("angle", deg); err != nil {
		return err
	}
	t.turn(deg)
	return nil
}

func (t *Turtle) turn(degrees float64) {
	t.heading = normalizeHeading(t.heading + degrees)
}

func (t *Turtle) toDegrees(angle float64) float64 {
	if t.fullCircle == 360 {
		return angle
	}
	return angle * 360 / t.fullCircle
}

func (t *Turtle) fromDegrees(deg float64) float64 {
	if t.fullCircle == 360 {
		return deg
	}
	return deg * t.fullCircle / 360
}

// --------------------------------------------------------------------------
// State queries
// --------------------------------------------------------------------------

// Position returns the current position in world coordinates.
func (t *Turtle) Position() gg.Point {
	return t.pos
}

// XCor returns the x coordinate of the current position.
func (t *Turtle) XCor() float64 {
	return t.pos.X
}

// YCor returns the y coordinate of the current position.
func (t *Turtle) YCor() float64 {
	return t.pos.Y
}

// Heading returns the current heading in the current angle unit, on
// [0, FullCircle()).
func (t *Turtle) Heading() float64 {
	return t.fromDegrees(t.heading)
}

// Towards returns the heading that would point the turtle at (x, y).
func (t *Turtle) Towards(x, y float64) float64 {
	return t.fromDegrees(towards(t.pos.X, t.pos.Y, x, y))
}

// Distance returns the distance from the current position to (x, y).
func (t *Turtle) Distance(x, y float64) float64 {
	return t.pos.Distance(gg.Pt(x, y))
}

// IsDown reports whether the pen is down.
func (t *Turtle) IsDown() bool {
	return t.down
}

// --------------------------------------------------------------------------
// Pen
// --------------------------------------------------------------------------

// PenUp stops subsequent moves from drawing.
func (t *Turtle) PenUp() error {
	return t.do(func() error {
		t.flush()
		t.down = false
		return nil
	})
}

// PenDown makes subsequent moves draw.
func (t *Turtle) PenDown() error {
	return t.do(func() error {
		t.down = true
		return nil
	})
}

// Pen returns the current pen.
func (t *Turtle) Pen() Pen {
	return t.pen
}

// SetPenColor changes the stroke color.
func (t *Turtle) SetPenColor(c gg.RGBA) error {
	return t.do(func() error {
		if c != t.pen.Color {
			t.flush()
			t.pen.Color = c
		}
		return nil
	})
}

// SetPenWidth changes the stroke width.
func (t *Turtle) SetPenWidth(width float64) error {
	return t.do(func() error {
		if !(width > 0) || math.IsInf(width, 0) {
			return fmt.Errorf("pen width %v: %w", width, ErrInvalidArgument)
		}
		if width != t.pen.Width {
			t.flush()
			t.pen.Width = width
		}
		return nil
	})
}

// SetFillColor changes the color EndFill paints with.
func (t *Turtle) SetFillColor(c gg.RGBA) error {
	return t.do(func() error {
		t.fill = c
		return nil
	})
}

// --------------------------------------------------------------------------
// Shapes
// --------------------------------------------------------------------------

// Dot paints a filled circle centred on the current position. A
// non-positive diameter selects max(width+4, 2*width) of the current pen.
func (t *Turtle) Dot(diameter float64, c gg.RGBA) error {
	return t.do(func() error {
		if err := checkFinite("diameter", diameter); err != nil {
			return err
		}
		d := diameter
		if d <= 0 {
			d = math.Max(t.pen.Width+4, 2*t.pen.Width)
		}
		t.flush()
		at := t.toDevice(t.pos)
		t.emit(func() { t.backend.DrawDot(at, d, c) })
		return nil
	})
}

// Circle draws an arc of the given radius as a regular polyline. The
// centre lies radius units to the left of the turtle; a negative radius
// puts it on the right. extent is the arc angle in the current angle unit
// (a full turn for a circle). steps selects the number of segments; 0
// derives it from the radius. The heading turns by extent.
func (t *Turtle) Circle(radius, extent float64, steps int) error {
	return t.do(func() error { return t.circle(radius, extent, steps) })
}

func (t *Turtle) circle(radius, extent float64, steps int) error {
	if err := checkFinite("radius", radius); err != nil {
		return err
	}
	if err := checkFinite("extent", extent); err != nil {
		return err
	}
	if steps < 0 {
		return fmt.Errorf("circle steps %d: %w", steps, ErrInvalidArgument)
	}
	deg := t.toDegrees(extent)
	if err := checkFinite("extent", deg); err != nil {
		return err
	}
	if steps == 0 {
		frac := math.Abs(deg) / 360
		steps = 1 + int(math.Min(11+math.Abs(radius)/6, 59)*frac)
	}

	w := deg / float64(steps)
	half := w / 2
	l := 2 * radius * math.Sin(w*math.Pi/360)
	if radius < 0 {
		l, w, half = -l, -w, -half
	}
	if err := checkFinite("circle chord", l); err != nil {
		return err
	}

	t.turn(half)
	for range steps {
		if err := t.forward(l); err != nil {
			return err
		}
		t.turn(w)
	}
	t.turn(-half)
	return nil
}

// BeginFill starts collecting the vertices of a polygon to fill. Lines,
// dots and text drawn until EndFill are painted on top of the fill.
func (t *Turtle) BeginFill() error {
	return t.do(func() error {
		t.flush()
		t.filling = true
		t.fillPath = append(t.fillPath[:0], t.toDevice(t.pos))
		return nil
	})
}

// EndFill fills the polygon traced since BeginFill with the fill color,
// then paints the output drawn while filling over it.
func (t *Turtle) EndFill() error {
	return t.do(func() error {
		if !t.filling {
			return nil
		}
		t.flush()
		t.filling = false
		if len(t.fillPath) > 2 {
			t.backend.FillPolygon(t.fillPath, t.fill)
		}
		t.fillPath = t.fillPath[:0]
		t.drain()
		return nil
	})
}

// Filling reports whether a fill is in progress.
func (t *Turtle) Filling() bool {
	return t.filling
}

// BeginPoly starts recording the vertices the turtle visits, beginning
// with the current position.
func (t *Turtle) BeginPoly() error {
	return t.do(func() error {
		t.polying = true
		t.poly = []gg.Point{t.pos}
		return nil
	})
}

// EndPoly stops recording vertices.
func (t *Turtle) EndPoly() error {
	return t.do(func() error {
		t.polying = false
		return nil
	})
}

// Poly returns a copy of the vertices recorded since the last BeginPoly,
// in world coordinates.
func (t *Turtle) Poly() []gg.Point {
	return slices.Clone(t.poly)
}

// Write draws s in the pen color with its baseline starting at the
// current position. A non-positive size selects DefaultFontSize.
func (t *Turtle) Write(s string, size float64) error {
	return t.do(func() error {
		if err := checkFinite("font size", size); err != nil {
			return err
		}
		sz := size
		if sz <= 0 {
			sz = DefaultFontSize
		}
		t.flush()
		at, c := t.toDevice(t.pos), t.pen.Color
		t.emit(func() { t.backend.DrawText(s, at, sz, c) })
		return nil
	})
}

// --------------------------------------------------------------------------
// Undo
// --------------------------------------------------------------------------

// Undo reverts the most recent command. The canvas is restarted with
// Backend.Begin and the remaining history is drawn again. Undo does
// nothing when no command can be reverted.
func (t *Turtle) Undo() error {
	if err := t.check(); err != nil {
		return err
	}
	if t.undoable == 0 {
		return nil
	}
	t.undoable--
	t.history[len(t.history)-1] = nil
	t.history = t.history[:len(t.history)-1]

	Logger().Debug("turtle: undo", "history", len(t.history), "undoable", t.undoable)
	return t.replay()
}

// UndoBufferEntries returns how many commands Undo can still revert.
func (t *Turtle) UndoBufferEntries() int {
	return t.undoable
}

func (t *Turtle) replay() error {
	if err := t.backend.Begin(t.opts.width, t.opts.height); err != nil {
		return err
	}
	t.backend.Clear(t.opts.background)
	t.reset()

	t.replaying = true
	defer func() { t.replaying = false }()
	for _, op := range t.history {
		if err := op(); err != nil {
			return err
		}
	}
	return nil
}

// --------------------------------------------------------------------------
// Rendering
// --------------------------------------------------------------------------

// toDevice converts world coordinates (origin centred, y up) to device
// coordinates (origin top-left, y down).
func (t *Turtle) toDevice(p gg.Point) gg.Point {
	return gg.Pt(float64(t.opts.width)/2+p.X, float64(t.opts.height)/2-p.Y)
}

// flush hands the pending polyline to the backend.
func (t *Turtle) flush() {
	if len(t.trail) >= 2 {
		points, pen := t.trail, t.pen
		if t.filling {
			points = slices.Clone(points)
		}
		t.emit(func() { t.backend.StrokePolyline(points, pen) })
		t.strokes++
	}
	t.trail = t.trail[:0]
}

// emit draws now, or after the fill when one is in progress.
func (t *Turtle) emit(draw func()) {
	if t.filling {
		t.deferred = append(t.deferred, draw)
		return
	}
	draw()
}

// drain draws the output held back during a fill.
func (t *Turtle) drain() {
	for _, draw := range t.deferred {
		draw()
	}
	clear(t.deferred)
	t.deferred = t.deferred[:0]
}
