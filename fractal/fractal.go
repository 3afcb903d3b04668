// Package fractal draws self-similar turtle curves.
//
// A Drawer issues forward and turn commands against any turtle.Surface,
// so the same routine renders to a canvas through *turtle.Turtle or is
// captured for inspection through *turtle.Recorder:
//
//	rec := turtle.NewRecorder()
//	d := fractal.New(rec)
//	if err := d.Draw(1, 9); err != nil {
//	    return err
//	}
//	// rec now holds forward(3) left(90) forward(3) right(90) forward(3)
//	// right(90) forward(3) left(90) forward(3)
//
// DrawFigure closes four copies of the curve into a square outline centred
// on the origin.
package fractal

import (
	"fmt"
	"math"

	turtle "github.com/gogpu/gg-turtle"
)

// Drawer draws a Curve on a Surface. It keeps no state between calls.
type Drawer struct {
	surface turtle.Surface
	curve   Curve
}

// New returns a Drawer for the Square curve.
func New(s turtle.Surface) *Drawer {
	return &Drawer{surface: s, curve: Square}
}

// NewWithCurve returns a Drawer for an arbitrary curve.
func NewWithCurve(s turtle.Surface, c Curve) *Drawer {
	return &Drawer{surface: s, curve: c}
}

// Curve returns the curve the drawer renders.
func (d *Drawer) Curve() Curve {
	return d.curve
}

// Draw renders one side of the curve: order 0 is a single forward move of
// length; higher orders recurse on thirds of length with the curve's
// turns in between. Invalid parameters fail with turtle.ErrInvalidArgument
// before any command is issued. Surface errors are returned unchanged.
func (d *Drawer) Draw(order int, length float64) error {
	if err := validate(order, length); err != nil {
		return err
	}
	return d.draw(order, length)
}

// DrawFigure lifts the pen, moves to the top-left corner of a square of
// side length centred on the origin, lowers the pen and draws the curve
// four times with a right turn of 90 degrees after each.
func (d *Drawer) DrawFigure(order int, length float64) error {
	if err := validate(order, length); err != nil {
		return err
	}

	turtle.Logger().Debug("fractal: drawing figure",
		"curve", d.curve.Name,
		"order", order,
		"length", length,
		"segments", 4*d.curve.Segments(order))

	if err := d.surface.PenUp(); err != nil {
		return err
	}
	if err := d.surface.MoveTo(-length/2, length/2); err != nil {
		return err
	}
	if err := d.surface.PenDown(); err != nil {
		return err
	}
	for range 4 {
		if err := d.draw(order, length); err != nil {
			return err
		}
		if err := d.surface.Right(90); err != nil {
			return err
		}
	}
	return nil
}

func (d *Drawer) draw(order int, length float64) error {
	if order == 0 {
		return d.surface.Forward(length)
	}

	sub := length / 3
	if err := d.draw(order-1, sub); err != nil {
		return err
	}
	for _, angle := range d.curve.Turns {
		if err := d.turn(angle); err != nil {
			return err
		}
		if err := d.draw(order-1, sub); err != nil {
			return err
		}
	}
	return nil
}

func (d *Drawer) turn(angle float64) error {
	if angle < 0 {
		return d.surface.Right(-angle)
	}
	return d.surface.Left(angle)
}

func validate(order int, length float64) error {
	if order < 0 {
		return fmt.Errorf("fractal: order %d: %w", order, turtle.ErrInvalidArgument)
	}
	if !(length > 0) || math.IsInf(length, 1) {
		return fmt.Errorf("fractal: length %v: %w", length, turtle.ErrInvalidArgument)
	}
	return nil
}
