package fractal

import (
	"fmt"
	"sort"
)

// Curve describes a self-similar curve by its generator: each segment of
// order n is replaced by len(Turns)+1 segments of order n-1, each a third
// as long, with Turns[i] degrees of rotation between segment i and i+1.
// Positive turns are counter-clockwise (left), negative are clockwise.
type Curve struct {
	Name  string
	Turns []float64
}

var (
	// Square is the square-wave curve: up, across, down, across.
	Square = Curve{Name: "square", Turns: []float64{90, -90, -90, 90}}

	// Spiky is the triangular Koch-style curve.
	Spiky = Curve{Name: "spiky", Turns: []float64{60, -120, 60}}
)

var curves = map[string]Curve{
	Square.Name: Square,
	Spiky.Name:  Spiky,
}

// CurveByName returns the built-in curve with the given name.
func CurveByName(name string) (Curve, error) {
	c, ok := curves[name]
	if !ok {
		return Curve{}, fmt.Errorf("fractal: unknown curve %q", name)
	}
	return c, nil
}

// Curves returns the names of the built-in curves in alphabetical order.
func Curves() []string {
	names := make([]string, 0, len(curves))
	for name := range curves {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Segments returns the number of forward moves Draw issues for order.
func (c Curve) Segments(order int) int {
	n := 1
	for range order {
		n *= len(c.Turns) + 1
	}
	return n
}

// TurnCount returns the number of turns Draw issues for order. It follows
// T(0) = 0, T(n) = (k+1)·T(n-1) + k for a generator with k turns.
func (c Curve) TurnCount(order int) int {
	return c.Segments(order) - 1
}

// PathLength returns the summed forward distance Draw covers for order
// and length. Each order multiplies it by (k+1)/3.
func (c Curve) PathLength(order int, length float64) float64 {
	for range order {
		length = length * float64(len(c.Turns)+1) / 3
	}
	return length
}

// NetTurn returns the total rotation of one generator step in degrees.
// A curve with a non-zero net turn does not preserve the heading.
func (c Curve) NetTurn() float64 {
	var sum float64
	for _, t := range c.Turns {
		sum += t
	}
	return sum
}
