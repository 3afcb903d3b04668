package turtle

// Surface is the command set a drawing routine issues against a cursor.
//
// Headings are in degrees: 0 points east and angles grow counter-clockwise.
// A Turtle switched to other units with Degrees or Radians reads its
// angles in those units instead.
// Coordinates are world units with the origin at the canvas centre and y
// pointing up.
//
// Every command reports failure so that errors raised by the surface
// itself (for example a closed canvas) reach the caller unmodified.
//
// Both *Turtle and *Recorder implement Surface.
type Surface interface {
	// Forward moves along the current heading by distance, drawing a line
	// when the pen is down.
	Forward(distance float64) error

	// Left rotates the heading counter-clockwise in place.
	Left(degrees float64) error

	// Right rotates the heading clockwise in place.
	Right(degrees float64) error

	// PenUp stops subsequent moves from drawing.
	PenUp() error

	// PenDown makes subsequent moves draw.
	PenDown() error

	// MoveTo repositions the cursor at (x, y) without changing its heading.
	MoveTo(x, y float64) error
}
