package turtle

import (
	"strconv"
	"strings"
)

// CommandType identifies a Surface command.
type CommandType uint8

const (
	CmdForward CommandType = iota // Move along the heading
	CmdLeft                       // Rotate counter-clockwise
	CmdRight                      // Rotate clockwise
	CmdPenUp                      // Stop drawing
	CmdPenDown                    // Start drawing
	CmdMoveTo                     // Reposition
)

var commandTypeNames = [...]string{
	CmdForward: "forward",
	CmdLeft:    "left",
	CmdRight:   "right",
	CmdPenUp:   "penup",
	CmdPenDown: "pendown",
	CmdMoveTo:  "moveto",
}

// String returns the lower-case command name.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "unknown"
}

// IsTurn reports whether the command rotates the heading.
func (c CommandType) IsTurn() bool {
	return c == CmdLeft || c == CmdRight
}

// Command is one recorded Surface command.
// Value holds the distance of a Forward and the angle of a turn;
// X and Y hold the target of a MoveTo.
type Command struct {
	Type  CommandType
	Value float64
	X, Y  float64
}

// Forward returns a forward command.
func Forward(distance float64) Command { return Command{Type: CmdForward, Value: distance} }

// Left returns a counter-clockwise turn command.
func Left(degrees float64) Command { return Command{Type: CmdLeft, Value: degrees} }

// Right returns a clockwise turn command.
func Right(degrees float64) Command { return Command{Type: CmdRight, Value: degrees} }

// MoveTo returns a reposition command.
func MoveTo(x, y float64) Command { return Command{Type: CmdMoveTo, X: x, Y: y} }

// Apply issues the command against s.
func (c Command) Apply(s Surface) error {
	switch c.Type {
	case CmdForward:
		return s.Forward(c.Value)
	case CmdLeft:
		return s.Left(c.Value)
	case CmdRight:
		return s.Right(c.Value)
	case CmdPenUp:
		return s.PenUp()
	case CmdPenDown:
		return s.PenDown()
	case CmdMoveTo:
		return s.MoveTo(c.X, c.Y)
	}
	return ErrInvalidArgument
}

// String formats the command as a call, e.g. "forward(3)" or "moveto(-1.5, 2)".
func (c Command) String() string {
	var b strings.Builder
	b.WriteString(c.Type.String())
	b.WriteByte('(')
	switch c.Type {
	case CmdForward, CmdLeft, CmdRight:
		b.WriteString(formatFloat(c.Value))
	case CmdMoveTo:
		b.WriteString(formatFloat(c.X))
		b.WriteString(", ")
		b.WriteString(formatFloat(c.Y))
	}
	b.WriteByte(')')
	return b.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
