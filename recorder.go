package turtle

// Recorder is a Surface that captures commands instead of drawing them.
// Recorded commands can be inspected or replayed to another Surface.
//
//	rec := turtle.NewRecorder()
//	_ = fractal.New(rec).Draw(2, 243)
//	fmt.Println(rec.Count(turtle.CmdForward)) // 25
//	_ = rec.Playback(t)
//
// The zero value is ready to use.
type Recorder struct {
	commands []Command
}

var _ Surface = (*Recorder)(nil)

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(c Command) error {
	r.commands = append(r.commands, c)
	return nil
}

// Forward records a forward command.
func (r *Recorder) Forward(distance float64) error { return r.record(Forward(distance)) }

// Left records a counter-clockwise turn.
func (r *Recorder) Left(degrees float64) error { return r.record(Left(degrees)) }

// Right records a clockwise turn.
func (r *Recorder) Right(degrees float64) error { return r.record(Right(degrees)) }

// PenUp records a pen-up command.
func (r *Recorder) PenUp() error { return r.record(Command{Type: CmdPenUp}) }

// PenDown records a pen-down command.
func (r *Recorder) PenDown() error { return r.record(Command{Type: CmdPenDown}) }

// MoveTo records a reposition.
func (r *Recorder) MoveTo(x, y float64) error { return r.record(MoveTo(x, y)) }

// Commands returns the recorded commands in issue order.
// The returned slice must not be modified.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// Count returns how many commands of the given type were recorded.
func (r *Recorder) Count(t CommandType) int {
	n := 0
	for _, c := range r.commands {
		if c.Type == t {
			n++
		}
	}
	return n
}

// Reset discards all recorded commands.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
}

// Playback issues every recorded command against s in order.
// It stops at the first error and returns it unchanged.
func (r *Recorder) Playback(s Surface) error {
	for _, c := range r.commands {
		if err := c.Apply(s); err != nil {
			return err
		}
	}
	return nil
}
