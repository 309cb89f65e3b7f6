// Released under an MIT license. See LICENSE.

package engine

// Status describes where the reduction loop stands.
type Status int

// Engine states. Every state other than Running is terminal.
const (
	Running Status = iota
	Done
	Exhausted
	Stuck
	ParseFailed
	Malformed
	Interrupted
)

// String returns a string representation of Status. Useful for debugging.
func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Done:
		return "done"
	case Exhausted:
		return "out of fuel"
	case Stuck:
		return "stuck"
	case ParseFailed:
		return "parse failed"
	case Malformed:
		return "malformed"
	case Interrupted:
		return "interrupted"
	}

	return "unknown"
}

// Halted returns true if the loop will not make further progress.
func (s Status) Halted() bool {
	return s != Running
}

// Incomplete returns true if the loop stopped on a term it could not reduce.
func (s Status) Incomplete() bool {
	return s == Stuck || s == ParseFailed || s == Malformed
}
