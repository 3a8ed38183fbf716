package dimacs

import "fmt"

// Kind identifies the stage at which parsing failed.
type Kind int

const (
	// ReadError means that the input could not be read.
	ReadError Kind = iota
	// HeaderError means that the problem line is malformed.
	HeaderError
	// ClauseError means that a clause line contains a malformed literal.
	ClauseError
)

func (k Kind) String() string {
	switch k {
	case ReadError:
		return "read error"
	case HeaderError:
		return "malformed header"
	case ClauseError:
		return "malformed clause"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// FormatError is returned when a DIMACS input cannot be parsed.
type FormatError struct {
	Kind Kind
	Line int    // 1-based, 0 if the error is not tied to a line
	Text string // offending line, if any
	Err  error
}

func (e *FormatError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Err)
	}
	return fmt.Sprintf("line %d: %s %q: %s", e.Line, e.Kind, e.Text, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
