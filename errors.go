package reqfreq

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLine indicates a log line with fewer than six fields.
	ErrMalformedLine = errors.New("malformed line")

	// ErrUnparseableStatus indicates a status field that is not a base-10
	// integer.
	ErrUnparseableStatus = errors.New("unparseable status")
)

// LineError records a log line that could not be turned into a Record, and
// why.
type LineError struct {
	Line int // 1-based
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Policy says what a pipe does with a line that cannot be parsed.
type Policy int

const (
	// Abort sets the pipe's error status at the first bad line. This is the
	// default.
	Abort Policy = iota
	// Skip logs the bad line and carries on without it.
	Skip
)

func (p Policy) String() string {
	switch p {
	case Abort:
		return "abort"
	case Skip:
		return "skip"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy returns the Policy named by s ("abort" or "skip").
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "abort", "":
		return Abort, nil
	case "skip":
		return Skip, nil
	}
	return Abort, fmt.Errorf("unknown policy %q (want abort or skip)", s)
}
