package parser

import (
	"errors"
	"fmt"
)

// Reason classifies why a line was rejected.
type Reason int

const (
	MalformedBrackets Reason = iota
	NonNumeric
	OutOfBounds
	Inverted
)

var (
	ErrMalformedBrackets = errors.New("malformed brackets")
	ErrNonNumeric        = errors.New("non numerical entry")
	ErrOutOfBounds       = errors.New("zip code out of bounds")
	ErrInverted          = errors.New("inverted range")
)

var reasonErrs = map[Reason]error{
	MalformedBrackets: ErrMalformedBrackets,
	NonNumeric:        ErrNonNumeric,
	OutOfBounds:       ErrOutOfBounds,
	Inverted:          ErrInverted,
}

func (r Reason) String() string {
	if err, ok := reasonErrs[r]; ok {
		return err.Error()
	}
	return fmt.Sprintf("reason(%d)", int(r))
}

// RejectError is returned for a line that does not hold a valid range.
type RejectError struct {
	Line   int
	Reason Reason
	Input  string
	// Err carries the underlying conversion or validation failure, if any.
	Err error
}

func (e *RejectError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("error in line %d: %s: %q: %v", e.Line, e.Reason, e.Input, e.Err)
	}
	return fmt.Sprintf("error in line %d: %s: %q", e.Line, e.Reason, e.Input)
}

// Is matches the sentinel error of the reject reason.
func (e *RejectError) Is(target error) bool {
	return reasonErrs[e.Reason] == target
}

func (e *RejectError) Unwrap() error { return e.Err }

// ReasonOf returns the reject reason carried by err.
func ReasonOf(err error) (Reason, bool) {
	var re *RejectError
	if errors.As(err, &re) {
		return re.Reason, true
	}
	return 0, false
}
