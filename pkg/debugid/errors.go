package debugid

import (
	"errors"
	"fmt"
)

// Parse failures fall into exactly one of these classes. Callers select on
// them with errors.Is; the identifier input comes from arbitrary files, so
// every malformed form maps to an error, never a panic or a partial value.
var (
	// ErrInvalidLength indicates the hex body is not 32 hex digits wide.
	ErrInvalidLength = errors.New("hex body has invalid length")

	// ErrInvalidCharacter indicates a byte outside the accepted character
	// set, or a hyphen in the wrong position.
	ErrInvalidCharacter = errors.New("unexpected character in identifier")

	// ErrInvalidAppendix indicates a trailing appendix segment that is not
	// a hex number fitting 32 bits.
	ErrInvalidAppendix = errors.New("appendix is not a 32-bit hex number")
)

// ParseError is returned by Parse and the unmarshaling hooks. It carries the
// rejected input and unwraps to one of the sentinel error classes above.
type ParseError struct {
	// Input is the string that was rejected.
	Input string

	class error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("debugid: %v: %q", e.class, e.Input)
}

func (e *ParseError) Unwrap() error {
	return e.class
}

func parseError(input string, class error) error {
	return &ParseError{Input: input, class: class}
}
