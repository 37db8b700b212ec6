package combo

import (
	"errors"
	"fmt"
)

// Parse errors
var (
	ErrEmpty             = errors.New("empty key combination")
	ErrUnknownModifier   = errors.New("unknown modifier")
	ErrUnknownKey        = errors.New("unknown key")
	ErrFunctionKeyRange  = errors.New("function key out of range")
	ErrDanglingSeparator = errors.New("dangling separator")
)

// ParseError describes why a string could not be parsed as a key
// combination. Err is one of the sentinel errors above.
type ParseError struct {
	// Input is the string handed to Parse
	Input string
	// Token is the offending token, empty for ErrEmpty
	Token string
	// Pos is the byte offset of Token in Input
	Pos int
	Err error
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("%q can't be parsed as a key: %s", e.Input, e.Err)
	}

	return fmt.Sprintf(
		"%q can't be parsed as a key: %s %q at position %d",
		e.Input,
		e.Err,
		e.Token,
		e.Pos,
	)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func newParseError(input string, tok token, err error) *ParseError {
	return &ParseError{
		Input: input,
		Token: tok.text,
		Pos:   tok.pos,
		Err:   err,
	}
}
