package colors

import (
	"errors"
	"fmt"
)

// ErrFormat is matched by every parse failure.
var ErrFormat = errors.New("colors: unsupported color format")

// FormatError reports text that matches none of the supported grammars or a
// channel token that is not a strict decimal number.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("colors: invalid color %q", e.Input)
	}
	return fmt.Sprintf("colors: invalid color %q: %s", e.Input, e.Reason)
}

func (e *FormatError) Unwrap() error { return ErrFormat }

func formatErr(input, reason string) error {
	return &FormatError{Input: input, Reason: reason}
}
