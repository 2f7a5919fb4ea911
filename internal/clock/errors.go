package clock

import (
	"errors"
	"fmt"
)

// ErrParseInvalid is wrapped by every Parse failure caused by the typed text.
var ErrParseInvalid = errors.New("invalid wall-clock time")

var (
	errZeroInstant = errors.New("instant is not set")
	errEmptyZone   = errors.New("zone name is empty")
)

// FormatError reports an instant that cannot be rendered in a zone.
type FormatError struct {
	Zone string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("format in zone %q: %v", e.Zone, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
