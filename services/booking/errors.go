package booking

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDateNotBookable rejects a date tap outside the resolved available set.
// No flow state changes when this is returned.
var ErrDateNotBookable = errors.New("date is not in the available set")

// ErrStaleSlots marks a slot response that arrived for a date the user has
// already navigated away from. The response is discarded.
var ErrStaleSlots = errors.New("slot response is for a no longer selected date")

// ErrNotCancellable rejects a cancel request for a completed or already
// cancelled booking before it reaches the backend.
var ErrNotCancellable = errors.New("booking can no longer be cancelled")

// ValidationError carries per-field messages keyed by the stable field
// identifiers.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	return fmt.Sprintf("booking draft failed validation: %s", strings.Join(fields, ", "))
}
