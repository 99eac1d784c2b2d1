package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidArgument is matched by every construction-time validation failure.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError names the offending field and, when the field is an
// enumeration, the set of accepted values.
type InvalidArgumentError struct {
	Field   string
	Value   any
	Reason  string
	Allowed []string
}

func (e *InvalidArgumentError) Error() string {
	msg := fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
	if len(e.Allowed) > 0 {
		quoted := make([]string, len(e.Allowed))
		for i, a := range e.Allowed {
			quoted[i] = fmt.Sprintf("%q", a)
		}
		msg += fmt.Sprintf(" (allowed: {%s})", strings.Join(quoted, ","))
	}
	return msg
}

// Is lets errors.Is(err, ErrInvalidArgument) match.
func (e *InvalidArgumentError) Is(target error) bool { return target == ErrInvalidArgument }

func invalidArgument(field string, value any, reason string, allowed ...string) error {
	return &InvalidArgumentError{Field: field, Value: value, Reason: reason, Allowed: allowed}
}
