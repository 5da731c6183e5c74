package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotFound reports an absent tenant, domain mapping, or item. It is a
// normal outcome (unregistered domain, unknown item), not a fault.
var ErrNotFound = errors.New("not found")

// InvalidInputError reports a missing required field or an out-of-range
// value, detected before any upstream call.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return e.Message
}

// NewInvalidInput builds an InvalidInputError from a format string.
func NewInvalidInput(format string, args ...any) *InvalidInputError {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}

// UpstreamError reports that an upstream system responded but with an
// unexpected or incomplete payload, such as a non-2xx gateway status or a
// success envelope missing an expected field.
type UpstreamError struct {
	Message string
	Payload json.RawMessage
}

func (e *UpstreamError) Error() string {
	return e.Message
}

// TransportError reports that an upstream system was unreachable or failed
// at the transport level. Never retried; the caller must re-issue.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsInvalidInput reports whether err is a caller input error.
func IsInvalidInput(err error) bool {
	var ie *InvalidInputError
	return errors.As(err, &ie)
}
