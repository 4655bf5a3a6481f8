package targetver

import (
	"errors"
	"fmt"
)

// ErrNoVersionProvided is returned when a nil version is given to a comparison
// or targeting operation.
var ErrNoVersionProvided = errors.New("no version provided for comparison")

// MalformedVersionError indicates a raw string that is not the wildcard token
// and does not match the dotted-numeric version grammar. It carries the
// original input, before any leading-dot fix-up.
type MalformedVersionError struct {
	Raw string
}

func newMalformedVersionError(raw string) *MalformedVersionError {
	return &MalformedVersionError{
		Raw: raw,
	}
}

func (e *MalformedVersionError) Error() string {
	return fmt.Sprintf("malformed version value: %q", e.Raw)
}

func (e *MalformedVersionError) Is(target error) bool {
	var t *MalformedVersionError
	ok := errors.As(target, &t)
	if !ok {
		return false
	}
	return t.Raw == "" || t.Raw == e.Raw
}

// IncomparableError indicates an ordering or targeting operation attempted
// with an operand that is not in long form.
type IncomparableError struct {
	Left      string
	Right     string
	Operation string
}

func newIncomparableError(left, right *Version, operation string) *IncomparableError {
	return &IncomparableError{
		Left:      left.String(),
		Right:     right.String(),
		Operation: operation,
	}
}

func (e *IncomparableError) Error() string {
	return fmt.Sprintf("incomparable version operands: left=%q right=%q operation=%q", e.Left, e.Right, e.Operation)
}

func (e *IncomparableError) Is(target error) bool {
	var t *IncomparableError
	ok := errors.As(target, &t)
	if !ok {
		return false
	}
	return (t.Left == "" || t.Left == e.Left) &&
		(t.Right == "" || t.Right == e.Right) &&
		(t.Operation == "" || t.Operation == e.Operation)
}
