package pages

import (
	"errors"
	"fmt"
)

// Page-level failures
var (
	// ErrMismatch is matched by every *MismatchError
	ErrMismatch = errors.New("value mismatch")
	// ErrCartEmpty is returned when cart rows are validated on an empty cart
	ErrCartEmpty = errors.New("cannot validate items: the cart is empty")
)

// MismatchError reports a value read from the page that differs from the expectation
type MismatchError struct {
	Subject  string
	Expected string
	Actual   string
	// Contains marks a substring expectation rather than equality
	Contains bool
}

func (e *MismatchError) Error() string {
	if e.Contains {
		return fmt.Sprintf("%s: expected to contain %q, got %q", e.Subject, e.Expected, e.Actual)
	}
	return fmt.Sprintf("%s: expected %q, got %q", e.Subject, e.Expected, e.Actual)
}

// Is lets errors.Is(err, ErrMismatch) match any mismatch
func (e *MismatchError) Is(target error) bool {
	return target == ErrMismatch
}

// expectEqual returns a *MismatchError when actual differs from expected
func expectEqual(subject, expected, actual string) error {
	if actual != expected {
		return &MismatchError{Subject: subject, Expected: expected, Actual: actual}
	}
	return nil
}
