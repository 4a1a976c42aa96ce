// Package driver is the boundary between page objects and the browser automation backend.
//
// Element handles are lazy: creating one never touches the browser, every method call
// resolves the selector again. Selectors are CSS, or XPath when they start with "//".
package driver

import (
	"errors"
	"time"
)

// Errors reported by drivers. Backends wrap them with %w so callers can use errors.Is.
var (
	ErrNavigation   = errors.New("navigation failed")
	ErrNotDisplayed = errors.New("element not displayed in time")
	ErrNotClickable = errors.New("element not clickable in time")
)

// WaitOptions tunes a visibility wait
type WaitOptions struct {
	// Timeout overrides the driver default when non-zero
	Timeout time.Duration
	// Reverse waits for the element to disappear instead
	Reverse bool
}

// Driver navigates a browser page and hands out element handles
type Driver interface {
	Open(url string) error
	Find(selector string) Element
}

// Element is a lazily resolved handle to a DOM node
type Element interface {
	// Selector returns the selector this handle resolves
	Selector() string
	// Find returns a handle for selector scoped to this element
	Find(selector string) Element

	IsDisplayed() (bool, error)
	WaitForDisplayed(opts WaitOptions) error
	WaitForClickable(opts WaitOptions) error

	Click() error
	Text() (string, error)
	Value() (string, error)
	SetValue(value string) error
}
