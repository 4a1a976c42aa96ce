// Package drivertest provides an in-memory driver.Driver for tests.
//
// Tests register the elements a page should contain, optionally with hooks that mutate
// other elements (a click that reveals an error message, a fill that hides it), and
// afterwards inspect the recorded call log.
package drivertest

import (
	"fmt"
	"sync"

	"github.com/themizzi/jupitertoys/internal/driver"
)

// Operations recorded in the call log
const (
	OpOpen             = "open"
	OpFind             = "find"
	OpIsDisplayed      = "isDisplayed"
	OpWaitForDisplayed = "waitForDisplayed"
	OpWaitForHidden    = "waitForHidden"
	OpWaitForClickable = "waitForClickable"
	OpClick            = "click"
	OpText             = "text"
	OpValue            = "value"
	OpSetValue         = "setValue"
)

// Call is one recorded driver interaction
type Call struct {
	Op       string
	Selector string
	Arg      string
}

// Element is the fake DOM node behind a selector
type Element struct {
	Displayed bool
	// Clickable only counts while Displayed is true
	Clickable bool
	Text      string
	Value     string

	// Err, when set, is returned by every interaction with the element
	Err error

	OnClick    func()
	OnSetValue func(value string)
}

// Driver is an in-memory driver.Driver
type Driver struct {
	mu       sync.Mutex
	elements map[string]*Element
	calls    []Call

	// OpenErr, when set, fails every Open
	OpenErr error
	OnOpen  func(url string)
}

var _ driver.Driver = (*Driver)(nil)

// New creates an empty driver
func New() *Driver {
	return &Driver{elements: make(map[string]*Element)}
}

// Scoped returns the key of child resolved inside parent, as produced by Element.Find
func Scoped(parent, child string) string {
	return parent + " >> " + child
}

// Add registers a displayed, clickable element for selector and returns it.
// Adding an existing selector returns the registered element.
func (d *Driver) Add(selector string) *Element {
	d.mu.Lock()
	defer d.mu.Unlock()

	if el, ok := d.elements[selector]; ok {
		return el
	}
	el := &Element{Displayed: true, Clickable: true}
	d.elements[selector] = el
	return el
}

// Remove drops the element for selector so later lookups find nothing
func (d *Driver) Remove(selector string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.elements, selector)
}

// Element returns the registered element or nil
func (d *Driver) Element(selector string) *Element {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.elements[selector]
}

// Calls returns a copy of the call log
func (d *Driver) Calls() []Call {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]Call, len(d.calls))
	copy(out, d.calls)
	return out
}

// CallsTo returns the recorded calls for one selector
func (d *Driver) CallsTo(selector string) []Call {
	var out []Call
	for _, c := range d.Calls() {
		if c.Selector == selector {
			out = append(out, c)
		}
	}
	return out
}

// Count returns how many calls of op were made against selector
func (d *Driver) Count(op, selector string) int {
	n := 0
	for _, c := range d.CallsTo(selector) {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Opened returns every URL passed to Open
func (d *Driver) Opened() []string {
	var out []string
	for _, c := range d.Calls() {
		if c.Op == OpOpen {
			out = append(out, c.Arg)
		}
	}
	return out
}

// Reset clears the call log
func (d *Driver) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = nil
}

func (d *Driver) record(op, selector, arg string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, Call{Op: op, Selector: selector, Arg: arg})
}

// Open records the navigation and runs OnOpen
func (d *Driver) Open(url string) error {
	d.record(OpOpen, "", url)
	if d.OpenErr != nil {
		return fmt.Errorf("%w: %s: %v", driver.ErrNavigation, url, d.OpenErr)
	}
	if d.OnOpen != nil {
		d.OnOpen(url)
	}
	return nil
}

// Find returns a lazy handle; the element is looked up on each interaction
func (d *Driver) Find(selector string) driver.Element {
	d.record(OpFind, selector, "")
	return &handle{d: d, selector: selector}
}

type handle struct {
	d        *Driver
	selector string
}

func (h *handle) Selector() string {
	return h.selector
}

func (h *handle) Find(selector string) driver.Element {
	return h.d.Find(Scoped(h.selector, selector))
}

func (h *handle) IsDisplayed() (bool, error) {
	h.d.record(OpIsDisplayed, h.selector, "")
	el := h.d.Element(h.selector)
	if el == nil {
		return false, nil
	}
	if el.Err != nil {
		return false, el.Err
	}
	return el.Displayed, nil
}

func (h *handle) WaitForDisplayed(opts driver.WaitOptions) error {
	el := h.d.Element(h.selector)
	if opts.Reverse {
		h.d.record(OpWaitForHidden, h.selector, opts.Timeout.String())
		if el != nil && el.Err != nil {
			return el.Err
		}
		if el != nil && el.Displayed {
			return fmt.Errorf("%w: %s still displayed", driver.ErrNotDisplayed, h.selector)
		}
		return nil
	}

	h.d.record(OpWaitForDisplayed, h.selector, opts.Timeout.String())
	if el != nil && el.Err != nil {
		return el.Err
	}
	if el == nil || !el.Displayed {
		return fmt.Errorf("%w: %s", driver.ErrNotDisplayed, h.selector)
	}
	return nil
}

func (h *handle) WaitForClickable(opts driver.WaitOptions) error {
	h.d.record(OpWaitForClickable, h.selector, opts.Timeout.String())
	el := h.d.Element(h.selector)
	if el != nil && el.Err != nil {
		return el.Err
	}
	if el == nil || !el.Displayed || !el.Clickable {
		return fmt.Errorf("%w: %s", driver.ErrNotClickable, h.selector)
	}
	return nil
}

func (h *handle) Click() error {
	h.d.record(OpClick, h.selector, "")
	el, err := h.present()
	if err != nil {
		return err
	}
	if el.OnClick != nil {
		el.OnClick()
	}
	return nil
}

func (h *handle) Text() (string, error) {
	h.d.record(OpText, h.selector, "")
	el, err := h.present()
	if err != nil {
		return "", err
	}
	return el.Text, nil
}

func (h *handle) Value() (string, error) {
	h.d.record(OpValue, h.selector, "")
	el, err := h.present()
	if err != nil {
		return "", err
	}
	return el.Value, nil
}

func (h *handle) SetValue(value string) error {
	h.d.record(OpSetValue, h.selector, value)
	el, err := h.present()
	if err != nil {
		return err
	}
	el.Value = value
	if el.OnSetValue != nil {
		el.OnSetValue(value)
	}
	return nil
}

// present returns the element if it exists, is displayed and has no injected error
func (h *handle) present() (*Element, error) {
	el := h.d.Element(h.selector)
	if el == nil || !el.Displayed {
		return nil, fmt.Errorf("%w: %s", driver.ErrNotDisplayed, h.selector)
	}
	if el.Err != nil {
		return nil, el.Err
	}
	return el, nil
}
