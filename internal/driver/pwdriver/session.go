package pwdriver

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/themizzi/jupitertoys/internal/driver"
)

// Session is one browser context and page; it implements driver.Driver
type Session struct {
	context playwright.BrowserContext
	page    playwright.Page
	timeout time.Duration
}

var _ driver.Driver = (*Session)(nil)

// Open navigates the page to url
func (s *Session) Open(url string) error {
	if _, err := s.page.Goto(url); err != nil {
		return fmt.Errorf("%w: %s: %v", driver.ErrNavigation, url, err)
	}
	return nil
}

// Find returns a lazy handle for selector on the page
func (s *Session) Find(selector string) driver.Element {
	return &element{
		selector: selector,
		locator:  s.page.Locator(toPlaywrightSelector(selector)),
		timeout:  s.timeout,
	}
}

// URL returns the current page URL
func (s *Session) URL() string {
	return s.page.URL()
}

// Screenshot saves a full-page png named name under dir and returns its path
func (s *Session) Screenshot(dir, name string) (string, error) {
	path, err := screenshotPath(dir, name)
	if err != nil {
		return "", err
	}
	if _, err := s.page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	}); err != nil {
		return "", fmt.Errorf("could not take screenshot: %w", err)
	}
	return path, nil
}

// Close closes the page and its context
func (s *Session) Close() error {
	if err := s.page.Close(); err != nil {
		return fmt.Errorf("could not close page: %w", err)
	}
	if err := s.context.Close(); err != nil {
		return fmt.Errorf("could not close context: %w", err)
	}
	return nil
}

// toPlaywrightSelector prefixes XPath expressions so playwright's engine detection
// is never ambiguous, e.g. for "(//a)[1]"
func toPlaywrightSelector(selector string) string {
	if strings.HasPrefix(selector, "//") || strings.HasPrefix(selector, "(//") {
		return "xpath=" + selector
	}
	return selector
}

type element struct {
	selector string
	locator  playwright.Locator
	timeout  time.Duration
}

func (e *element) Selector() string {
	return e.selector
}

func (e *element) Find(selector string) driver.Element {
	// scoped XPath must be relative to the row, not the document
	if strings.HasPrefix(selector, "//") {
		selector = "." + selector
	}
	return &element{
		selector: e.selector + " >> " + selector,
		locator:  e.locator.Locator(toPlaywrightSelector(selector)),
		timeout:  e.timeout,
	}
}

func (e *element) IsDisplayed() (bool, error) {
	visible, err := e.locator.IsVisible()
	if err != nil {
		return false, fmt.Errorf("checking visibility of %s: %w", e.selector, err)
	}
	return visible, nil
}

func (e *element) WaitForDisplayed(opts driver.WaitOptions) error {
	state := playwright.WaitForSelectorStateVisible
	if opts.Reverse {
		state = playwright.WaitForSelectorStateHidden
	}

	if err := e.locator.WaitFor(playwright.LocatorWaitForOptions{
		State:   state,
		Timeout: e.timeoutMS(opts.Timeout),
	}); err != nil {
		if opts.Reverse {
			return fmt.Errorf("%w: %s still displayed: %v", driver.ErrNotDisplayed, e.selector, err)
		}
		return fmt.Errorf("%w: %s: %v", driver.ErrNotDisplayed, e.selector, err)
	}
	return nil
}

// WaitForClickable runs playwright's actionability checks with a trial click
func (e *element) WaitForClickable(opts driver.WaitOptions) error {
	if err := e.locator.Click(playwright.LocatorClickOptions{
		Trial:   playwright.Bool(true),
		Timeout: e.timeoutMS(opts.Timeout),
	}); err != nil {
		return fmt.Errorf("%w: %s: %v", driver.ErrNotClickable, e.selector, err)
	}
	return nil
}

func (e *element) Click() error {
	if err := e.locator.Click(); err != nil {
		return e.wrap("click", err)
	}
	return nil
}

func (e *element) Text() (string, error) {
	text, err := e.locator.InnerText()
	if err != nil {
		return "", e.wrap("read text of", err)
	}
	return strings.TrimSpace(text), nil
}

func (e *element) Value() (string, error) {
	value, err := e.locator.InputValue()
	if err != nil {
		return "", e.wrap("read value of", err)
	}
	return value, nil
}

func (e *element) SetValue(value string) error {
	if err := e.locator.Fill(value); err != nil {
		return e.wrap("set value of", err)
	}
	return nil
}

func (e *element) timeoutMS(override time.Duration) *float64 {
	timeout := e.timeout
	if override > 0 {
		timeout = override
	}
	return playwright.Float(float64(timeout.Milliseconds()))
}

// wrap maps playwright timeouts onto driver.ErrNotDisplayed: an interaction that
// times out did so waiting for its target to become actionable
func (e *element) wrap(action string, err error) error {
	if errors.Is(err, playwright.ErrTimeout) {
		return fmt.Errorf("%w: could not %s %s: %v", driver.ErrNotDisplayed, action, e.selector, err)
	}
	return fmt.Errorf("could not %s %s: %w", action, e.selector, err)
}
