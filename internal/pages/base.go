// Package pages holds the page objects for the Jupiter Toys site.
//
// Page objects keep no state: element accessors build a fresh driver handle on every call,
// so nothing read from the DOM outlives the call that read it. Every action waits for its
// element before interacting, and every failure is logged and returned.
package pages

import (
	"fmt"

	"github.com/themizzi/jupitertoys/internal/driver"
	"github.com/themizzi/jupitertoys/internal/logger"
	"github.com/themizzi/jupitertoys/internal/urls"
)

// BasePage carries the navigation shared by all pages
type BasePage struct {
	driver  driver.Driver
	log     *logger.Logger
	baseURL string
}

// NewBasePage creates a base page; a nil log discards output
func NewBasePage(drv driver.Driver, log *logger.Logger, baseURL string) *BasePage {
	if log == nil {
		log = logger.Nop()
	}
	return &BasePage{
		driver:  drv,
		log:     log,
		baseURL: baseURL,
	}
}

// Open navigates to url
func (p *BasePage) Open(url string) error {
	if err := p.driver.Open(url); err != nil {
		p.log.Errorf("Error navigating to %s: %v", url, err)
		return err
	}
	return nil
}

// IsPageValid reports whether the page's active navigation button is displayed.
// It never fails: driver errors are logged and reported as false.
func (p *BasePage) IsPageValid(pageButton driver.Element, pageName string) bool {
	loaded, err := pageButton.IsDisplayed()
	if err != nil {
		p.log.Errorf("Error validating if %s page is loaded: %v", pageName, err)
		return false
	}
	if !loaded {
		p.log.Warnf("%s page is NOT loaded.", pageName)
	}
	return loaded
}

// ClickWhenClickable waits until element is clickable and clicks it
func (p *BasePage) ClickWhenClickable(element driver.Element, name string) error {
	if err := element.WaitForClickable(driver.WaitOptions{}); err != nil {
		p.log.Errorf("Error waiting for %s to be clickable: %v", name, err)
		return fmt.Errorf("%s: %w", name, err)
	}
	if err := element.Click(); err != nil {
		p.log.Errorf("Error clicking %s: %v", name, err)
		return fmt.Errorf("%s: %w", name, err)
	}
	p.log.Infof("%s clicked successfully", name)
	return nil
}

// openPage opens a registered page and confirms it through its active nav button
func (p *BasePage) openPage(page urls.Page, pageButton func() driver.Element, pageName string) error {
	url, err := urls.Resolve(p.baseURL, page)
	if err != nil {
		p.log.Errorf("Error opening %s page: %v", pageName, err)
		return err
	}
	if err := p.Open(url); err != nil {
		p.log.Errorf("Error opening %s page: %v", pageName, err)
		return fmt.Errorf("opening %s page: %w", pageName, err)
	}
	if p.IsPageValid(pageButton(), pageName) {
		p.log.Infof("Navigated to %s page", pageName)
	}
	return nil
}

// activeNavButton is the highlighted nav link of the page served at route
func activeNavButton(route string) string {
	return fmt.Sprintf(`li[class*="active"] a[href*="#/%s"]`, route)
}
