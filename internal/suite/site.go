// Package suite holds the end-to-end flows run against the shop, and a runner that
// executes them in fresh browser sessions.
package suite

import (
	"errors"
	"fmt"

	"github.com/themizzi/jupitertoys/internal/driver"
	"github.com/themizzi/jupitertoys/internal/logger"
	"github.com/themizzi/jupitertoys/internal/pages"
)

// ErrPageNotLoaded is returned when a page's active navigation button never shows
var ErrPageNotLoaded = errors.New("page not loaded")

// Site bundles one instance of every page object over a single driver
type Site struct {
	Base    *pages.BasePage
	Home    *pages.HomePage
	Shop    *pages.ShopPage
	Cart    *pages.CartPage
	Contact *pages.ContactPage
	Log     *logger.Logger
}

// NewSite creates the page objects for a driver session
func NewSite(drv driver.Driver, log *logger.Logger, baseURL string) *Site {
	if log == nil {
		log = logger.Nop()
	}
	base := pages.NewBasePage(drv, log, baseURL)
	return &Site{
		Base:    base,
		Home:    pages.NewHomePage(base),
		Shop:    pages.NewShopPage(base),
		Cart:    pages.NewCartPage(base),
		Contact: pages.NewContactPage(base),
		Log:     log,
	}
}

// expectPage waits for the page's active nav button, then confirms it through IsPageValid
func (s *Site) expectPage(button func() driver.Element, pageName string) error {
	if err := button().WaitForDisplayed(driver.WaitOptions{}); err != nil {
		s.Log.Errorf("%s page did not load: %v", pageName, err)
		return fmt.Errorf("%w: %s: %v", ErrPageNotLoaded, pageName, err)
	}
	if !s.Base.IsPageValid(button(), pageName) {
		return fmt.Errorf("%w: %s", ErrPageNotLoaded, pageName)
	}
	return nil
}
