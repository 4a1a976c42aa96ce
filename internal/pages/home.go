package pages

import (
	"github.com/themizzi/jupitertoys/internal/driver"
	"github.com/themizzi/jupitertoys/internal/urls"
)

// HomePage is the landing page and owner of the navigation bar
type HomePage struct {
	*BasePage
}

// NewHomePage creates the home page object
func NewHomePage(base *BasePage) *HomePage {
	return &HomePage{BasePage: base}
}

// OpenURL navigates to the home page and verifies it loaded
func (p *HomePage) OpenURL() error {
	return p.openPage(urls.Home, p.HomePageButton, "Home")
}

func (p *HomePage) HomePageButton() driver.Element {
	return p.driver.Find(activeNavButton("home"))
}

func (p *HomePage) StartShoppingButton() driver.Element {
	return p.driver.Find(`//a[text()="Start Shopping »"]`)
}

func (p *HomePage) ShopButton() driver.Element {
	return p.driver.Find(`//a[text()="Shop"]`)
}

func (p *HomePage) ContactButton() driver.Element {
	return p.driver.Find(`//a[text()="Contact"]`)
}

func (p *HomePage) CartButton() driver.Element {
	return p.driver.Find(`//a[@href="#/cart"]`)
}

// ClickStartShopping clicks the hero "Start Shopping" button
func (p *HomePage) ClickStartShopping() error {
	return p.ClickWhenClickable(p.StartShoppingButton(), "Start Shopping button")
}

// ClickShop clicks the Shop link in the navigation bar
func (p *HomePage) ClickShop() error {
	return p.ClickWhenClickable(p.ShopButton(), "Shop button")
}

// ClickCart clicks the Cart link in the navigation bar
func (p *HomePage) ClickCart() error {
	return p.ClickWhenClickable(p.CartButton(), "Cart button")
}

// ClickContact clicks the Contact link in the navigation bar
func (p *HomePage) ClickContact() error {
	return p.ClickWhenClickable(p.ContactButton(), "Contact button")
}
