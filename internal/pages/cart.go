package pages

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/themizzi/jupitertoys/internal/driver"
	"github.com/themizzi/jupitertoys/internal/urls"
)

// Cart row cell selectors, relative to the row
const (
	cartPriceCell    = `td:nth-child(2).ng-binding`
	cartQuantityCell = `td:nth-child(3) input[type="number"]`
	cartSubtotalCell = `td:nth-child(4).ng-binding`
)

// CartItem is the expected content of one cart row
type CartItem struct {
	Name     string
	Price    string
	Quantity int
	Subtotal string
}

// CartPage shows the cart rows and the total
type CartPage struct {
	*BasePage
}

// NewCartPage creates the cart page object
func NewCartPage(base *BasePage) *CartPage {
	return &CartPage{BasePage: base}
}

// OpenURL navigates to the cart page and verifies it loaded
func (p *CartPage) OpenURL() error {
	return p.openPage(urls.Cart, p.CartPageButton, "Cart")
}

func (p *CartPage) CartPageButton() driver.Element {
	return p.driver.Find(activeNavButton("cart"))
}

func (p *CartPage) EmptyCartMessage() driver.Element {
	return p.driver.Find(`div.alert strong`)
}

func (p *CartPage) TotalPrice() driver.Element {
	return p.driver.Find(`tfoot strong.total`)
}

// CartRow returns the table row whose text mentions itemName
func (p *CartPage) CartRow(itemName string) driver.Element {
	return p.driver.Find(fmt.Sprintf(`//tr[contains(., "%s")]`, itemName))
}

// IsCartEmpty reports whether the empty-cart message is displayed.
// The check is immediate; it does not wait for the page to settle.
func (p *CartPage) IsCartEmpty() (bool, error) {
	empty, err := p.EmptyCartMessage().IsDisplayed()
	if err != nil {
		p.log.Errorf("Error checking if the cart is empty: %v", err)
		return false, fmt.Errorf("checking empty cart: %w", err)
	}
	return empty, nil
}

// ValidateItemInCart checks price, quantity and subtotal of the row for item.Name
func (p *CartPage) ValidateItemInCart(item CartItem) error {
	row := p.CartRow(item.Name)
	if err := row.WaitForDisplayed(driver.WaitOptions{}); err != nil {
		p.log.Errorf("Item %s not found in the cart: %v", item.Name, err)
		return fmt.Errorf("cart row %s: %w", item.Name, err)
	}

	price, err := p.readCell(row.Find(cartPriceCell), item.Name, "price", driver.Element.Text)
	if err != nil {
		return err
	}
	quantity, err := p.readCell(row.Find(cartQuantityCell), item.Name, "quantity", driver.Element.Value)
	if err != nil {
		return err
	}
	subtotal, err := p.readCell(row.Find(cartSubtotalCell), item.Name, "subtotal", driver.Element.Text)
	if err != nil {
		return err
	}

	err = errors.Join(
		expectEqual(item.Name+" price", item.Price, price),
		expectEqual(item.Name+" quantity", strconv.Itoa(item.Quantity), quantity),
		expectEqual(item.Name+" subtotal", item.Subtotal, subtotal),
	)
	if err != nil {
		p.log.Errorf("Cart item %s does not match: %v", item.Name, err)
		return err
	}
	p.log.Infof("Cart item %s validated: %s x %s = %s", item.Name, price, quantity, subtotal)
	return nil
}

// ValidateCartItems validates every expected row in order. An empty cart is an error,
// reported before any row is looked at.
func (p *CartPage) ValidateCartItems(items []CartItem) error {
	empty, err := p.IsCartEmpty()
	if err != nil {
		return err
	}
	if empty {
		p.log.Errorf("Cart is empty. No items to validate.")
		return ErrCartEmpty
	}

	for _, item := range items {
		if err := p.ValidateItemInCart(item); err != nil {
			return err
		}
	}
	return nil
}

// ValidateTotalPrice compares the footer total with expected, exactly
func (p *CartPage) ValidateTotalPrice(expected string) error {
	total := p.TotalPrice()
	if err := total.WaitForDisplayed(driver.WaitOptions{}); err != nil {
		p.log.Errorf("Error reading cart total: %v", err)
		return fmt.Errorf("cart total: %w", err)
	}
	text, err := total.Text()
	if err != nil {
		p.log.Errorf("Error reading cart total: %v", err)
		return fmt.Errorf("cart total: %w", err)
	}
	if err := expectEqual("cart total", expected, text); err != nil {
		p.log.Errorf("%v", err)
		return err
	}
	p.log.Infof("Cart total validated: %s", text)
	return nil
}

// readCell waits for a row cell and reads it with read
func (p *CartPage) readCell(cell driver.Element, itemName, column string, read func(driver.Element) (string, error)) (string, error) {
	if err := cell.WaitForDisplayed(driver.WaitOptions{}); err != nil {
		p.log.Errorf("Error reading %s of %s: %v", column, itemName, err)
		return "", fmt.Errorf("%s %s: %w", itemName, column, err)
	}
	value, err := read(cell)
	if err != nil {
		p.log.Errorf("Error reading %s of %s: %v", column, itemName, err)
		return "", fmt.Errorf("%s %s: %w", itemName, column, err)
	}
	return value, nil
}
