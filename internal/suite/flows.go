package suite

import (
	"errors"
	"fmt"
	"strings"

	"github.com/themizzi/jupitertoys/internal/catalog"
	"github.com/themizzi/jupitertoys/internal/driver"
	"github.com/themizzi/jupitertoys/internal/pages"
)

// ContactErrors verifies the mandatory-field errors on the contact page
func ContactErrors(site *Site) error {
	// From the home page, go to contact page
	if err := site.Home.OpenURL(); err != nil {
		return err
	}
	if err := site.Home.ClickContact(); err != nil {
		return err
	}
	if err := site.expectPage(site.Contact.ContactPageButton, "Contact"); err != nil {
		return err
	}

	// Click submit button without filling any fields
	if err := site.Contact.SubmitForm(); err != nil {
		return err
	}

	// Verify error messages are displayed
	messages, err := site.Contact.CheckAllErrors()
	if err != nil {
		return err
	}
	if err := errors.Join(
		expect("forename error", RequiredFieldErrors.ForenameError, messages.ForenameError),
		expect("email error", RequiredFieldErrors.EmailError, messages.EmailError),
		expect("message error", RequiredFieldErrors.MessageError, messages.MessageError),
	); err != nil {
		return err
	}

	// Populate mandatory fields
	if err := site.Contact.FillForm(pages.ContactForm{
		Forename: "John",
		Email:    "john@example.com",
		Message:  "Test message",
	}); err != nil {
		return err
	}

	// Validate errors are gone
	return site.Contact.CheckAllErrorsAreGone()
}

// ContactSubmission submits a complete feedback form; iteration varies the email and message
func ContactSubmission(site *Site, iteration int) error {
	// From the home page, go to contact page
	if err := site.Home.OpenURL(); err != nil {
		return err
	}
	if err := site.Home.ClickContact(); err != nil {
		return err
	}
	if err := site.expectPage(site.Contact.ContactPageButton, "Contact"); err != nil {
		return err
	}

	// Populate mandatory fields and submit
	if err := site.Contact.FillForm(pages.ContactForm{
		Forename: "Jane",
		Email:    fmt.Sprintf("jane%d@example.com", iteration),
		Message:  fmt.Sprintf("Another test message %d", iteration),
	}); err != nil {
		return err
	}
	if err := site.Contact.SubmitForm(); err != nil {
		return err
	}

	// Validate successful submission message is displayed
	message, err := site.Contact.ValidateSubmittedMessage()
	if err != nil {
		return err
	}
	if !strings.Contains(message, "Thanks Jane") {
		return &pages.MismatchError{Subject: "success message", Expected: "Thanks Jane", Actual: message, Contains: true}
	}

	// Back to the contact page
	if err := site.Contact.ClickBackButton(); err != nil {
		return err
	}
	return site.expectPage(site.Contact.ContactPageButton, "Contact")
}

// CartTotals buys CartOrder and validates every row and the total
func CartTotals(site *Site) error {
	// From the home page, go to shop page
	if err := site.Home.OpenURL(); err != nil {
		return err
	}
	if err := site.Home.ClickShop(); err != nil {
		return err
	}
	if err := site.expectPage(site.Shop.ShopPageButton, "Shop"); err != nil {
		return err
	}

	// Buy the products
	if err := site.Shop.BuyMultipleProducts(CartOrder); err != nil {
		return err
	}

	// Go to the cart page
	if err := site.Home.ClickCart(); err != nil {
		return err
	}
	if err := site.expectPage(site.Cart.CartPageButton, "Cart"); err != nil {
		return err
	}

	// Verify each subtotal, then the total
	if err := site.Cart.ValidateCartItems(ExpectedCartItems()); err != nil {
		return err
	}
	return site.Cart.ValidateTotalPrice(ExpectedCartTotal)
}

// Navigation opens every page directly and through the navigation bar
func Navigation(site *Site) error {
	direct := []struct {
		name   string
		open   func() error
		button func() driver.Element
	}{
		{"Home", site.Home.OpenURL, site.Home.HomePageButton},
		{"Shop", site.Shop.OpenURL, site.Shop.ShopPageButton},
		{"Cart", site.Cart.OpenURL, site.Cart.CartPageButton},
		{"Contact", site.Contact.OpenURL, site.Contact.ContactPageButton},
	}
	for _, d := range direct {
		if err := d.open(); err != nil {
			return err
		}
		if err := site.expectPage(d.button, d.name); err != nil {
			return err
		}
	}

	// Through the navigation bar, starting from home
	if err := site.Home.OpenURL(); err != nil {
		return err
	}
	if err := site.Home.ClickStartShopping(); err != nil {
		return err
	}
	if err := site.expectPage(site.Shop.ShopPageButton, "Shop"); err != nil {
		return err
	}
	if err := site.Home.ClickContact(); err != nil {
		return err
	}
	if err := site.expectPage(site.Contact.ContactPageButton, "Contact"); err != nil {
		return err
	}
	if err := site.Home.ClickCart(); err != nil {
		return err
	}
	if err := site.expectPage(site.Cart.CartPageButton, "Cart"); err != nil {
		return err
	}

	// A fresh session starts with an empty cart
	empty, err := site.Cart.IsCartEmpty()
	if err != nil {
		return err
	}
	if !empty {
		return &pages.MismatchError{Subject: "cart empty", Expected: "true", Actual: "false"}
	}
	site.Log.Infof("Navigation validated for every page")
	return nil
}

// ShopPrices checks that the shop lists every catalog product at its catalog price
func ShopPrices(site *Site) error {
	if err := site.Shop.OpenURL(); err != nil {
		return err
	}
	if err := site.expectPage(site.Shop.ShopPageButton, "Shop"); err != nil {
		return err
	}

	var errs []error
	for _, product := range catalog.All() {
		price, err := site.Shop.ProductPrice(product.ID)
		if err != nil {
			return err
		}
		errs = append(errs, expect(product.Name+" listed price", product.Price, price))
	}
	return errors.Join(errs...)
}

func expect(subject, expected, actual string) error {
	if expected != actual {
		return &pages.MismatchError{Subject: subject, Expected: expected, Actual: actual}
	}
	return nil
}
