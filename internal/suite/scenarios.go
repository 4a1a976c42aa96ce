package suite

import (
	"fmt"
	"strings"

	"github.com/themizzi/jupitertoys/internal/catalog"
	"github.com/themizzi/jupitertoys/internal/pages"
)

// Scenario is a named end-to-end flow. Run receives the repetition index, starting at 0.
type Scenario struct {
	Name        string
	Description string
	Run         func(site *Site, iteration int) error
}

// Expected texts and data of the flows
var (
	RequiredFieldErrors = pages.ErrorMessages{
		ForenameError: "Forename is required",
		EmailError:    "Email is required",
		MessageError:  "Message is required",
	}

	CartOrder = []pages.Purchase{
		{Product: catalog.StuffedFrog, Quantity: 2},
		{Product: catalog.FluffyBunny, Quantity: 5},
		{Product: catalog.ValentineBear, Quantity: 3},
	}

	CartSubtotals = map[catalog.ProductID]string{
		catalog.StuffedFrog:   "$21.98",
		catalog.FluffyBunny:   "$49.95",
		catalog.ValentineBear: "$44.97",
	}
)

// ExpectedCartTotal is the footer after buying CartOrder
const ExpectedCartTotal = "Total: 116.9"

// ExpectedCartItems returns the rows the cart shows after buying CartOrder
func ExpectedCartItems() []pages.CartItem {
	items := make([]pages.CartItem, 0, len(CartOrder))
	for _, purchase := range CartOrder {
		product := catalog.MustLookup(purchase.Product)
		items = append(items, pages.CartItem{
			Name:     product.Name,
			Price:    product.Price,
			Quantity: purchase.Quantity,
			Subtotal: CartSubtotals[purchase.Product],
		})
	}
	return items
}

// Scenarios returns every flow in a stable order
func Scenarios() []Scenario {
	return []Scenario{
		{
			Name:        "contact-errors",
			Description: "Mandatory field errors appear on an empty submit and clear once filled",
			Run:         func(site *Site, _ int) error { return ContactErrors(site) },
		},
		{
			Name:        "contact-submit",
			Description: "A complete feedback form is accepted and thanks the sender",
			Run:         ContactSubmission,
		},
		{
			Name:        "cart-totals",
			Description: "Cart rows and total reflect the products bought",
			Run:         func(site *Site, _ int) error { return CartTotals(site) },
		},
		{
			Name:        "navigation",
			Description: "Every page opens by URL and through the navigation bar",
			Run:         func(site *Site, _ int) error { return Navigation(site) },
		},
		{
			Name:        "shop-prices",
			Description: "Every catalog product is listed with its catalog price",
			Run:         func(site *Site, _ int) error { return ShopPrices(site) },
		},
	}
}

// Select returns the named scenarios in the order given; no names selects all
func Select(names []string) ([]Scenario, error) {
	all := Scenarios()
	if len(names) == 0 {
		return all, nil
	}

	byName := make(map[string]Scenario, len(all))
	for _, s := range all {
		byName[s.Name] = s
	}

	selected := make([]Scenario, 0, len(names))
	for _, name := range names {
		s, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown scenario %q (available: %s)", name, strings.Join(Names(), ", "))
		}
		selected = append(selected, s)
	}
	return selected, nil
}

// Names lists the scenario names
func Names() []string {
	all := Scenarios()
	names := make([]string, len(all))
	for i, s := range all {
		names[i] = s.Name
	}
	return names
}
