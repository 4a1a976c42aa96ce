package pages

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/themizzi/jupitertoys/internal/catalog"
	"github.com/themizzi/jupitertoys/internal/driver"
	"github.com/themizzi/jupitertoys/internal/driver/drivertest"
)

// addCartRow registers a cart row with its price, quantity and subtotal cells
func addCartRow(drv *drivertest.Driver, cart *CartPage, name, price, quantity, subtotal string) {
	row := cart.CartRow(name).Selector()
	drv.Add(row)
	drv.Add(drivertest.Scoped(row, cartPriceCell)).Text = price
	drv.Add(drivertest.Scoped(row, cartQuantityCell)).Value = quantity
	drv.Add(drivertest.Scoped(row, cartSubtotalCell)).Text = subtotal
}

func TestValidateCartItems_StuffedFrogSubtotal(t *testing.T) {
	drv, base := newTestBase()
	cart := NewCartPage(base)
	frog := catalog.MustLookup(catalog.StuffedFrog)
	addCartRow(drv, cart, frog.Name, "$10.99", "2", "$21.98")

	err := cart.ValidateCartItems([]CartItem{
		{Name: frog.Name, Price: frog.Price, Quantity: 2, Subtotal: "$21.98"},
	})

	assert.NoError(t, err)
}

func TestValidateCartItems_EmptyCartFailsBeforeAnyRow(t *testing.T) {
	drv, base := newTestBase()
	cart := NewCartPage(base)
	drv.Add(cart.EmptyCartMessage().Selector()).Text = "Your cart is empty"
	drv.Reset()

	err := cart.ValidateCartItems([]CartItem{
		{Name: "Stuffed Frog", Price: "$10.99", Quantity: 2, Subtotal: "$21.98"},
	})

	assert.ErrorIs(t, err, ErrCartEmpty)
	for _, c := range drv.Calls() {
		assert.False(t, strings.HasPrefix(c.Selector, "//tr"), "no row may be queried, saw %+v", c)
	}
}

func TestValidateCartItems_Mismatches(t *testing.T) {
	tests := []struct {
		name        string
		quantity    string
		subtotal    string
		wantSubject []string
	}{
		{
			name:        "wrong subtotal",
			quantity:    "5",
			subtotal:    "$49.90",
			wantSubject: []string{"Fluffy Bunny subtotal"},
		},
		{
			name:        "wrong quantity and subtotal",
			quantity:    "4",
			subtotal:    "$39.96",
			wantSubject: []string{"Fluffy Bunny quantity", "Fluffy Bunny subtotal"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			drv, base := newTestBase()
			cart := NewCartPage(base)
			addCartRow(drv, cart, "Fluffy Bunny", "$9.99", tt.quantity, tt.subtotal)

			err := cart.ValidateCartItems([]CartItem{
				{Name: "Fluffy Bunny", Price: "$9.99", Quantity: 5, Subtotal: "$49.95"},
			})

			require.ErrorIs(t, err, ErrMismatch)
			var mismatch *MismatchError
			require.True(t, errors.As(err, &mismatch))
			assert.Equal(t, tt.wantSubject[0], mismatch.Subject)
			for _, subject := range tt.wantSubject {
				assert.Contains(t, err.Error(), subject)
			}
		})
	}
}

func TestValidateCartItems_StopsAtFirstBadRow(t *testing.T) {
	drv, base := newTestBase()
	cart := NewCartPage(base)
	addCartRow(drv, cart, "Stuffed Frog", "$10.99", "2", "$21.98")

	err := cart.ValidateCartItems([]CartItem{
		{Name: "Valentine Bear", Price: "$14.99", Quantity: 3, Subtotal: "$44.97"},
		{Name: "Stuffed Frog", Price: "$10.99", Quantity: 2, Subtotal: "$21.98"},
	})

	assert.ErrorIs(t, err, driver.ErrNotDisplayed)
	assert.Zero(t, drv.Count(drivertest.OpText, drivertest.Scoped(cart.CartRow("Stuffed Frog").Selector(), cartPriceCell)))
}

func TestValidateItemInCart_ReadsEachCell(t *testing.T) {
	drv, base := newTestBase()
	cart := NewCartPage(base)
	addCartRow(drv, cart, "Valentine Bear", "$14.99", "3", "$44.97")
	row := cart.CartRow("Valentine Bear").Selector()

	require.NoError(t, cart.ValidateItemInCart(CartItem{Name: "Valentine Bear", Price: "$14.99", Quantity: 3, Subtotal: "$44.97"}))

	assert.Equal(t, 1, drv.Count(drivertest.OpWaitForDisplayed, row))
	assert.Equal(t, 1, drv.Count(drivertest.OpText, drivertest.Scoped(row, cartPriceCell)))
	assert.Equal(t, 1, drv.Count(drivertest.OpValue, drivertest.Scoped(row, cartQuantityCell)))
	assert.Equal(t, 1, drv.Count(drivertest.OpText, drivertest.Scoped(row, cartSubtotalCell)))
}

func TestIsCartEmpty(t *testing.T) {
	drv, base := newTestBase()
	cart := NewCartPage(base)

	empty, err := cart.IsCartEmpty()
	require.NoError(t, err)
	assert.False(t, empty)

	drv.Add(cart.EmptyCartMessage().Selector())
	empty, err = cart.IsCartEmpty()
	require.NoError(t, err)
	assert.True(t, empty)

	drv.Element(cart.EmptyCartMessage().Selector()).Err = errors.New("browser crashed")
	_, err = cart.IsCartEmpty()
	assert.Error(t, err)
}

func TestValidateTotalPrice(t *testing.T) {
	drv, base := newTestBase()
	cart := NewCartPage(base)
	drv.Add(cart.TotalPrice().Selector()).Text = "Total: 116.9"

	assert.NoError(t, cart.ValidateTotalPrice("Total: 116.9"))

	err := cart.ValidateTotalPrice("Total: 116.90")
	assert.ErrorIs(t, err, ErrMismatch)
	assert.EqualError(t, err, `cart total: expected "Total: 116.90", got "Total: 116.9"`)
}

func TestValidateTotalPrice_Missing(t *testing.T) {
	_, base := newTestBase()

	err := NewCartPage(base).ValidateTotalPrice("Total: 0")

	assert.ErrorIs(t, err, driver.ErrNotDisplayed)
}
