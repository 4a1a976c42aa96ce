package suite

import (
	"fmt"
	"strings"

	"github.com/themizzi/jupitertoys/internal/catalog"
	"github.com/themizzi/jupitertoys/internal/driver/drivertest"
)

// fakeShop models the shop's behaviour on top of a drivertest.Driver
type fakeShop struct {
	drv       *drivertest.Driver
	site      *Site
	route     string
	cart      map[catalog.ProductID]int
	submitted bool

	// priceOverride changes the unit price the cart shows for a product
	priceOverride map[catalog.ProductID]string
}

func newFakeShop() *fakeShop {
	drv := drivertest.New()
	f := &fakeShop{
		drv:           drv,
		site:          NewSite(drv, nil, "http://shop.test"),
		cart:          map[catalog.ProductID]int{},
		priceOverride: map[catalog.ProductID]string{},
	}

	drv.OnOpen = func(url string) {
		_, route, _ := strings.Cut(url, "#/")
		f.navigate(route)
	}

	home := f.site.Home
	drv.Add(home.ShopButton().Selector()).OnClick = func() { f.navigate("shop") }
	drv.Add(home.StartShoppingButton().Selector()).OnClick = func() { f.navigate("shop") }
	drv.Add(home.ContactButton().Selector()).OnClick = func() { f.navigate("contact") }
	drv.Add(home.CartButton().Selector()).OnClick = func() { f.navigate("cart") }

	for _, product := range catalog.All() {
		id := product.ID
		elements, _ := f.site.Shop.ProductElements(id)
		drv.Add(elements.Name.Selector()).Text = product.Name
		drv.Add(elements.Price.Selector()).Text = product.Price
		drv.Add(elements.BuyButton.Selector()).OnClick = func() { f.cart[id]++ }
	}

	contact := f.site.Contact
	for _, field := range []string{
		contact.ForenameField().Selector(), contact.SurnameField().Selector(), contact.EmailField().Selector(),
		contact.TelephoneField().Selector(), contact.MessageField().Selector(),
	} {
		drv.Add(field).OnSetValue = func(string) { f.validate() }
	}
	drv.Add(contact.SubmitButton().Selector()).OnClick = f.submit
	for _, sel := range []string{contact.ForenameError().Selector(), contact.EmailError().Selector(), contact.MessageError().Selector()} {
		drv.Add(sel).Displayed = false
	}
	drv.Add(contact.SubmittedMessage().Selector()).Displayed = false
	back := drv.Add(contact.BackButton().Selector())
	back.Displayed = false
	back.OnClick = func() {
		f.drv.Element(contact.SubmittedMessage().Selector()).Displayed = false
		back.Displayed = false
		f.navigate("contact")
	}

	drv.Reset()
	return f
}

func (f *fakeShop) value(sel string) string {
	return f.drv.Element(sel).Value
}

func (f *fakeShop) navigate(route string) {
	f.route = route
	buttons := map[string]string{
		"home":    f.site.Home.HomePageButton().Selector(),
		"shop":    f.site.Shop.ShopPageButton().Selector(),
		"cart":    f.site.Cart.CartPageButton().Selector(),
		"contact": f.site.Contact.ContactPageButton().Selector(),
	}
	for r, sel := range buttons {
		f.drv.Add(sel).Displayed = r == route
	}
	if route == "cart" {
		f.renderCart()
	}
}

func (f *fakeShop) renderCart() {
	cart := f.site.Cart
	empty := f.drv.Add(cart.EmptyCartMessage().Selector())
	empty.Text = "Your cart is empty"
	empty.Displayed = len(f.cart) == 0

	var total int64
	for _, product := range catalog.All() {
		qty := f.cart[product.ID]
		if qty == 0 {
			continue
		}
		cents, _ := product.Cents()
		total += cents * int64(qty)

		price := product.Price
		if override, ok := f.priceOverride[product.ID]; ok {
			price = override
		}

		row := cart.CartRow(product.Name).Selector()
		f.drv.Add(row)
		f.drv.Add(drivertest.Scoped(row, `td:nth-child(2).ng-binding`)).Text = price
		f.drv.Add(drivertest.Scoped(row, `td:nth-child(3) input[type="number"]`)).Value = fmt.Sprint(qty)
		f.drv.Add(drivertest.Scoped(row, `td:nth-child(4).ng-binding`)).Text = fmt.Sprintf("$%d.%02d", cents*int64(qty)/100, cents*int64(qty)%100)
	}
	f.drv.Add(cart.TotalPrice().Selector()).Text = "Total: " + strings.TrimRight(strings.TrimRight(fmt.Sprintf("%d.%02d", total/100, total%100), "0"), ".")
}

func (f *fakeShop) validate() {
	if !f.submitted {
		return
	}
	contact := f.site.Contact
	f.drv.Element(contact.ForenameError().Selector()).Displayed = f.value(contact.ForenameField().Selector()) == ""
	f.drv.Element(contact.EmailError().Selector()).Displayed = f.value(contact.EmailField().Selector()) == ""
	f.drv.Element(contact.MessageError().Selector()).Displayed = f.value(contact.MessageField().Selector()) == ""
}

func (f *fakeShop) submit() {
	contact := f.site.Contact
	f.submitted = true
	f.drv.Element(contact.ForenameError().Selector()).Text = RequiredFieldErrors.ForenameError
	f.drv.Element(contact.EmailError().Selector()).Text = RequiredFieldErrors.EmailError
	f.drv.Element(contact.MessageError().Selector()).Text = RequiredFieldErrors.MessageError
	f.validate()

	forename := f.value(contact.ForenameField().Selector())
	if forename == "" || f.value(contact.EmailField().Selector()) == "" || f.value(contact.MessageField().Selector()) == "" {
		return
	}
	banner := f.drv.Element(contact.SubmittedMessage().Selector())
	banner.Text = "Thanks " + forename
	banner.Displayed = true
	f.drv.Element(contact.BackButton().Selector()).Displayed = true
	f.submitted = false
	for _, field := range []string{contact.ForenameField().Selector(), contact.EmailField().Selector(), contact.MessageField().Selector()} {
		f.drv.Element(field).Value = ""
	}
}

// fakeSession adapts a fake shop to Session and counts closes
type fakeSession struct {
	*drivertest.Driver
	closed *int
}

func (s fakeSession) Close() error {
	*s.closed++
	return nil
}

// shootingSession also captures screenshots
type shootingSession struct {
	fakeSession
	shots *[]string
	err   error
}

func (s shootingSession) Screenshot(dir, name string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	path := dir + "/" + name + ".png"
	*s.shots = append(*s.shots, path)
	return path, nil
}
