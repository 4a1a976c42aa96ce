package pages

import (
	"fmt"

	"github.com/themizzi/jupitertoys/internal/catalog"
	"github.com/themizzi/jupitertoys/internal/driver"
	"github.com/themizzi/jupitertoys/internal/urls"
)

// ShopPage lists the catalog products with their Buy buttons
type ShopPage struct {
	*BasePage
}

// NewShopPage creates the shop page object
func NewShopPage(base *BasePage) *ShopPage {
	return &ShopPage{BasePage: base}
}

// ProductElements groups the handles of one product tile
type ProductElements struct {
	Product   catalog.Product
	Name      driver.Element
	Price     driver.Element
	BuyButton driver.Element
}

// Purchase is one entry of a multi-product order
type Purchase struct {
	Product  catalog.ProductID
	Quantity int
}

// OpenURL navigates to the shop page and verifies it loaded
func (p *ShopPage) OpenURL() error {
	return p.openPage(urls.Shop, p.ShopPageButton, "Shop")
}

func (p *ShopPage) ShopPageButton() driver.Element {
	return p.driver.Find(activeNavButton("shop"))
}

// ProductElements resolves id against the catalog and returns the handles of its tile.
// Unknown ids fail with catalog.ErrProductNotFound before any element is looked up.
func (p *ShopPage) ProductElements(id catalog.ProductID) (ProductElements, error) {
	product, err := catalog.Lookup(id)
	if err != nil {
		p.log.Errorf("Product %s not found in catalog", id)
		return ProductElements{}, err
	}
	p.log.Infof("Product elements found for %s", product.Name)

	title := fmt.Sprintf(`//h4[contains(text(), "%s")]`, product.Name)
	return ProductElements{
		Product:   product,
		Name:      p.driver.Find(title),
		Price:     p.driver.Find(title + `/following-sibling::p//span[contains(@class, "product-price")]`),
		BuyButton: p.driver.Find(title + `/following-sibling::p//a[text()="Buy"]`),
	}, nil
}

// ProductPrice reads the price shown on a product tile
func (p *ShopPage) ProductPrice(id catalog.ProductID) (string, error) {
	elements, err := p.ProductElements(id)
	if err != nil {
		return "", err
	}
	if err := elements.Price.WaitForDisplayed(driver.WaitOptions{}); err != nil {
		p.log.Errorf("Error reading price of %s: %v", id, err)
		return "", fmt.Errorf("price of %s: %w", id, err)
	}
	price, err := elements.Price.Text()
	if err != nil {
		p.log.Errorf("Error reading price of %s: %v", id, err)
		return "", fmt.Errorf("price of %s: %w", id, err)
	}
	return price, nil
}

// BuyProduct clicks the product's Buy button quantity times. The button is re-checked
// for clickability before every click since the site may disable it in between.
func (p *ShopPage) BuyProduct(id catalog.ProductID, quantity int) error {
	elements, err := p.ProductElements(id)
	if err != nil {
		return err
	}
	p.log.Infof("Buying %d of %s", quantity, id)

	for i := 0; i < quantity; i++ {
		if err := elements.BuyButton.WaitForClickable(driver.WaitOptions{}); err != nil {
			p.log.Errorf("Error buying product %s: %v", id, err)
			return fmt.Errorf("buying %s (%d of %d): %w", id, i+1, quantity, err)
		}
		p.log.Infof("Clicking buy button for product %s, iteration %d", id, i+1)
		if err := elements.BuyButton.Click(); err != nil {
			p.log.Errorf("Error buying product %s: %v", id, err)
			return fmt.Errorf("buying %s (%d of %d): %w", id, i+1, quantity, err)
		}
	}
	return nil
}

// BuyMultipleProducts buys each purchase in order and stops at the first failure
func (p *ShopPage) BuyMultipleProducts(purchases []Purchase) error {
	p.log.Infof("Starting to buy multiple products...")
	for _, purchase := range purchases {
		if err := p.BuyProduct(purchase.Product, purchase.Quantity); err != nil {
			p.log.Errorf("Error buying multiple products: %v", err)
			return err
		}
	}
	p.log.Infof("Finished buying all products.")
	return nil
}
