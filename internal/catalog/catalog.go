// Package catalog lists the products sold by the Jupiter Toys shop
package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ProductID identifies a product in the catalog
type ProductID string

// Products available in the shop
const (
	TeddyBear     ProductID = "Teddy_Bear"
	StuffedFrog   ProductID = "Stuffed_Frog"
	HandmadeDoll  ProductID = "Handmade_Doll"
	FluffyBunny   ProductID = "Fluffy_Bunny"
	SmileyBear    ProductID = "Smiley_Bear"
	FunnyCow      ProductID = "Funny_Cow"
	ValentineBear ProductID = "Valentine_Bear"
	SmileyFace    ProductID = "Smiley_Face"
)

// ErrProductNotFound is returned for ids missing from the catalog
var ErrProductNotFound = errors.New("product not found in catalog")

// Product is a catalog entry as displayed by the shop
type Product struct {
	ID    ProductID
	Name  string
	Price string
}

// products is kept in shop display order
var products = []Product{
	{ID: TeddyBear, Name: "Teddy Bear", Price: "$12.99"},
	{ID: StuffedFrog, Name: "Stuffed Frog", Price: "$10.99"},
	{ID: HandmadeDoll, Name: "Handmade Doll", Price: "$10.99"},
	{ID: FluffyBunny, Name: "Fluffy Bunny", Price: "$9.99"},
	{ID: SmileyBear, Name: "Smiley Bear", Price: "$14.99"},
	{ID: FunnyCow, Name: "Funny Cow", Price: "$10.99"},
	{ID: ValentineBear, Name: "Valentine Bear", Price: "$14.99"},
	{ID: SmileyFace, Name: "Smiley Face", Price: "$9.99"},
}

// Lookup returns the product with the given id
func Lookup(id ProductID) (Product, error) {
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, fmt.Errorf("%w: %s", ErrProductNotFound, id)
}

// MustLookup is Lookup for ids known at compile time; it panics on unknown ids
func MustLookup(id ProductID) Product {
	p, err := Lookup(id)
	if err != nil {
		panic(err)
	}
	return p
}

// All returns every product in display order
func All() []Product {
	out := make([]Product, len(products))
	copy(out, products)
	return out
}

// Cents parses the display price ("$10.99") into cents
func (p Product) Cents() (int64, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(p.Price), "$")
	whole, frac, found := strings.Cut(raw, ".")
	if !found || len(frac) != 2 {
		return 0, fmt.Errorf("price %q of %s is not in $D.CC form", p.Price, p.ID)
	}

	dollars, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("price %q of %s: %w", p.Price, p.ID, err)
	}
	cents, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("price %q of %s: %w", p.Price, p.ID, err)
	}

	return dollars*100 + cents, nil
}
