// Package urls maps logical page names to their paths on the site
package urls

import (
	"fmt"
	"sort"
	"strings"
)

// Page is a logical page name
type Page string

// Pages of the site
const (
	Home    Page = "home"
	Shop    Page = "shop"
	Cart    Page = "cart"
	Contact Page = "contact"
)

var paths = map[Page]string{
	Home:    "/#/home",
	Shop:    "/#/shop",
	Cart:    "/#/cart",
	Contact: "/#/contact",
}

// Path returns the path fragment of a page
func Path(page Page) (string, error) {
	path, ok := paths[page]
	if !ok {
		return "", fmt.Errorf("unknown page %q", page)
	}
	return path, nil
}

// Resolve joins baseURL with the page's path
func Resolve(baseURL string, page Page) (string, error) {
	path, err := Path(page)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(baseURL, "/") + path, nil
}

// Pages returns every registered page, sorted by name
func Pages() []Page {
	out := make([]Page, 0, len(paths))
	for page := range paths {
		out = append(out, page)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
