package handlers

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/themizzi/jupitertoys/internal/catalog"
	"github.com/themizzi/jupitertoys/internal/models"
)

//go:embed templates/shop.html
var templateFS embed.FS

// Product is a catalog entry as rendered in the shop
type Product struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
	Cents int64  `json:"cents"`
}

// ShopData represents the data passed to the shop template
type ShopData struct {
	Products        []Product
	FeedbackDelayMS int64
	Messages        map[string]string
}

// ShopHandler serves the single-page shop
type ShopHandler struct {
	template *template.Template
	data     ShopData
}

// NewShopHandler creates a new ShopHandler for products. feedbackDelay is how long the
// "Sending Feedback" popup stays up after a submission.
func NewShopHandler(products []catalog.Product, feedbackDelay time.Duration) (*ShopHandler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/shop.html")
	if err != nil {
		return nil, err
	}

	data := ShopData{
		FeedbackDelayMS: feedbackDelay.Milliseconds(),
		Messages: map[string]string{
			"forename":     models.ErrForenameRequired.Error(),
			"email":        models.ErrEmailRequired.Error(),
			"invalidEmail": models.ErrInvalidEmail.Error(),
			"message":      models.ErrMessageRequired.Error(),
		},
	}
	for _, p := range products {
		cents, err := p.Cents()
		if err != nil {
			return nil, fmt.Errorf("product %s: %w", p.ID, err)
		}
		data.Products = append(data.Products, Product{
			ID:    string(p.ID),
			Name:  p.Name,
			Price: p.Price,
			Cents: cents,
		})
	}

	return &ShopHandler{
		template: tmpl,
		data:     data,
	}, nil
}

// ServeHTTP handles the GET / request
func (h *ShopHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" && r.URL.Path != "/index.html" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.template.Execute(w, h.data); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
}
