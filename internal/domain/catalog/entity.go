// internal/domain/catalog/entity.go
package catalog

// Category represents a product category
type Category struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

// Product represents a storefront product
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	ImageURL    string  `json:"image_url"`
	CategoryID  int64   `json:"category_id"`
}

// InStock reports whether the product can currently be purchased
func (p *Product) InStock() bool {
	return p.Quantity > 0
}

// Banner represents a homepage banner asset
type Banner struct {
	ID       int64  `json:"id"`
	ImageURL string `json:"image_url"`
}

// Logo represents a store logo asset
type Logo struct {
	ID       int64  `json:"id"`
	ImageURL string `json:"image_url"`
}
