package gateway

import "time"

// Product is a catalog record as returned by the gateway.
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Brand       *Brand    `json:"brand,omitempty"`
	Images      []Image   `json:"images"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Brand identifies a product's manufacturer.
type Brand struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Image is one product photo. URL may be relative to the storefront origin.
type Image struct {
	ID  int64  `json:"id"`
	URL string `json:"url"`
}

// Category is a catalog grouping as returned by the gateway.
type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FirstImageURL returns the URL of the product's first image, or "".
func (p Product) FirstImageURL() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0].URL
}
