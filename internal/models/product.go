package models

import "strings"

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Subcategory string  `json:"subcategory,omitempty"`
	Price       float64 `json:"price"`
	Unit        string  `json:"unit"`
	ImageURL    string  `json:"image_url"`
	Capacity    string  `json:"capacity,omitempty"`
	Brand       string  `json:"brand,omitempty"`
	Available   bool    `json:"available"`
}

type ProductFilter struct {
	Category string
	Brand    string
	Query    string
}

// FilterProducts keeps the products whose name or description contains query,
// ignoring case. An empty query keeps everything.
func FilterProducts(products []Product, query string) []Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return products
	}

	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Description), q) {
			filtered = append(filtered, p)
		}
	}

	return filtered
}
