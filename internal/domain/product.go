// Package domain contains the core business entities and interfaces.
package domain

// Product is a single catalog item. Products are loaded once at startup
// and are never mutated afterwards.
type Product struct {
	ID          int64   `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Price       float64 `json:"price" yaml:"price"`
	Category    string  `json:"category" yaml:"category"`
	Description string  `json:"description" yaml:"description"`
	ImageURL    string  `json:"imageUrl" yaml:"imageUrl"`
}

// Valid reports whether the product carries the fields the cart requires.
// A zero price is treated as missing, matching the add-to-cart contract.
func (p Product) Valid() bool {
	return p.ID > 0 && p.Name != "" && p.Price > 0
}
