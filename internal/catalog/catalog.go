// Package catalog supplies the immutable product list and its read-side
// queries: filtering, sorting, search, and pagination.
package catalog

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"storefront/internal/domain"
)

//go:embed products.yaml
var seedData []byte

// Sort orders accepted by Filter.SortBy.
const (
	SortNewest    = "newest"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
)

// DefaultPageSize is the shop-page grid size.
const DefaultPageSize = 8

// Catalog holds the product list, read-only after Load.
type Catalog struct {
	products []domain.Product
	byID     map[int64]domain.Product
}

// Load parses a YAML product list and validates it: IDs must be unique and
// positive, names non-empty, prices non-negative.
func Load(data []byte) (*Catalog, error) {
	var doc struct {
		Products []domain.Product `yaml:"products"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	byID := make(map[int64]domain.Product, len(doc.Products))
	for _, p := range doc.Products {
		if p.ID <= 0 {
			return nil, fmt.Errorf("catalog: product %q has invalid id %d", p.Name, p.ID)
		}
		if p.Name == "" {
			return nil, fmt.Errorf("catalog: product %d has empty name", p.ID)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("catalog: product %d has negative price", p.ID)
		}
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate product id %d", p.ID)
		}
		byID[p.ID] = p
	}
	return &Catalog{products: doc.Products, byID: byID}, nil
}

// Default loads the embedded seed catalog.
func Default() (*Catalog, error) {
	return Load(seedData)
}

// All returns a copy of every product in catalog order.
func (c *Catalog) All() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// ByID looks up a product.
func (c *Catalog) ByID(id int64) (domain.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Categories returns the distinct categories in first-seen order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range c.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

// Filter narrows and orders a product listing. Zero values mean "no
// constraint"; "All" is accepted for Category as the UI sends it.
type Filter struct {
	Category string
	MaxPrice float64
	SortBy   string
}

// List returns the products matching the filter, sorted per SortBy
// (newest, meaning catalog id order, when unset).
func (c *Catalog) List(f Filter) []domain.Product {
	return applyFilter(c.All(), f)
}

// Search splits the query into lowercase terms and returns products whose
// name, description, or category contains any term, then applies the
// filter. An empty query matches nothing.
func (c *Catalog) Search(query string, f Filter) []domain.Product {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return nil
	}

	var matched []domain.Product
	for _, p := range c.products {
		haystack := strings.ToLower(p.Name + " " + p.Description + " " + p.Category)
		for _, term := range terms {
			if strings.Contains(haystack, term) {
				matched = append(matched, p)
				break
			}
		}
	}
	return applyFilter(matched, f)
}

func applyFilter(products []domain.Product, f Filter) []domain.Product {
	out := products[:0:0]
	for _, p := range products {
		if f.Category != "" && f.Category != "All" && p.Category != f.Category {
			continue
		}
		if f.MaxPrice > 0 && p.Price > f.MaxPrice {
			continue
		}
		out = append(out, p)
	}

	switch f.SortBy {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	}
	return out
}

// Paginate slices items into the given 1-based page. Pages past the end
// are empty; totalPages is at least 1 only when items is non-empty.
func Paginate(items []domain.Product, page, perPage int) (pageItems []domain.Product, totalPages int) {
	if perPage <= 0 {
		perPage = DefaultPageSize
	}
	if page <= 0 {
		page = 1
	}
	totalPages = (len(items) + perPage - 1) / perPage

	start := (page - 1) * perPage
	if start >= len(items) {
		return nil, totalPages
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], totalPages
}
