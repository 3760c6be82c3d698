package domain

// CartLine is one entry in the cart. The product fields are a snapshot
// taken at add time: a later catalog price change does not retroactively
// alter lines already in the cart.
type CartLine struct {
	ProductID   int64   `json:"productId"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
}

// NewCartLine snapshots a product into a cart line with the given quantity.
func NewCartLine(p Product, quantity int) CartLine {
	return CartLine{
		ProductID:   p.ID,
		Name:        p.Name,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		Category:    p.Category,
		Description: p.Description,
		Quantity:    quantity,
	}
}

// CartCount sums the quantities across lines.
func CartCount(lines []CartLine) int {
	var n int
	for _, l := range lines {
		n += l.Quantity
	}
	return n
}

// CartSubtotal sums price*quantity across lines.
func CartSubtotal(lines []CartLine) float64 {
	var total float64
	for _, l := range lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// CloneLines returns an independent copy of the given lines.
func CloneLines(lines []CartLine) []CartLine {
	if lines == nil {
		return nil
	}
	out := make([]CartLine, len(lines))
	copy(out, lines)
	return out
}
