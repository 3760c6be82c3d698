package domain

import (
	"math"
	"time"
)

// Order pricing rules.
const (
	TaxRate               = 0.08
	FreeShippingThreshold = 50.0
	FlatShippingFee       = 10.0
)

// ShippingAddress is the structured destination captured at checkout.
type ShippingAddress struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
}

// Order is an immutable purchase record. Items is a deep copy of the cart
// lines at purchase time; once appended to a user's history the order is
// never mutated or removed.
type Order struct {
	ID              string          `json:"id"`
	Date            time.Time       `json:"date"`
	Items           []CartLine      `json:"items"`
	Subtotal        float64         `json:"subtotal"`
	Tax             float64         `json:"tax"`
	Shipping        float64         `json:"shipping"`
	Total           float64         `json:"total"`
	Status          string          `json:"status"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
}

// OrderStatusProcessing is the status every new order starts in. There is
// no fulfillment pipeline here, so orders never leave it.
const OrderStatusProcessing = "Processing"

// ComputeTotals derives tax, shipping, and total from a cart subtotal:
// 8% tax, free shipping above the threshold, a flat fee below it.
func ComputeTotals(subtotal float64) (tax, shipping, total float64) {
	tax = RoundCents(subtotal * TaxRate)
	shipping = FlatShippingFee
	if subtotal > FreeShippingThreshold {
		shipping = 0
	}
	total = RoundCents(subtotal + tax + shipping)
	return tax, shipping, total
}

// RoundCents rounds a monetary amount to two decimal places.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
