package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"storefront/internal/domain"
)

var (
	// ErrEmptyCart indicates a checkout attempt with no cart lines.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrOrderProcessing wraps unexpected failures during checkout; the
	// caller prompts the user to retry.
	ErrOrderProcessing = errors.New("order processing failed")
)

// ValidationError reports the required form fields that were missing.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// PaymentMethodCard is the only payment method with extra required fields.
const PaymentMethodCard = "card"

// ShippingForm is the checkout shipping section.
type ShippingForm struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
}

// PaymentForm is the checkout payment section. Field presence is all that
// is validated; there is no card-number checksum or address verification.
type PaymentForm struct {
	Method     string `json:"paymentMethod"`
	CardNumber string `json:"cardNumber"`
	ExpiryDate string `json:"expiryDate"`
	CVV        string `json:"cvv"`
	NameOnCard string `json:"nameOnCard"`
}

// CheckoutService turns a cart and a session into an immutable order. It
// is the only service that reads from both engines and writes to both.
type CheckoutService struct {
	cart *CartService
	auth *AuthService
}

// NewCheckoutService creates a checkout service over the two engines.
func NewCheckoutService(cart *CartService, auth *AuthService) *CheckoutService {
	return &CheckoutService{cart: cart, auth: auth}
}

// PlaceOrder validates the forms, snapshots the cart into an order,
// appends it to the session's history, and clears the cart. Checks run in
// order: authentication, non-empty cart, field presence.
func (s *CheckoutService) PlaceOrder(ctx context.Context, shipping ShippingForm, payment PaymentForm) (domain.Order, error) {
	if _, ok := s.auth.Current(); !ok {
		return domain.Order{}, ErrNotAuthenticated
	}

	lines := s.cart.Items()
	if len(lines) == 0 {
		return domain.Order{}, ErrEmptyCart
	}

	if missing := missingFields(shipping, payment); len(missing) > 0 {
		return domain.Order{}, &ValidationError{Fields: missing}
	}

	subtotal := domain.RoundCents(domain.CartSubtotal(lines))
	tax, shippingFee, total := domain.ComputeTotals(subtotal)

	order := domain.Order{
		ID:       uuid.NewString(),
		Date:     time.Now().UTC(),
		Items:    lines,
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shippingFee,
		Total:    total,
		Status:   domain.OrderStatusProcessing,
		ShippingAddress: domain.ShippingAddress{
			FirstName: shipping.FirstName,
			LastName:  shipping.LastName,
			Address:   shipping.Address,
			City:      shipping.City,
			State:     shipping.State,
			ZipCode:   shipping.ZipCode,
			Country:   shipping.Country,
		},
	}

	if _, err := s.auth.AppendOrder(ctx, order); err != nil {
		return domain.Order{}, fmt.Errorf("%w: %v", ErrOrderProcessing, err)
	}

	s.cart.Clear(ctx)
	return order, nil
}

func missingFields(shipping ShippingForm, payment PaymentForm) []string {
	var missing []string
	required := []struct {
		name  string
		value string
	}{
		{"email", shipping.Email},
		{"firstName", shipping.FirstName},
		{"lastName", shipping.LastName},
		{"address", shipping.Address},
		{"city", shipping.City},
		{"state", shipping.State},
		{"zipCode", shipping.ZipCode},
	}
	for _, f := range required {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}

	// An unset method defaults to card, as the checkout form does.
	if payment.Method == "" || payment.Method == PaymentMethodCard {
		card := []struct {
			name  string
			value string
		}{
			{"cardNumber", payment.CardNumber},
			{"expiryDate", payment.ExpiryDate},
			{"cvv", payment.CVV},
			{"nameOnCard", payment.NameOnCard},
		}
		for _, f := range card {
			if f.value == "" {
				missing = append(missing, f.name)
			}
		}
	}
	return missing
}
