package app_test

import (
	"context"
	"errors"
	"sort"
	"testing"

	"storefront/internal/app"
	"storefront/internal/domain"
	"storefront/internal/store"
)

func validShipping() app.ShippingForm {
	return app.ShippingForm{
		Email:     "ada@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Address:   "1 Analytical Way",
		City:      "London",
		State:     "LDN",
		ZipCode:   "E1 6AN",
		Country:   "United Kingdom",
	}
}

func validCard() app.PaymentForm {
	return app.PaymentForm{
		Method:     app.PaymentMethodCard,
		CardNumber: "4242424242424242",
		ExpiryDate: "12/30",
		CVV:        "123",
		NameOnCard: "Ada Lovelace",
	}
}

// checkoutFixture wires the two engines over one memory store with an
// authenticated user and an empty cart.
func checkoutFixture(t *testing.T) (*app.CartService, *app.AuthService, *app.CheckoutService) {
	t.Helper()
	ctx := context.Background()
	st := store.NewMemory()
	cart := app.NewCartService(ctx, st)
	auth := app.NewAuthService(ctx, st)
	register(t, auth, "Ada", "ada@example.com", "s3cret")
	return cart, auth, app.NewCheckoutService(cart, auth)
}

func TestPlaceOrderRequiresAuth(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	cart := app.NewCartService(ctx, st)
	auth := app.NewAuthService(ctx, st)
	checkout := app.NewCheckoutService(cart, auth)

	cart.AddItem(ctx, tee(), 1)
	if _, err := checkout.PlaceOrder(ctx, validShipping(), validCard()); !errors.Is(err, app.ErrNotAuthenticated) {
		t.Errorf("err = %v, want ErrNotAuthenticated", err)
	}
}

func TestPlaceOrderRequiresNonEmptyCart(t *testing.T) {
	_, _, checkout := checkoutFixture(t)

	if _, err := checkout.PlaceOrder(context.Background(), validShipping(), validCard()); !errors.Is(err, app.ErrEmptyCart) {
		t.Errorf("err = %v, want ErrEmptyCart", err)
	}
}

func TestPlaceOrderValidation(t *testing.T) {
	ctx := context.Background()
	cart, _, checkout := checkoutFixture(t)
	cart.AddItem(ctx, tee(), 1)

	shipping := validShipping()
	shipping.Address = ""
	shipping.ZipCode = ""
	payment := validCard()
	payment.CVV = ""

	_, err := checkout.PlaceOrder(ctx, shipping, payment)
	var verr *app.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
	got := append([]string(nil), verr.Fields...)
	sort.Strings(got)
	want := []string{"address", "cvv", "zipCode"}
	if len(got) != len(want) {
		t.Fatalf("fields = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("fields = %v, want %v", got, want)
		}
	}

	// A failed validation leaves the cart intact.
	if cart.Count() != 1 {
		t.Error("validation failure mutated the cart")
	}
}

func TestPlaceOrderNonCardSkipsCardFields(t *testing.T) {
	ctx := context.Background()
	cart, _, checkout := checkoutFixture(t)
	cart.AddItem(ctx, tee(), 1)

	order, err := checkout.PlaceOrder(ctx, validShipping(), app.PaymentForm{Method: "paypal"})
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	if order.ID == "" {
		t.Error("expected order id")
	}
}

func TestPlaceOrderTotals(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		tax      float64
		shipping float64
		total    float64
	}{
		{"free shipping above threshold", 60.00, 4.80, 0, 64.80},
		{"flat shipping below threshold", 30.00, 2.40, 10, 42.40},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			cart, _, checkout := checkoutFixture(t)
			cart.AddItem(ctx, domain.Product{ID: 1, Name: "Coat", Price: tc.price}, 1)

			order, err := checkout.PlaceOrder(ctx, validShipping(), validCard())
			if err != nil {
				t.Fatalf("PlaceOrder: %v", err)
			}
			if order.Subtotal != tc.price {
				t.Errorf("subtotal = %v, want %v", order.Subtotal, tc.price)
			}
			if order.Tax != tc.tax {
				t.Errorf("tax = %v, want %v", order.Tax, tc.tax)
			}
			if order.Shipping != tc.shipping {
				t.Errorf("shipping = %v, want %v", order.Shipping, tc.shipping)
			}
			if order.Total != tc.total {
				t.Errorf("total = %v, want %v", order.Total, tc.total)
			}
		})
	}
}

func TestPlaceOrderClearsCartAndAppendsHistory(t *testing.T) {
	ctx := context.Background()
	cart, auth, checkout := checkoutFixture(t)
	cart.AddItem(ctx, tee(), 2)
	cart.AddItem(ctx, jacket(), 1)

	before, _ := auth.Current()
	order, err := checkout.PlaceOrder(ctx, validShipping(), validCard())
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	if cart.Count() != 0 {
		t.Errorf("cart count = %d after checkout, want 0", cart.Count())
	}
	after, _ := auth.Current()
	if len(after.Orders) != len(before.Orders)+1 {
		t.Fatalf("order history grew by %d, want 1", len(after.Orders)-len(before.Orders))
	}
	if after.Orders[len(after.Orders)-1].ID != order.ID {
		t.Error("appended order differs from returned order")
	}
	if order.Status != domain.OrderStatusProcessing {
		t.Errorf("status = %q, want %q", order.Status, domain.OrderStatusProcessing)
	}
	if len(order.Items) != 2 {
		t.Errorf("order items = %d, want 2", len(order.Items))
	}
	if order.ShippingAddress.City != "London" {
		t.Errorf("shipping address = %+v", order.ShippingAddress)
	}
}

func TestOrderSnapshotIsIndependentOfCart(t *testing.T) {
	ctx := context.Background()
	cart, auth, checkout := checkoutFixture(t)
	cart.AddItem(ctx, tee(), 2)

	order, err := checkout.PlaceOrder(ctx, validShipping(), validCard())
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	// New cart activity after checkout must not reach the stored order.
	cart.AddItem(ctx, tee(), 5)
	u, _ := auth.Current()
	stored := u.Orders[len(u.Orders)-1]
	if stored.Items[0].Quantity != 2 || order.Items[0].Quantity != 2 {
		t.Error("order snapshot shares state with the live cart")
	}
}
