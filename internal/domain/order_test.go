package domain

import "testing"

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name     string
		subtotal float64
		tax      float64
		shipping float64
		total    float64
	}{
		{"above free shipping threshold", 60.00, 4.80, 0, 64.80},
		{"below free shipping threshold", 30.00, 2.40, 10, 42.40},
		{"exactly at threshold still pays shipping", 50.00, 4.00, 10, 64.00},
		{"empty subtotal", 0, 0, 10, 10},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tax, shipping, total := ComputeTotals(tc.subtotal)
			if tax != tc.tax {
				t.Errorf("tax = %v, want %v", tax, tc.tax)
			}
			if shipping != tc.shipping {
				t.Errorf("shipping = %v, want %v", shipping, tc.shipping)
			}
			if total != tc.total {
				t.Errorf("total = %v, want %v", total, tc.total)
			}
		})
	}
}

func TestRoundCents(t *testing.T) {
	if got := RoundCents(2.4000000000000004); got != 2.40 {
		t.Fatalf("RoundCents = %v, want 2.40", got)
	}
	if got := RoundCents(10.005); got != 10.01 {
		t.Fatalf("RoundCents = %v, want 10.01", got)
	}
}
