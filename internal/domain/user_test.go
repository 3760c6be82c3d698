package domain

import (
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }

func TestProfileUpdateMergesPreferencesKeyByKey(t *testing.T) {
	u := User{
		Name: "Ada",
		Preferences: Preferences{
			Style:    "minimalist",
			Occasion: "work",
			Budget:   "mid",
			BodyType: "athletic",
		},
	}

	upd := ProfileUpdate{
		Preferences: &PreferencesUpdate{Style: strPtr("vintage")},
	}
	upd.Apply(&u)

	if u.Preferences.Style != "vintage" {
		t.Errorf("style = %q, want %q", u.Preferences.Style, "vintage")
	}
	// The untouched keys must survive a partial preferences update.
	if u.Preferences.Occasion != "work" || u.Preferences.Budget != "mid" || u.Preferences.BodyType != "athletic" {
		t.Errorf("unrelated preferences dropped: %+v", u.Preferences)
	}
}

func TestProfileUpdateAppendsOrders(t *testing.T) {
	u := User{Orders: []Order{{ID: "a"}}}
	ProfileUpdate{AppendOrders: []Order{{ID: "b"}}}.Apply(&u)
	if len(u.Orders) != 2 || u.Orders[1].ID != "b" {
		t.Fatalf("orders = %+v, want [a b]", u.Orders)
	}
}

func TestProfileUpdateLeavesUnsetFields(t *testing.T) {
	u := User{Name: "Ada", Avatar: "http://example.com/a.svg"}
	ProfileUpdate{Name: strPtr("Grace")}.Apply(&u)
	if u.Name != "Grace" {
		t.Errorf("name = %q, want Grace", u.Name)
	}
	if u.Avatar != "http://example.com/a.svg" {
		t.Errorf("avatar changed unexpectedly: %q", u.Avatar)
	}
}

func TestUserCloneIsIndependent(t *testing.T) {
	u := User{
		ID:        "u1",
		CreatedAt: time.Now(),
		Orders:    []Order{{ID: "o1", Items: []CartLine{{ProductID: 1, Quantity: 2}}}},
		Wishlist:  []int64{1, 2},
	}
	c := u.Clone()
	c.Orders[0].Items[0].Quantity = 99
	c.Wishlist[0] = 99
	if u.Orders[0].Items[0].Quantity != 2 {
		t.Error("clone shares order items with original")
	}
	if u.Wishlist[0] != 1 {
		t.Error("clone shares wishlist with original")
	}
}

func TestInWishlist(t *testing.T) {
	u := User{Wishlist: []int64{3, 7}}
	if !u.InWishlist(7) {
		t.Error("expected 7 in wishlist")
	}
	if u.InWishlist(4) {
		t.Error("did not expect 4 in wishlist")
	}
}
