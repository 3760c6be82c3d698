package domain

import "time"

// Preferences holds the styling preferences attached to a user profile.
type Preferences struct {
	Style    string `json:"style"`
	Occasion string `json:"occasion"`
	Budget   string `json:"budget"`
	BodyType string `json:"bodyType"`
}

// User represents a registered shopper and their session-visible profile.
// Orders is append-only; Wishlist has set semantics over product IDs.
type User struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Avatar      string      `json:"avatar"`
	CreatedAt   time.Time   `json:"createdAt"`
	Preferences Preferences `json:"preferences"`
	Orders      []Order     `json:"orders"`
	Wishlist    []int64     `json:"wishlist"`
}

// Clone returns an independent copy of the user, including nested slices.
func (u User) Clone() User {
	out := u
	if u.Orders != nil {
		out.Orders = make([]Order, len(u.Orders))
		copy(out.Orders, u.Orders)
		for i := range out.Orders {
			out.Orders[i].Items = CloneLines(out.Orders[i].Items)
		}
	}
	if u.Wishlist != nil {
		out.Wishlist = make([]int64, len(u.Wishlist))
		copy(out.Wishlist, u.Wishlist)
	}
	return out
}

// InWishlist reports whether the product ID is present in the wishlist.
func (u User) InWishlist(productID int64) bool {
	for _, id := range u.Wishlist {
		if id == productID {
			return true
		}
	}
	return false
}

// PreferencesUpdate is a partial preferences change. Nil fields are left
// untouched so an update never drops unrelated preference fields.
type PreferencesUpdate struct {
	Style    *string `json:"style"`
	Occasion *string `json:"occasion"`
	Budget   *string `json:"budget"`
	BodyType *string `json:"bodyType"`
}

// ProfileUpdate is a partial profile change applied with merge semantics:
// top-level fields replace when set, Preferences merges key-by-key, and
// AppendOrders only ever appends to the order history.
type ProfileUpdate struct {
	Name         *string            `json:"name"`
	Avatar       *string            `json:"avatar"`
	Preferences  *PreferencesUpdate `json:"preferences"`
	Wishlist     []int64            `json:"wishlist"`
	AppendOrders []Order            `json:"-"`
}

// Apply merges the update into the user in place.
func (upd ProfileUpdate) Apply(u *User) {
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Avatar != nil {
		u.Avatar = *upd.Avatar
	}
	if upd.Preferences != nil {
		if upd.Preferences.Style != nil {
			u.Preferences.Style = *upd.Preferences.Style
		}
		if upd.Preferences.Occasion != nil {
			u.Preferences.Occasion = *upd.Preferences.Occasion
		}
		if upd.Preferences.Budget != nil {
			u.Preferences.Budget = *upd.Preferences.Budget
		}
		if upd.Preferences.BodyType != nil {
			u.Preferences.BodyType = *upd.Preferences.BodyType
		}
	}
	if upd.Wishlist != nil {
		u.Wishlist = append([]int64(nil), upd.Wishlist...)
	}
	if len(upd.AppendOrders) > 0 {
		u.Orders = append(u.Orders, upd.AppendOrders...)
	}
}

// Credential links a login email to its bcrypt password hash. Credentials
// are stored separately from the profile and never leave the directory.
type Credential struct {
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
}
