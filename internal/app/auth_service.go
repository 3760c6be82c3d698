package app

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"storefront/internal/domain"
	"storefront/internal/store"
)

var (
	// ErrDuplicateEmail indicates a registration against an email that is
	// already in the directory.
	ErrDuplicateEmail = errors.New("an account with this email already exists")
	// ErrInvalidCredentials indicates that the provided email or password
	// was incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrNotAuthenticated indicates an operation that requires a signed-in
	// user was called without one.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrMissingFields indicates a registration with an empty name, email,
	// or password.
	ErrMissingFields = errors.New("name, email, and password are required")
)

// directoryEntry pairs a user profile with its credential in the
// registered-users directory. The hash never leaves this package.
type directoryEntry struct {
	domain.User
	PasswordHash string `json:"passwordHash"`
}

// persistedSession is the payload stored under the active-session key.
type persistedSession struct {
	User  domain.User `json:"user"`
	Token string      `json:"token"`
}

// AuthService owns the active session and the registered-users directory.
// It is a two-state machine: unauthenticated until a register, login, or
// restored session succeeds, then authenticated until logout.
type AuthService struct {
	mu      sync.Mutex
	store   domain.Store
	current *domain.User
	token   string
}

// NewAuthService creates the auth service, restoring a persisted session
// if one exists. A corrupt session payload starts unauthenticated.
func NewAuthService(ctx context.Context, st domain.Store) *AuthService {
	s := &AuthService{store: st}

	raw, ok, err := st.Get(ctx, store.KeyUser)
	if err != nil {
		log.Printf("warn: load session: %v", err)
		return s
	}
	if !ok {
		return s
	}
	var sess persistedSession
	if err := store.Decode(raw, &sess); err != nil {
		log.Printf("warn: discarding corrupt session payload: %v", err)
		return s
	}
	u := sess.User
	s.current = &u
	s.token = sess.Token
	return s
}

// RegisterInput is the profile data collected by the registration form.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register creates a new user with an empty profile, appends the
// credential to the directory, and signs the user in. Email matching is
// case-sensitive exact match. Returns the session token for the cookie.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (domain.User, string, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return domain.User{}, "", ErrMissingFields
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := s.loadDirectory(ctx)
	for _, entry := range dir {
		if entry.Email == input.Email {
			return domain.User{}, "", ErrDuplicateEmail
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Email:     input.Email,
		Avatar:    avatarURL(input.Name),
		CreatedAt: time.Now().UTC(),
		Orders:    []domain.Order{},
		Wishlist:  []int64{},
	}

	dir = append(dir, directoryEntry{User: user.Clone(), PasswordHash: string(hash)})
	s.saveDirectory(ctx, dir)

	return s.startSessionLocked(ctx, user)
}

// Login authenticates against the directory and starts a session.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, entry := range s.loadDirectory(ctx) {
		if entry.Email != email {
			continue
		}
		if entry.PasswordHash == "" {
			// SSO-provisioned account, no password to compare.
			return domain.User{}, "", ErrInvalidCredentials
		}
		if bcrypt.CompareHashAndPassword([]byte(entry.PasswordHash), []byte(password)) != nil {
			return domain.User{}, "", ErrInvalidCredentials
		}
		return s.startSessionLocked(ctx, entry.User)
	}
	return domain.User{}, "", ErrInvalidCredentials
}

// LoginSSO starts a session for an identity already verified by the SSO
// provider, provisioning a directory entry on first sight.
func (s *AuthService) LoginSSO(ctx context.Context, email, name string) (domain.User, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := s.loadDirectory(ctx)
	for _, entry := range dir {
		if entry.Email == email {
			return s.startSessionLocked(ctx, entry.User)
		}
	}

	if name == "" {
		name = email
	}
	user := domain.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Avatar:    avatarURL(name),
		CreatedAt: time.Now().UTC(),
		Orders:    []domain.Order{},
		Wishlist:  []int64{},
	}
	dir = append(dir, directoryEntry{User: user.Clone()})
	s.saveDirectory(ctx, dir)
	return s.startSessionLocked(ctx, user)
}

// Logout ends the session and clears the persisted active-session key.
// The directory of registered users is untouched.
func (s *AuthService) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	s.token = ""
	if err := s.store.Delete(ctx, store.KeyUser); err != nil {
		log.Printf("warn: clear session: %v", err)
	}
}

// Current returns a copy of the signed-in user, if any.
func (s *AuthService) Current() (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return domain.User{}, false
	}
	return s.current.Clone(), true
}

// ValidateToken checks a session cookie value against the active session.
func (s *AuthService) ValidateToken(token string) (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil || s.token == "" {
		return domain.User{}, false
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(s.token)) != 1 {
		return domain.User{}, false
	}
	return s.current.Clone(), true
}

// UpdateProfile merges the partial update into the current session and the
// matching directory entry, so future logins see the updated data.
func (s *AuthService) UpdateProfile(ctx context.Context, upd domain.ProfileUpdate) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateProfileLocked(ctx, upd)
}

func (s *AuthService) updateProfileLocked(ctx context.Context, upd domain.ProfileUpdate) (domain.User, error) {
	if s.current == nil {
		return domain.User{}, ErrNotAuthenticated
	}

	upd.Apply(s.current)
	s.persistSessionLocked(ctx)

	dir := s.loadDirectory(ctx)
	for i := range dir {
		if dir[i].ID == s.current.ID {
			hash := dir[i].PasswordHash
			dir[i] = directoryEntry{User: s.current.Clone(), PasswordHash: hash}
			s.saveDirectory(ctx, dir)
			break
		}
	}
	return s.current.Clone(), nil
}

// ToggleWishlist adds the product to the wishlist if absent and removes it
// if present. Two successive calls restore the original wishlist.
func (s *AuthService) ToggleWishlist(ctx context.Context, productID int64) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return domain.User{}, ErrNotAuthenticated
	}

	wishlist := make([]int64, 0, len(s.current.Wishlist)+1)
	found := false
	for _, id := range s.current.Wishlist {
		if id == productID {
			found = true
			continue
		}
		wishlist = append(wishlist, id)
	}
	if !found {
		wishlist = append(wishlist, productID)
	}
	return s.updateProfileLocked(ctx, domain.ProfileUpdate{Wishlist: wishlist})
}

// AppendOrder adds an immutable order to the session's order history.
func (s *AuthService) AppendOrder(ctx context.Context, order domain.Order) (domain.User, error) {
	return s.UpdateProfile(ctx, domain.ProfileUpdate{AppendOrders: []domain.Order{order}})
}

func (s *AuthService) startSessionLocked(ctx context.Context, user domain.User) (domain.User, string, error) {
	token, err := generateToken()
	if err != nil {
		return domain.User{}, "", err
	}
	u := user.Clone()
	s.current = &u
	s.token = token
	s.persistSessionLocked(ctx)
	return user.Clone(), token, nil
}

func (s *AuthService) persistSessionLocked(ctx context.Context) {
	raw, err := store.Encode(persistedSession{User: s.current.Clone(), Token: s.token})
	if err != nil {
		log.Printf("warn: encode session: %v", err)
		return
	}
	if err := s.store.Set(ctx, store.KeyUser, raw); err != nil {
		log.Printf("warn: persist session: %v", err)
	}
}

func (s *AuthService) loadDirectory(ctx context.Context) []directoryEntry {
	raw, ok, err := s.store.Get(ctx, store.KeyDirectory)
	if err != nil {
		log.Printf("warn: load user directory: %v", err)
		return nil
	}
	if !ok {
		return nil
	}
	var dir []directoryEntry
	if err := store.Decode(raw, &dir); err != nil {
		log.Printf("warn: discarding corrupt user directory: %v", err)
		return nil
	}
	return dir
}

func (s *AuthService) saveDirectory(ctx context.Context, dir []directoryEntry) {
	raw, err := store.Encode(dir)
	if err != nil {
		log.Printf("warn: encode user directory: %v", err)
		return
	}
	if err := s.store.Set(ctx, store.KeyDirectory, raw); err != nil {
		log.Printf("warn: persist user directory: %v", err)
	}
}

func avatarURL(name string) string {
	return "https://api.dicebear.com/7.x/initials/svg?seed=" + url.QueryEscape(name)
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
