package adapthttp

import (
	"net/http"
	"time"

	"storefront/internal/app"
	"storefront/internal/catalog"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	catalog  *catalog.Catalog
	cart     *app.CartService
	auth     *app.AuthService
	checkout *app.CheckoutService
	trends   *app.TrendsService
	stylist  *app.StylistService

	webDir      string
	oidc        *OIDCProvider
	probeClient *http.Client
}

// New creates a Server wired to the given application services.
func New(cat *catalog.Catalog, cart *app.CartService, auth *app.AuthService, checkout *app.CheckoutService, trends *app.TrendsService, stylist *app.StylistService, webDir string) *Server {
	return &Server{
		catalog:     cat,
		cart:        cart,
		auth:        auth,
		checkout:    checkout,
		trends:      trends,
		stylist:     stylist,
		webDir:      webDir,
		probeClient: &http.Client{Timeout: 5 * time.Second},
	}
}

// WithOIDC enables the SSO login routes.
func (s *Server) WithOIDC(p *OIDCProvider) *Server {
	s.oidc = p
	return s
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})
	api.HandleFunc("/config", s.handleConfig)

	api.HandleFunc("/products", s.handleProducts)
	api.HandleFunc("/products/get", s.handleProductGet)
	api.HandleFunc("/products/search", s.handleProductSearch)
	api.HandleFunc("/products/image", s.handleProductImage)
	api.HandleFunc("/categories", s.handleCategories)

	api.HandleFunc("/cart", s.handleCart)
	api.HandleFunc("/cart/add", s.handleCartAdd)
	api.HandleFunc("/cart/update", s.handleCartUpdate)
	api.HandleFunc("/cart/remove", s.handleCartRemove)
	api.HandleFunc("/cart/clear", s.handleCartClear)

	api.HandleFunc("/auth/register", s.handleRegister)
	api.HandleFunc("/auth/login", s.handleLogin)
	api.HandleFunc("/auth/logout", s.handleLogout)
	api.HandleFunc("/auth/sso/login", s.handleSSOLogin)
	api.HandleFunc("/auth/sso/callback", s.handleSSOCallback)

	api.Handle("/auth/me", s.requireSession(http.HandlerFunc(s.handleMe)))
	api.Handle("/profile", s.requireSession(http.HandlerFunc(s.handleProfileUpdate)))
	api.Handle("/profile/wishlist", s.requireSession(http.HandlerFunc(s.handleWishlistToggle)))
	api.Handle("/orders", s.requireSession(http.HandlerFunc(s.handleOrders)))
	api.Handle("/checkout", s.requireSession(http.HandlerFunc(s.handleCheckout)))

	api.HandleFunc("/trends", s.handleTrends)
	api.HandleFunc("/stylist", s.handleStylist)

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))
	root.Handle("/", spaFromDisk(s.webDir))

	return s.loggingMiddleware(withNoCache(root))
}
