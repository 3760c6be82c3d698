package adapthttp

import (
	"errors"
	"net/http"

	"storefront/internal/app"
	"storefront/internal/domain"
)

func (s *Server) handleProfileUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut && r.Method != http.MethodPatch {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var upd domain.ProfileUpdate
	if err := parseJSON(r, &upd); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	user, err := s.auth.UpdateProfile(r.Context(), upd)
	if errors.Is(err, app.ErrNotAuthenticated) {
		writeError(w, http.StatusUnauthorized, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}

func (s *Server) handleWishlistToggle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		ProductID int64 `json:"productId"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.ProductID <= 0 {
		writeError(w, http.StatusBadRequest, errors.New("productId is required"))
		return
	}

	user, err := s.auth.ToggleWishlist(r.Context(), req.ProductID)
	if errors.Is(err, app.ErrNotAuthenticated) {
		writeError(w, http.StatusUnauthorized, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}

func (s *Server) handleOrders(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	user, _ := sessionUser(r)
	orders := user.Orders
	if orders == nil {
		orders = []domain.Order{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"orders": orders})
}
