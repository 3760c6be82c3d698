package adapthttp

import (
	"errors"
	"net/http"

	"storefront/internal/app"
)

func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Shipping app.ShippingForm `json:"shipping"`
		Payment  app.PaymentForm  `json:"payment"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	order, err := s.checkout.PlaceOrder(r.Context(), req.Shipping, req.Payment)
	var verr *app.ValidationError
	switch {
	case errors.Is(err, app.ErrNotAuthenticated):
		writeError(w, http.StatusUnauthorized, err)
		return
	case errors.Is(err, app.ErrEmptyCart):
		writeError(w, http.StatusBadRequest, err)
		return
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":  verr.Error(),
			"fields": verr.Fields,
		})
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"order": order})
}
