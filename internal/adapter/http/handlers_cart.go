package adapthttp

import (
	"errors"
	"net/http"
)

func (s *Server) writeCart(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, map[string]any{
		"items":    s.cart.Items(),
		"count":    s.cart.Count(),
		"subtotal": s.cart.Subtotal(),
	})
}

func (s *Server) handleCart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	s.writeCart(w)
}

func (s *Server) handleCartAdd(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		ProductID int64 `json:"productId"`
		Quantity  int   `json:"quantity"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if body.Quantity == 0 {
		body.Quantity = 1
	}
	p, found := s.catalog.ByID(body.ProductID)
	if !found {
		writeError(w, http.StatusNotFound, errors.New("product not found"))
		return
	}
	if !s.cart.AddItem(r.Context(), p, body.Quantity) {
		writeError(w, http.StatusBadRequest, errors.New("invalid product or quantity"))
		return
	}
	s.writeCart(w)
}

func (s *Server) handleCartUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		ProductID int64 `json:"productId"`
		Quantity  int   `json:"quantity"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.cart.UpdateQuantity(r.Context(), body.ProductID, body.Quantity)
	s.writeCart(w)
}

func (s *Server) handleCartRemove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		ProductID int64 `json:"productId"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.cart.RemoveItem(r.Context(), body.ProductID)
	s.writeCart(w)
}

func (s *Server) handleCartClear(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	s.cart.Clear(r.Context())
	s.writeCart(w)
}
