package adapthttp

import (
	"errors"
	"net/http"

	"storefront/internal/domain"
)

func (s *Server) handleTrends(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"trends": s.trends.GetTrends(r.Context())})
}

func (s *Server) handleStylist(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Question string `json:"question"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Question == "" {
		writeError(w, http.StatusBadRequest, errors.New("question is required"))
		return
	}

	// Personalize with the signed-in user's preferences when present.
	var prefs domain.Preferences
	if user, ok := s.auth.Current(); ok {
		prefs = user.Preferences
	}

	advice, fromModel := s.stylist.Advise(r.Context(), prefs, req.Question)
	writeJSON(w, http.StatusOK, map[string]any{
		"advice":    advice,
		"fromModel": fromModel,
	})
}
