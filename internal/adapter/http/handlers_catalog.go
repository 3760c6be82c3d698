package adapthttp

import (
	"errors"
	"net/http"

	"storefront/internal/catalog"
	"storefront/internal/imageutil"
)

func (s *Server) catalogFilter(r *http.Request) catalog.Filter {
	return catalog.Filter{
		Category: r.URL.Query().Get("category"),
		MaxPrice: floatQuery(r, "maxPrice", 0),
		SortBy:   r.URL.Query().Get("sortBy"),
	}
}

func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	products := s.catalog.List(s.catalogFilter(r))
	page := intQuery(r, "page", 1)
	perPage := intQuery(r, "perPage", catalog.DefaultPageSize)
	items, totalPages := catalog.Paginate(products, page, perPage)
	writeJSON(w, http.StatusOK, map[string]any{
		"items":      items,
		"page":       page,
		"totalPages": totalPages,
		"total":      len(products),
	})
}

func (s *Server) handleProductGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	id, ok := int64Query(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, errors.New("id is required"))
		return
	}
	p, found := s.catalog.ByID(id)
	if !found {
		writeError(w, http.StatusNotFound, errors.New("product not found"))
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleProductSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	query := r.URL.Query().Get("q")
	results := s.catalog.Search(query, s.catalogFilter(r))
	writeJSON(w, http.StatusOK, map[string]any{
		"query": query,
		"items": results,
		"total": len(results),
	})
}

// handleProductImage resolves the best-available image URL for a product
// by probing the fallback chain.
func (s *Server) handleProductImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	id, ok := int64Query(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, errors.New("id is required"))
		return
	}
	p, found := s.catalog.ByID(id)
	if !found {
		writeError(w, http.StatusNotFound, errors.New("product not found"))
		return
	}
	candidates := imageutil.Candidates(p.Name, p.Category, p.ImageURL)
	url := imageutil.FirstReachable(r.Context(), s.probeClient, candidates)
	writeJSON(w, http.StatusOK, map[string]any{"imageUrl": url})
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": s.catalog.Categories()})
}
