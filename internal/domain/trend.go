package domain

import "context"

// Trend is one fashion-trend entry shown on the trends page. Trends come
// from the photo-search collaborator when it is configured and from the
// built-in fallback list otherwise.
type Trend struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image"`
	Category    string `json:"category"`
}

// TrendPhoto is a single result from the photo-search collaborator.
type TrendPhoto struct {
	URL         string
	Description string
	Author      string
}

// PhotoSearcher is the port for the external photo-search API. The core
// never depends on its availability; callers fall back to built-in data
// when a search fails.
type PhotoSearcher interface {
	SearchPhotos(ctx context.Context, query string, perPage int) ([]TrendPhoto, error)
}

// StylistModel is the port for the external recommendation model behind
// the AI-stylist page. Same availability contract as PhotoSearcher.
type StylistModel interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}
