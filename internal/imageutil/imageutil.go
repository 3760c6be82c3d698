// Package imageutil builds prioritized candidate image URLs for products
// and probes them for the first one that actually loads.
package imageutil

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Default render size for product imagery.
const (
	DefaultWidth  = 400
	DefaultHeight = 500
)

var categoryTerms = map[string]string{
	"Tops":    "shirt blouse top fashion",
	"Bottoms": "pants jeans skirt fashion",
	"Dresses": "dress gown fashion",
	"Jackets": "jacket coat blazer fashion",
	"Shoes":   "shoes sneakers boots fashion",
}

const genericTerms = "fashion clothing style"

// FashionImageURL builds a stock-photo URL for a product name and
// category. The name is reduced to its first three words longer than two
// characters; when nothing survives, category terms are used instead.
func FashionImageURL(name, category string, width, height int) string {
	cleaned := strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == ' ' {
			return r
		}
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return ' '
	}, name)

	var words []string
	for _, w := range strings.Fields(cleaned) {
		if len(w) > 2 {
			words = append(words, w)
			if len(words) == 3 {
				break
			}
		}
	}

	query := strings.Join(words, " ")
	if query == "" {
		query = categoryTerms[category]
	}
	if query == "" {
		query = genericTerms
	}
	return fmt.Sprintf("https://source.unsplash.com/%dx%d/?%s&fashion&clothing",
		width, height, url.QueryEscape(query))
}

// PlaceholderURL builds the final-fallback placeholder image.
func PlaceholderURL(text string, width, height int) string {
	return fmt.Sprintf("https://via.placeholder.com/%dx%d/f3f4f6/6b7280?text=%s",
		width, height, url.QueryEscape(text))
}

// Candidates returns the prioritized fallback chain for a product image:
// the original URL, progressively more generic stock-photo URLs, then the
// placeholder.
func Candidates(name, category, imageURL string) []string {
	candidates := []string{
		imageURL,
		FashionImageURL(name, category, DefaultWidth, DefaultHeight),
		FashionImageURL("", category, DefaultWidth, DefaultHeight),
		FashionImageURL("", "", DefaultWidth, DefaultHeight),
		PlaceholderURL(name, DefaultWidth, DefaultHeight),
	}
	out := candidates[:0]
	for _, c := range candidates {
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}

// FirstReachable probes the candidates in order and returns the first URL
// that answers 2xx. When none does, the last candidate (the placeholder)
// is returned so callers always get something renderable.
func FirstReachable(ctx context.Context, client *http.Client, candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	for _, candidate := range candidates {
		req, err := http.NewRequestWithContext(ctx, http.MethodHead, candidate, nil)
		if err != nil {
			continue
		}
		resp, err := client.Do(req)
		if err != nil {
			continue
		}
		_ = resp.Body.Close()
		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return candidate
		}
	}
	return candidates[len(candidates)-1]
}
