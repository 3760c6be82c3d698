package app

import (
	"context"
	"log"

	"storefront/internal/domain"
)

// fallbackTrends is served whenever the photo-search collaborator is
// unconfigured or unreachable.
var fallbackTrends = []domain.Trend{
	{ID: 1, Title: "Oversized Blazers", Description: "The power suit gets a modern twist with oversized blazers perfect for any occasion", ImageURL: "https://images.unsplash.com/photo-1594633312681-425c7b97ccd1?auto=format&fit=crop&w=774&q=80", Category: "Formal"},
	{ID: 2, Title: "Cottagecore Aesthetic", Description: "Embrace the romantic, vintage-inspired cottagecore trend with flowy dresses and florals", ImageURL: "https://images.unsplash.com/photo-1515372039744-b8f02a3ae446?auto=format&fit=crop&w=774&q=80", Category: "Casual"},
	{ID: 3, Title: "Sustainable Fashion", Description: "Eco-friendly materials and ethical production are leading the fashion revolution", ImageURL: "https://images.unsplash.com/photo-1558769132-cb1aea458c5e?auto=format&fit=crop&w=774&q=80", Category: "Seasonal"},
	{ID: 4, Title: "Y2K Revival", Description: "Low-rise jeans, metallic fabrics, and futuristic accessories make a comeback", ImageURL: "https://images.unsplash.com/photo-1509631179647-0177331693ae?auto=format&fit=crop&w=774&q=80", Category: "Street Style"},
	{ID: 5, Title: "Minimalist Wardrobe", Description: "Clean lines, neutral colors, and timeless pieces define the minimalist trend", ImageURL: "https://images.unsplash.com/photo-1566479179817-29b5da9a3afe?auto=format&fit=crop&w=774&q=80", Category: "Casual"},
	{ID: 6, Title: "Bold Patterns", Description: "Make a statement with vibrant prints and eye-catching patterns", ImageURL: "https://images.unsplash.com/photo-1469334031218-e382a71b716b?auto=format&fit=crop&w=774&q=80", Category: "Formal"},
	{ID: 7, Title: "Athleisure Evolution", Description: "The boundary between activewear and everyday fashion continues to blur", ImageURL: "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?auto=format&fit=crop&w=774&q=80", Category: "Street Style"},
	{ID: 8, Title: "Vintage Denim", Description: "Classic denim styles with a modern twist are trending this year", ImageURL: "https://images.unsplash.com/photo-1542272604-787c3835535d?auto=format&fit=crop&w=774&q=80", Category: "Casual"},
	{ID: 9, Title: "Statement Sleeves", Description: "Dramatic sleeves add flair to any outfit, from puff sleeves to bell sleeves", ImageURL: "https://images.unsplash.com/photo-1483985988355-763728e1935b?auto=format&fit=crop&w=774&q=80", Category: "Formal"},
	{ID: 10, Title: "Sustainable Footwear", Description: "Eco-conscious shoe brands are revolutionizing the footwear industry", ImageURL: "https://images.unsplash.com/photo-1549298916-b41d501d3772?auto=format&fit=crop&w=774&q=80", Category: "Seasonal"},
	{ID: 11, Title: "Gender-Neutral Fashion", Description: "Breaking traditional boundaries with inclusive, unisex clothing designs", ImageURL: "https://images.unsplash.com/photo-1434389677669-e08b4cac3105?auto=format&fit=crop&w=774&q=80", Category: "Street Style"},
	{ID: 12, Title: "Luxe Loungewear", Description: "Elevated comfort pieces that work from the sofa to the street", ImageURL: "https://images.unsplash.com/photo-1586078130702-d208859b6223?auto=format&fit=crop&w=774&q=80", Category: "Casual"},
}

// TrendsService serves the fashion-trends page. It decorates the curated
// trend list with fresh photos when the search collaborator is available
// and degrades to the built-in images when it is not.
type TrendsService struct {
	photos domain.PhotoSearcher
}

// NewTrendsService creates a trends service. photos may be nil when no
// photo-search API is configured.
func NewTrendsService(photos domain.PhotoSearcher) *TrendsService {
	return &TrendsService{photos: photos}
}

// GetTrends returns the current trend list. It never fails: any
// collaborator error falls back to the built-in data.
func (s *TrendsService) GetTrends(ctx context.Context) []domain.Trend {
	trends := make([]domain.Trend, len(fallbackTrends))
	copy(trends, fallbackTrends)

	if s.photos == nil {
		return trends
	}

	results, err := s.photos.SearchPhotos(ctx, "fashion trends", len(trends))
	if err != nil {
		log.Printf("warn: photo search unavailable, using built-in trends: %v", err)
		return trends
	}
	for i := range trends {
		if i < len(results) && results[i].URL != "" {
			trends[i].ImageURL = results[i].URL
		}
	}
	return trends
}
