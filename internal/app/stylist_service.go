package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"storefront/internal/domain"
)

const stylistSystemPrompt = "You are a personal fashion stylist for an online clothing store. " +
	"Give concise, practical outfit advice grounded in the shopper's stated preferences."

// StylistService serves the AI-stylist page. Advice comes from the
// recommendation model when one is configured and from a canned
// preference-aware fallback otherwise.
type StylistService struct {
	model domain.StylistModel
}

// NewStylistService creates a stylist service. model may be nil when no
// recommendation API is configured.
func NewStylistService(model domain.StylistModel) *StylistService {
	return &StylistService{model: model}
}

// Advise returns styling advice for the given preferences and free-form
// question. fromModel reports whether a live model produced the answer.
func (s *StylistService) Advise(ctx context.Context, prefs domain.Preferences, question string) (advice string, fromModel bool) {
	if s.model != nil {
		prompt := buildStylistPrompt(prefs, question)
		out, err := s.model.Complete(ctx, stylistSystemPrompt, prompt)
		if err == nil && out != "" {
			return out, true
		}
		if err != nil {
			log.Printf("warn: stylist model unavailable, using fallback advice: %v", err)
		}
	}
	return fallbackAdvice(prefs), false
}

func buildStylistPrompt(prefs domain.Preferences, question string) string {
	var b strings.Builder
	b.WriteString("Shopper preferences:\n")
	if prefs.Style != "" {
		fmt.Fprintf(&b, "- style: %s\n", prefs.Style)
	}
	if prefs.Occasion != "" {
		fmt.Fprintf(&b, "- occasion: %s\n", prefs.Occasion)
	}
	if prefs.Budget != "" {
		fmt.Fprintf(&b, "- budget: %s\n", prefs.Budget)
	}
	if prefs.BodyType != "" {
		fmt.Fprintf(&b, "- body type: %s\n", prefs.BodyType)
	}
	if question != "" {
		fmt.Fprintf(&b, "Question: %s\n", question)
	}
	return b.String()
}

func fallbackAdvice(prefs domain.Preferences) string {
	style := prefs.Style
	if style == "" {
		style = "versatile"
	}
	occasion := prefs.Occasion
	if occasion == "" {
		occasion = "everyday wear"
	}
	return fmt.Sprintf(
		"For a %s look suited to %s, start with well-fitting basics in neutral tones, "+
			"add one statement piece, and finish with shoes that match the formality of the occasion. "+
			"Check the Jackets and Shoes sections for pieces that anchor an outfit.",
		style, occasion)
}
