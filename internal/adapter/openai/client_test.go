package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestComplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("auth header = %q", got)
		}
		var req struct {
			Model    string        `json:"model"`
			Messages []chatMessage `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" || req.Messages[1].Role != "user" {
			t.Errorf("messages = %+v", req.Messages)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Layer the blazer."}}]}`))
	}))
	defer srv.Close()

	c := NewWithBaseURL("test-key", srv.URL, srv.Client())
	out, err := c.Complete(context.Background(), "you are a stylist", "what should I wear?")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if out != "Layer the blazer." {
		t.Errorf("out = %q", out)
	}
}

func TestCompleteErrors(t *testing.T) {
	c := New("")
	if _, err := c.Complete(context.Background(), "s", "p"); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("err = %v, want ErrNotConfigured", err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c = NewWithBaseURL("key", srv.URL, srv.Client())
	if _, err := c.Complete(context.Background(), "s", "p"); err == nil {
		t.Error("expected error for non-200 response")
	}

	empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer empty.Close()

	c = NewWithBaseURL("key", empty.URL, empty.Client())
	if _, err := c.Complete(context.Background(), "s", "p"); err == nil {
		t.Error("expected error for empty choices")
	}
}
