package main

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"

	adapthttp "storefront/internal/adapter/http"
	"storefront/internal/adapter/openai"
	"storefront/internal/adapter/unsplash"
	"storefront/internal/app"
	"storefront/internal/catalog"
	"storefront/internal/config"
	"storefront/internal/domain"
	"storefront/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()

	st, closer, err := openStore(cfg)
	if err != nil {
		log.Fatalf("store open: %v", err)
	}
	defer func() { _ = closer.Close() }()

	cat, err := catalog.Default()
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}

	cart := app.NewCartService(ctx, st)
	auth := app.NewAuthService(ctx, st)
	checkout := app.NewCheckoutService(cart, auth)

	var photos domain.PhotoSearcher
	if cfg.UnsplashAccessKey != "" {
		photos = unsplash.New(cfg.UnsplashAccessKey)
	}
	trends := app.NewTrendsService(photos)

	var model domain.StylistModel
	if cfg.OpenAIAPIKey != "" {
		model = openai.New(cfg.OpenAIAPIKey)
	}
	stylist := app.NewStylistService(model)

	srv := adapthttp.New(cat, cart, auth, checkout, trends, stylist, cfg.WebDir)
	if cfg.OIDC.Enabled() {
		provider, err := adapthttp.NewOIDCProvider(ctx, cfg.OIDC)
		if err != nil {
			log.Fatalf("oidc discovery: %v", err)
		}
		srv = srv.WithOIDC(provider)
	}

	log.Printf("listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, srv.Handler()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

// openStore picks postgres when DATABASE_URL is set and falls back to a
// local sqlite file otherwise.
func openStore(cfg config.Config) (domain.Store, io.Closer, error) {
	if cfg.DatabaseURL != "" {
		db, err := store.OpenPostgres(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return db, db, nil
	}
	db, err := store.OpenSQLite(cfg.StorePath)
	if err != nil {
		return nil, nil, err
	}
	return db, db, nil
}
