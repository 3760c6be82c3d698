// Package config loads service configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the full service configuration.
type Config struct {
	Addr   string `env:"ADDR" envDefault:":8080"`
	WebDir string `env:"WEB_DIR" envDefault:"web"`

	// StorePath is the sqlite store file used when DatabaseURL is unset.
	StorePath   string `env:"STORE_PATH" envDefault:"storefront.db"`
	DatabaseURL string `env:"DATABASE_URL"`

	UnsplashAccessKey string `env:"UNSPLASH_ACCESS_KEY"`
	OpenAIAPIKey      string `env:"OPENAI_API_KEY"`

	OIDC OIDC
}

// OIDC configures the optional SSO login flow.
type OIDC struct {
	Issuer       string `env:"OIDC_ISSUER"`
	ClientID     string `env:"OIDC_CLIENT_ID"`
	ClientSecret string `env:"OIDC_CLIENT_SECRET"`
	RedirectURL  string `env:"OIDC_REDIRECT_URL"`
}

// Enabled reports whether enough is configured to offer SSO login.
func (o OIDC) Enabled() bool {
	return o.Issuer != "" && o.ClientID != ""
}

// Load parses configuration from environment variables.
func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}
