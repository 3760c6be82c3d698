package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", c.Addr)
	}
	if c.StorePath != "storefront.db" {
		t.Errorf("StorePath = %q", c.StorePath)
	}
	if c.OIDC.Enabled() {
		t.Error("SSO should be disabled by default")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ADDR", ":9999")
	t.Setenv("DATABASE_URL", "postgres://localhost/aura")
	t.Setenv("OIDC_ISSUER", "https://sso.example.com")
	t.Setenv("OIDC_CLIENT_ID", "storefront")

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Addr != ":9999" {
		t.Errorf("Addr = %q", c.Addr)
	}
	if c.DatabaseURL != "postgres://localhost/aura" {
		t.Errorf("DatabaseURL = %q", c.DatabaseURL)
	}
	if !c.OIDC.Enabled() {
		t.Error("expected SSO enabled")
	}
}
