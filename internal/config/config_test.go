package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIURL != "https://api.daneo.app" {
		t.Errorf("APIURL = %q", cfg.APIURL)
	}
	if cfg.NewCardsLimit != 10 || cfg.ReviewCardsLimit != 20 {
		t.Errorf("limits = %d/%d, want 10/20", cfg.NewCardsLimit, cfg.ReviewCardsLimit)
	}
	if cfg.Mode != ModeTyping {
		t.Errorf("mode = %q, want typing default", cfg.Mode)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("DANEO_API_URL", "http://localhost:8080")
	t.Setenv("DANEO_API_TOKEN", "tok-123")
	t.Setenv("DANEO_MODE", "flip")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIURL != "http://localhost:8080" {
		t.Errorf("APIURL = %q, want env override", cfg.APIURL)
	}
	if cfg.APIToken != "tok-123" {
		t.Errorf("APIToken = %q", cfg.APIToken)
	}
	if cfg.Mode != ModeFlip {
		t.Errorf("mode = %q, want flip", cfg.Mode)
	}
}

func TestLoadRejectsUnknownMode(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("DANEO_MODE", "osmosis")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for an unknown mode")
	}
}
