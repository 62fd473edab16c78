package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Port != "8000" {
		t.Errorf("port = %q, want 8000", cfg.Port)
	}
	if cfg.APIPrefix != "/api" {
		t.Errorf("api prefix = %q, want /api", cfg.APIPrefix)
	}
	if cfg.Bounds != DefaultBounds() {
		t.Errorf("bounds = %+v, want defaults", cfg.Bounds)
	}
	if len(cfg.AllowedOrigins) != 2 {
		t.Errorf("allowed origins = %v, want two local defaults", cfg.AllowedOrigins)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MAX_RANGE_YARDS", "1500")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("MIN_STEP_SIZE", "not-a-number")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Errorf("port = %q, want 9090", cfg.Port)
	}
	if cfg.Bounds.MaxRangeYards != 1500 {
		t.Errorf("max range = %g, want 1500", cfg.Bounds.MaxRangeYards)
	}
	if cfg.Bounds.MinStepSize != 1 {
		t.Errorf("min step = %g, want the default for an unparsable value", cfg.Bounds.MinStepSize)
	}
	want := []string{"https://a.example", "https://b.example"}
	if len(cfg.AllowedOrigins) != len(want) {
		t.Fatalf("allowed origins = %v, want %v", cfg.AllowedOrigins, want)
	}
	for i := range want {
		if cfg.AllowedOrigins[i] != want[i] {
			t.Errorf("origin %d = %q, want %q", i, cfg.AllowedOrigins[i], want[i])
		}
	}
}
