package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestGetFallback(t *testing.T) {
	t.Setenv("FP_TEST_EMPTY", "")
	if got := Get("FP_TEST_EMPTY", "fallback"); got != "fallback" {
		t.Fatalf("Get = %q, want %q", got, "fallback")
	}

	t.Setenv("FP_TEST_SET", " value ")
	if got := Get("FP_TEST_SET", "fallback"); got != "value" {
		t.Fatalf("Get = %q, want %q", got, "value")
	}
}

func TestTypedGetters(t *testing.T) {
	t.Setenv("FP_TEST_INT", "42")
	t.Setenv("FP_TEST_FLOAT", "2.5")
	t.Setenv("FP_TEST_DUR", "90s")
	t.Setenv("FP_TEST_BAD", "abc")

	if n, err := GetInt("FP_TEST_INT", 1); err != nil || n != 42 {
		t.Fatalf("GetInt = %d, %v, want 42, nil", n, err)
	}
	if f, err := GetFloat("FP_TEST_FLOAT", 1); err != nil || f != 2.5 {
		t.Fatalf("GetFloat = %v, %v, want 2.5, nil", f, err)
	}
	if d, err := GetDuration("FP_TEST_DUR", time.Second); err != nil || d != 90*time.Second {
		t.Fatalf("GetDuration = %v, %v, want 90s, nil", d, err)
	}
	if _, err := GetInt("FP_TEST_BAD", 1); err == nil {
		t.Fatalf("GetInt(bad): expected error")
	}
	if n, err := GetInt("FP_TEST_UNSET_KEY", 7); err != nil || n != 7 {
		t.Fatalf("GetInt(unset) = %d, %v, want 7, nil", n, err)
	}
}

func TestLoadFromDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "FP_TEST_DOTENV_PORT=9090\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("FP_TEST_DOTENV_PORT") })

	t.Setenv("LEG_CACHE_TTL", "5m")
	t.Setenv("RATE_LIMIT_BURST", "3")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := os.Getenv("FP_TEST_DOTENV_PORT"); got != "9090" {
		t.Fatalf("dotenv value = %q, want 9090", got)
	}
	if cfg.LegCacheTTL != 5*time.Minute {
		t.Fatalf("LegCacheTTL = %v, want 5m", cfg.LegCacheTTL)
	}
	if cfg.RateLimitBurst != 3 {
		t.Fatalf("RateLimitBurst = %d, want 3", cfg.RateLimitBurst)
	}
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("LEG_CACHE_TTL", "soon")

	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatalf("expected error for bad LEG_CACHE_TTL")
	}
}
