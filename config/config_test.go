package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("DB_USER", "root")
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("DB_NAME", "hod_management")
	t.Setenv("PORT", "5000")
	t.Setenv("TOKEN_TTL", "2h")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "5000" {
		t.Errorf("Port = %q, want 5000", cfg.Port)
	}
	if cfg.TokenTTL != 2*time.Hour {
		t.Errorf("TokenTTL = %v, want 2h", cfg.TokenTTL)
	}
	if cfg.FallbackAttendanceRate != 95 {
		t.Errorf("FallbackAttendanceRate = %d, want 95", cfg.FallbackAttendanceRate)
	}

	want := "root:@tcp(db.internal:3307)/hod_management?charset=utf8mb4&parseTime=True&loc=Local"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN = %q, want %q", got, want)
	}
}

func TestIsProduction(t *testing.T) {
	cfg := &Config{Environment: "production"}
	if !cfg.IsProduction() {
		t.Fatal("expected production")
	}
	cfg.Environment = "development"
	if cfg.IsProduction() {
		t.Fatal("expected non-production")
	}
}
