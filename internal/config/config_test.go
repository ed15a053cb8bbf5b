package config

import (
	"errors"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"DATABASE_URL", "UPLOAD_ROOT", "MAX_UPLOAD_BYTES", "SERVER_PORT", "ALLOW_SIGNUP"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	if cfg.UploadRoot != DefaultUploadRoot {
		t.Errorf("upload root = %q", cfg.UploadRoot)
	}
	if cfg.MaxUploadBytes != 16*1024*1024 {
		t.Errorf("max upload = %d", cfg.MaxUploadBytes)
	}
	if cfg.DBUrl != DefaultDatabaseURL || !cfg.UsesSQLite() {
		t.Errorf("expected local sqlite default, got %q", cfg.DBUrl)
	}
	if cfg.Addr() != ":8080" {
		t.Errorf("addr = %q", cfg.Addr())
	}
	if cfg.AllowSignup {
		t.Error("signup must be off by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/odu?sslmode=disable")
	t.Setenv("MAX_UPLOAD_BYTES", "1024")
	t.Setenv("ALLOW_SIGNUP", "yes")
	t.Setenv("LOGIN_RATE_PER_MIN", "abc")

	cfg := Load()

	if cfg.UsesSQLite() {
		t.Error("postgres url detected as sqlite")
	}
	if cfg.MaxUploadBytes != 1024 {
		t.Errorf("max upload = %d", cfg.MaxUploadBytes)
	}
	if !cfg.AllowSignup {
		t.Error("signup override ignored")
	}
	if cfg.LoginRatePerMin != 10 {
		t.Errorf("invalid int must fall back to default, got %d", cfg.LoginRatePerMin)
	}
}

func TestCheckSecretRefusesDefaultInRelease(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	cfg := Load()
	if !cfg.UsesDefaultSecret() {
		t.Fatalf("expected default secret, got %q", cfg.JWTSecret)
	}
	if err := cfg.CheckSecret(true); !errors.Is(err, ErrDefaultSecret) {
		t.Errorf("release with default secret: %v", err)
	}
	if err := cfg.CheckSecret(false); err != nil {
		t.Errorf("debug mode must only warn: %v", err)
	}

	t.Setenv("JWT_SECRET", "s3cr3t-de-verdade")
	if err := Load().CheckSecret(true); err != nil {
		t.Errorf("custom secret refused: %v", err)
	}
}
