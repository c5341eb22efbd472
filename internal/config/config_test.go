package config

import (
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "staffing")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_NAME", "staffing")
	t.Setenv("DB_USER", "staffing")
	t.Setenv("JWT_ACCESS_SECRET", "a")
	t.Setenv("JWT_REFRESH_SECRET", "b")
}

func TestLoad_MissingRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_NAME", "")
	t.Setenv("DB_HOST", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing required env")
	}
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Redis.TTL != 600*time.Second {
		t.Fatalf("redis ttl = %v, want 600s", cfg.Redis.TTL)
	}
	if cfg.JWT.AccessExpiresIn != 15*time.Minute {
		t.Fatalf("access expiry = %v, want 15m", cfg.JWT.AccessExpiresIn)
	}
	if cfg.Export.Port != 22 {
		t.Fatalf("sftp port = %d, want 22", cfg.Export.Port)
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("REDIS_TTL", "60")
	t.Setenv("SFTP_PORT", "2222")
	t.Setenv("DB_POOL_MAX_CONNS", "8")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Redis.TTL != 60*time.Second {
		t.Fatalf("redis ttl = %v, want 60s", cfg.Redis.TTL)
	}
	if cfg.Export.Port != 2222 {
		t.Fatalf("sftp port = %d", cfg.Export.Port)
	}
	if cfg.Database.PoolMaxConns != 8 {
		t.Fatalf("pool max conns = %d", cfg.Database.PoolMaxConns)
	}
}
