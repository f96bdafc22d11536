package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/pets.db")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("DEV_AUTH", "true")
	t.Setenv("DEDUP_LIKES", "1")
	t.Setenv("ADMIN_EMAILS", " admin@example.com, ,boss@example.com ")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("DEFAULT_TIMEZONE", "America/Lima")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Port != "9090" || cfg.Storage.Driver != StorageSQLite || cfg.Storage.SQLitePath != "/tmp/pets.db" {
		t.Fatalf("unexpected config: %#v", cfg)
	}
	if cfg.Auth.SessionTTL != 2*time.Hour || !cfg.Auth.DevAuth || !cfg.Community.DedupLikes {
		t.Fatalf("unexpected auth/community config: %#v %#v", cfg.Auth, cfg.Community)
	}
	if len(cfg.Auth.AdminEmails) != 2 || cfg.Auth.AdminEmails[1] != "boss@example.com" {
		t.Fatalf("unexpected admin emails: %#v", cfg.Auth.AdminEmails)
	}
	if cfg.Redis.DB != 3 {
		t.Fatalf("expected redis db 3, got %d", cfg.Redis.DB)
	}
	loc, err := cfg.Location()
	if err != nil || loc.String() != "America/Lima" {
		t.Fatalf("unexpected location %v err=%v", loc, err)
	}
}

func TestValidate_RejectsBadCombinations(t *testing.T) {
	cases := map[string]func(c *Config){
		"unknown driver":             func(c *Config) { c.Storage.Driver = "mongo" },
		"postgres no dsn":            func(c *Config) { c.Storage.Driver = StoragePostgres },
		"empty secret":               func(c *Config) { c.Auth.JWTSecret = " " },
		"zero ttl":                   func(c *Config) { c.Auth.SessionTTL = 0 },
		"unknown time zone":          func(c *Config) { c.DefaultTimezone = "Mars/Olympus" },
		"default secret outside dev": func(c *Config) { c.Auth.DevAuth = false },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			cfg.Auth.DevAuth = true
			mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}

	dev := Default()
	dev.Auth.DevAuth = true
	if err := dev.Validate(); err != nil {
		t.Fatalf("defaults must be valid in dev mode: %v", err)
	}

	prod := Default()
	prod.Auth.JWTSecret = "a-real-secret"
	if err := prod.Validate(); err != nil {
		t.Fatalf("custom secret outside dev must be valid: %v", err)
	}
}

func TestLoad_RejectsDefaultSecretOutsideDev(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("DEV_AUTH", "false")
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "JWT_SECRET") {
		t.Fatalf("expected JWT_SECRET error, got %v", err)
	}

	t.Setenv("JWT_SECRET", "s3cret")
	if _, err := Load(); err != nil {
		t.Fatalf("Load error: %v", err)
	}
}

func TestWriteRead_TOML(t *testing.T) {
	cfg := Default()
	cfg.Port = "7000"
	cfg.Storage = StorageConfig{Driver: StoragePostgres, DSN: "postgres://pets@localhost/pets"}
	cfg.Auth.ModeratorEmails = []string{"mod@example.com"}
	cfg.Community.ModerationEnabled = true

	var buf bytes.Buffer
	if err := Write(&buf, cfg); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if !strings.Contains(buf.String(), "[storage]") {
		t.Fatalf("expected storage table in toml, got:\n%s", buf.String())
	}

	got, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if got.Port != "7000" || got.Storage.DSN != cfg.Storage.DSN || !got.Community.ModerationEnabled {
		t.Fatalf("round trip mismatch: %#v", got)
	}
	if len(got.Auth.ModeratorEmails) != 1 || got.Auth.SessionTTL != cfg.Auth.SessionTTL {
		t.Fatalf("round trip mismatch in auth: %#v", got.Auth)
	}
}

func TestInit_RefusesToOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "petcare.toml")

	if err := Init(path, Default()); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file to exist: %v", err)
	}
	if err := Init(path, Default()); err == nil {
		t.Fatalf("expected error on second Init")
	}

	cfg, err := ReadFromFile(path)
	if err != nil {
		t.Fatalf("ReadFromFile error: %v", err)
	}
	if cfg.Storage.Driver != StorageMemory {
		t.Fatalf("expected memory driver, got %q", cfg.Storage.Driver)
	}
}
