package config

import "testing"

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATABASE_URL", "SQLITE_PATH", "REDIS_ADDR", "UPLOAD_DIR", "COOKIE_SECURE"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.SQLitePath != "gameshelf.db" {
		t.Fatalf("expected default sqlite path, got %s", cfg.SQLitePath)
	}
	if cfg.DatabaseURL != "" || cfg.RedisAddr != "" {
		t.Fatalf("expected empty DSNs by default")
	}
	if cfg.UploadDir != "uploads" {
		t.Fatalf("expected default upload dir, got %s", cfg.UploadDir)
	}
	if cfg.CookieSecure {
		t.Fatalf("expected insecure cookies by default")
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost/db")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("COOKIE_SECURE", "true")

	cfg := LoadConfig()

	if cfg.Port != "9999" {
		t.Fatalf("expected port override, got %s", cfg.Port)
	}
	if cfg.DatabaseURL == "" || cfg.RedisAddr == "" {
		t.Fatalf("expected DSN overrides to apply")
	}
	if !cfg.CookieSecure {
		t.Fatalf("expected secure cookies")
	}
}

func TestGetEnvOrDefault(t *testing.T) {
	t.Setenv("UNIT_TEST_ENV", "value")
	if got := getEnvOrDefault("UNIT_TEST_ENV", "fallback"); got != "value" {
		t.Fatalf("expected env value, got %s", got)
	}

	t.Setenv("UNIT_TEST_ENV", "")
	if got := getEnvOrDefault("UNIT_TEST_ENV", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback value, got %s", got)
	}
}
