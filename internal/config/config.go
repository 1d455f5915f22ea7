package config

import "os"

// Config holds the environment-driven server settings.
type Config struct {
	Port         string
	DatabaseURL  string // Postgres DSN; empty means use the SQLite file
	SQLitePath   string
	RedisAddr    string // empty means in-memory sessions
	UploadDir    string
	CORSOrigin   string
	CookieSecure bool
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		Port:         getEnvOrDefault("PORT", "8080"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		SQLitePath:   getEnvOrDefault("SQLITE_PATH", "gameshelf.db"),
		RedisAddr:    os.Getenv("REDIS_ADDR"),
		UploadDir:    getEnvOrDefault("UPLOAD_DIR", "uploads"),
		CORSOrigin:   getEnvOrDefault("CORS_ORIGIN", "http://localhost:3000"),
		CookieSecure: os.Getenv("COOKIE_SECURE") == "true",
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
