package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// FromEnv reads .env (if present) and assembles the nested settings mapping
// the application loads at startup. Pass explicit file names to read
// something other than ".env"; a missing file is not an error — production
// environments set real variables instead.
func FromEnv(envFiles ...string) map[string]any {
	files := envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}
	_ = godotenv.Load(files...)

	return map[string]any{
		"server": map[string]any{
			"host":       env("SERVER_HOST", "127.0.0.1"),
			"port":       envInt("SERVER_PORT", 5000),
			"debug":      envBool("DEBUG", false),
			"secret_key": env("SECRET_KEY", "dev-secret-key"),
		},
		"database": map[string]any{
			"driver":   env("DB_DRIVER", "memory"),
			"host":     env("DB_HOST", "localhost"),
			"port":     envInt("DB_PORT", 3306),
			"username": env("DB_USERNAME", "root"),
			"password": env("DB_PASSWORD", ""),
			"database": env("DB_DATABASE", "hexagonal"),
			"url":      databaseURL(),
		},
		"redis": map[string]any{
			"host":     env("REDIS_HOST", "localhost"),
			"port":     envInt("REDIS_PORT", 6379),
			"password": env("REDIS_PASSWORD", ""),
			"db":       envInt("REDIS_DB", 0),
		},
		"log": map[string]any{
			"level": env("LOG_LEVEL", "info"),
		},
	}
}

// databaseURL honors an explicit DB_URL, otherwise composes one from parts.
func databaseURL() string {
	if url := os.Getenv("DB_URL"); url != "" {
		return url
	}
	return fmt.Sprintf("%s://%s:%s@%s:%d/%s",
		env("DB_DRIVER", "memory"),
		env("DB_USERNAME", "root"),
		env("DB_PASSWORD", ""),
		env("DB_HOST", "localhost"),
		envInt("DB_PORT", 3306),
		env("DB_DATABASE", "hexagonal"),
	)
}

// ── helpers ──────────────────────────────────────────────────────────────────

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return i
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
