package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds environment-driven defaults applied to every freshly
// constructed client, before per-name configuration actions run.
type Config struct {
	AccessToken    string
	Version        string
	Language       string
	UserAgent      string
	BaseURL        string
	RequestTimeout time.Duration
}

// Load reads .env (if present) and populates a Config from environment
// variables. Call once at bootstrap: cfg := config.Load()
//
// Recognized variables:
//
//	VK_ACCESS_TOKEN, VK_API_VERSION, VK_LANGUAGE, VK_USER_AGENT,
//	VK_BASE_URL, VK_REQUEST_TIMEOUT (Go duration, e.g. "15s")
func Load(envFiles ...string) *Config {
	files := envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}
	// Non-fatal: .env may not exist in production
	_ = godotenv.Load(files...)

	return &Config{
		AccessToken:    env("VK_ACCESS_TOKEN", ""),
		Version:        env("VK_API_VERSION", ""),
		Language:       env("VK_LANGUAGE", ""),
		UserAgent:      env("VK_USER_AGENT", ""),
		BaseURL:        env("VK_BASE_URL", ""),
		RequestTimeout: envDuration("VK_REQUEST_TIMEOUT", 0),
	}
}

// Get returns a raw env value, falling back to defaultVal.
func Get(key, defaultVal string) string {
	return env(key, defaultVal)
}

// ── helpers ─────────────────────────────────────────────────────────────────

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
