package config

import "os"

// Config holds the application configuration
// Note: the engine itself is pure; configuration only shapes the demo
// binary's defaults and observability.
type Config struct {
	// Environment
	Environment string

	// Generation defaults
	DefaultGenre string
	DefaultKey   string
	DefaultMode  string
	DefaultBars  string

	// Observability
	SentryDSN string // Sentry DSN for error tracking
}

func Load() *Config {
	return &Config{
		Environment:  getEnv("ENVIRONMENT", "development"),
		DefaultGenre: getEnv("GROOVEKIT_GENRE", "organic house"),
		DefaultKey:   getEnv("GROOVEKIT_KEY", "A"),
		DefaultMode:  getEnv("GROOVEKIT_MODE", "minor"),
		DefaultBars:  getEnv("GROOVEKIT_BARS", "8"),
		SentryDSN:    getEnv("SENTRY_DSN", ""),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}
