package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer            string // Required: issuer claim expected on access tokens
	AuthPublicKeyFile string // Required: path to Ed25519 public key PEM for token verification
	WebhookSecret     string // Required: shared secret for webhook signature verification

	DatabaseFile         string        // Optional: path to SQLite database file (default: ./cryptly.db)
	InvitationTTL        time.Duration // Optional: invitation redeem window (default: 7 days)
	DeviceTTL            time.Duration // Optional: device pairing session window (default: 10m)
	EventBufferSize      int           // Optional: internal event channel buffer (default: 64)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:            getEnvOrDefault("CRYPTLY_ISSUER", "cryptly-auth"),
		AuthPublicKeyFile: os.Getenv("CRYPTLY_AUTH_PUBLIC_KEY_FILE"),
		WebhookSecret:     os.Getenv("CRYPTLY_WEBHOOK_SECRET"),
		DatabaseFile: getEnvOrDefault(
			"CRYPTLY_DATABASE_FILE",
			"cryptly.db",
		), // Default to ./cryptly.db
		InvitationTTL:        getEnvDurationOrDefault("CRYPTLY_INVITATION_TTL", 7*24*time.Hour),
		DeviceTTL:            getEnvDurationOrDefault("CRYPTLY_DEVICE_TTL", 10*time.Minute),
		EventBufferSize:      getEnvIntOrDefault("CRYPTLY_EVENT_BUFFER", 64),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
