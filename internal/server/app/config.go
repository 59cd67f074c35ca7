package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer           string // Optional: issuer claim for session tokens (default: timeworld)
	DatabaseFile     string // Optional: path to SQLite database file (default: ./timeworld.db)
	MasterSecretFile string // Optional: path to the master secret file the signing key is derived from (default: ./master.secret)

	YandexClientID     string // Optional: Yandex OAuth application id (OAuth login disabled without it)
	YandexClientSecret string // Optional: Yandex OAuth application secret
	OpenWeatherAPIKey  string // Optional: OpenWeatherMap key (canned weather without it)

	SessionTTL           time.Duration // Optional: session token lifetime (default: 30 days)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

func LoadConfig() Config {
	return Config{
		Issuer:           getEnvOrDefault("TIMEWORLD_ISSUER", "timeworld"),
		DatabaseFile:     getEnvOrDefault("TIMEWORLD_DATABASE_FILE", "timeworld.db"),
		MasterSecretFile: getEnvOrDefault("TIMEWORLD_MASTER_SECRET_FILE", "master.secret"),

		YandexClientID:     os.Getenv("YANDEX_CLIENT_ID"),
		YandexClientSecret: os.Getenv("YANDEX_CLIENT_SECRET"),
		OpenWeatherAPIKey:  os.Getenv("OPENWEATHER_API_KEY"),

		SessionTTL:           getEnvDurationOrDefault("TIMEWORLD_SESSION_TTL", 30*24*time.Hour),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}
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
