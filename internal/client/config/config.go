package config

import "os"

type Config struct {
	ServerURL      string // Base URL of the timeworld service (default: http://localhost:8080)
	ConfigDir      string // Where the token file lives (default: <user-config-dir>/timeworld)
	YandexClientID string // OAuth application id used to build the provider redirect URL
}

func Load() Config {
	return Config{
		ServerURL:      getEnvOrDefault("TIMEWORLD_SERVER_URL", "http://localhost:8080"),
		ConfigDir:      os.Getenv("TIMEWORLD_CONFIG_DIR"),
		YandexClientID: os.Getenv("TIMEWORLD_YANDEX_CLIENT_ID"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
