package config

import "os"

// Environment variables read at startup.
const (
	EnvSettings = "PONG_CONFIG"
	EnvAssets   = "PONG_ASSETS"
	EnvLogLevel = "PONG_LOG_LEVEL"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
