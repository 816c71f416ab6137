package app

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/kawerewagaba/bucketlist/pkg/jwtx"
)

type Config struct {
	Issuer      string // Optional: issuer claim for tokens (default: bucketlist)
	TokenSecret string // Required in prod: HMAC secret for access tokens; generated when empty

	DatabaseFile         string        // Optional: path to SQLite database file (default: ./bucketlist.db)
	PepperFile           string        // Optional: path to file containing pepper for password hashing (default: ./pepper)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	AccessTokenTTL       time.Duration // Access token lifetime (default: 5m)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Revocation pruning interval (default: 1m)
}

func LoadConfig() Config {
	// A .env file in the working directory overrides nothing already in the
	// environment; absent files are fine.
	_ = godotenv.Load()

	return Config{
		Issuer:               getEnvOrDefault("BUCKETLIST_ISSUER", "bucketlist"),
		TokenSecret:          os.Getenv("BUCKETLIST_TOKEN_SECRET"),
		DatabaseFile:         getEnvOrDefault("BUCKETLIST_DATABASE_FILE", "bucketlist.db"),
		PepperFile:           getEnvOrDefault("BUCKETLIST_PEPPER_FILE", "pepper"),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		AccessTokenTTL:       getEnvDurationOrDefault("ACCESS_TOKEN_TTL", jwtx.DefaultAccessTokenTTL),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Minute),
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

	// Accept duration strings ("5m", "90s") or plain integer minutes.
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
