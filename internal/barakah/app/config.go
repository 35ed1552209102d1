package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	DatabaseFile string // Optional: path to SQLite database file (default: ./barakah.db)

	SessionSigningKey string        // Required: HMAC key for session credentials
	SessionTTL        time.Duration // Optional: session lifetime (default: 24h)
	Issuer            string        // Optional: issuer claim on session credentials (default: barakahbot)

	AdminEmail    string // Optional: seeds the first back-office account on an empty database
	AdminPassword string // Optional: password for the seeded account

	PaymentBaseURL       string // Required: payment provider API base URL
	PaymentSecretKey     string // Required: bearer key for checkout calls
	PaymentWebhookSecret string // Required: shared secret for webhook signatures
	PaymentSuccessURL    string // Optional: where the provider sends donors after paying
	PaymentCancelURL     string // Optional: where the provider sends donors who abort

	ChatBaseURL string // Required for the assistant: chat completion API base URL
	ChatAPIKey  string // Required for the assistant
	ChatModel   string // Optional: model name (default set by the chatbot client)

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

func LoadConfig() Config {
	baseURL := getEnvOrDefault("BARAKAH_BASE_URL", "http://localhost:8080")

	return Config{
		DatabaseFile: getEnvOrDefault("BARAKAH_DATABASE_FILE", "barakah.db"),

		SessionSigningKey: os.Getenv("BARAKAH_SESSION_KEY"),
		SessionTTL:        getEnvDurationOrDefault("BARAKAH_SESSION_TTL", 24*time.Hour),
		Issuer:            getEnvOrDefault("BARAKAH_ISSUER", "barakahbot"),

		AdminEmail:    os.Getenv("BARAKAH_ADMIN_EMAIL"),
		AdminPassword: os.Getenv("BARAKAH_ADMIN_PASSWORD"),

		PaymentBaseURL:       os.Getenv("PAYMENT_BASE_URL"),
		PaymentSecretKey:     os.Getenv("PAYMENT_SECRET_KEY"),
		PaymentWebhookSecret: os.Getenv("PAYMENT_WEBHOOK_SECRET"),
		PaymentSuccessURL:    getEnvOrDefault("PAYMENT_SUCCESS_URL", baseURL+"/dashboard"),
		PaymentCancelURL:     getEnvOrDefault("PAYMENT_CANCEL_URL", baseURL+"/"),

		ChatBaseURL: os.Getenv("CHAT_BASE_URL"),
		ChatAPIKey:  os.Getenv("CHAT_API_KEY"),
		ChatModel:   os.Getenv("CHAT_MODEL"),

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

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Integer values are taken as minutes.
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
