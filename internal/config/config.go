// internal/config/config.go
package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort       string
	DBConn           string // empty → built-in catalog
	JWTSecret        string
	JWTExpiresIn     time.Duration
	TelegramToken    string
	ExternalURL      string
	LogLevel         slog.Level
	MetricsNamespace string
	SessionIdleTTL   time.Duration
}

func MustLoad() Config {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-super-secret-jwt-key-change-in-prod"
	}

	jwtExpiresIn := 24 * time.Hour
	if expiresInStr := os.Getenv("JWT_EXPIRES_IN"); expiresInStr != "" {
		if d, err := time.ParseDuration(expiresInStr); err == nil {
			jwtExpiresIn = d
		}
	}

	sessionIdleTTL := 2 * time.Hour
	if ttlStr := os.Getenv("SESSION_IDLE_TTL"); ttlStr != "" {
		if d, err := time.ParseDuration(ttlStr); err == nil && d > 0 {
			sessionIdleTTL = d
		}
	}

	namespace := os.Getenv("METRICS_NAMESPACE")
	if namespace == "" {
		namespace = "points"
	}

	return Config{
		ServerPort:       ":" + port,
		DBConn:           os.Getenv("DATABASE_URL"),
		JWTSecret:        jwtSecret,
		JWTExpiresIn:     jwtExpiresIn,
		TelegramToken:    os.Getenv("TELEGRAM_BOT_TOKEN"),
		ExternalURL:      strings.TrimSuffix(os.Getenv("RENDER_EXTERNAL_URL"), "/"),
		LogLevel:         parseLevel(os.Getenv("LOG_LEVEL")),
		MetricsNamespace: namespace,
		SessionIdleTTL:   sessionIdleTTL,
	}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
