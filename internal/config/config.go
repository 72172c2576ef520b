package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/justsurfingit/job-platform/internal/logger"
)

type Config struct {
	Port        string
	GinMode     string
	DatabaseURL string

	JWTSecret string
	TokenTTL  time.Duration

	RedisAddr     string
	RedisPassword string

	KafkaBrokers []string
	KafkaTopic   string

	GeminiAPIKey string
	GeminiModel  string

	GmailCredentialsFile string
	GmailTokenFile       string
	NotifyWorkers        int

	CORSAllowedOrigins []string
}

// Load reads .env when present and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Info("Config", ".env not found, using environment variables")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from the given lookup function.
func FromEnv(getenv func(string) string) (Config, error) {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	cfg := Config{
		Port:                 get("PORT", "8080"),
		GinMode:              get("GIN_MODE", ""),
		DatabaseURL:          get("DATABASE_URL", ""),
		JWTSecret:            get("JWT_SECRET", ""),
		RedisAddr:            get("REDIS_ADDR", ""),
		RedisPassword:        get("REDIS_PASSWORD", ""),
		KafkaBrokers:         SplitCSV(get("KAFKA_BROKERS", "")),
		KafkaTopic:           get("KAFKA_TOPIC", "application-events"),
		GeminiAPIKey:         get("GEMINI_API_KEY", ""),
		GeminiModel:          get("GEMINI_MODEL", "gemini-2.5-flash"),
		GmailCredentialsFile: get("GMAIL_CREDENTIALS_FILE", "credential.json"),
		GmailTokenFile:       get("GMAIL_TOKEN_FILE", "token.json"),
		CORSAllowedOrigins:   SplitCSV(get("CORS_ALLOWED_ORIGINS", "*")),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			get("DB_HOST", "localhost"),
			get("DB_PORT", "5432"),
			get("DB_USER", "postgres"),
			get("DB_PASSWORD", "password"),
			get("DB_NAME", "jobplatform"),
		)
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET must be set")
	}

	ttl, err := time.ParseDuration(get("TOKEN_TTL", "24h"))
	if err != nil || ttl <= 0 {
		return Config{}, fmt.Errorf("invalid TOKEN_TTL %q", getenv("TOKEN_TTL"))
	}
	cfg.TokenTTL = ttl

	workers, err := strconv.Atoi(get("NOTIFY_WORKERS", "2"))
	if err != nil || workers < 1 {
		return Config{}, fmt.Errorf("invalid NOTIFY_WORKERS %q", getenv("NOTIFY_WORKERS"))
	}
	cfg.NotifyWorkers = workers

	return cfg, nil
}

func SplitCSV(value string) []string {
	parts := strings.Split(value, ",")
	var result []string
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			result = append(result, part)
		}
	}
	return result
}
