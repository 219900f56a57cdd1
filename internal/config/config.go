package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config carries everything the storefront service reads from the
// environment. Static catalog data does not live here; only runtime knobs do.
type Config struct {
	ServiceName string
	Port        string

	CORSAllowedOrigins   []string
	CORSAllowedMethods   []string
	CORSAllowedHeaders   []string
	CORSAllowCredentials bool
	CORSMaxAge           time.Duration

	RequestBodyLimitBytes int64
	RequestTimeout        time.Duration
	RateLimitPerMinute    int
	RateLimitFailOpen     bool

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	KafkaBrokers string

	SMTPHost string
	SMTPPort string
	SMTPFrom string

	SMSWebhookURL   string
	SMSWebhookToken string

	SessionTTL time.Duration

	RecurringDiscountPercent float64
}

func Load() (Config, error) {
	port, err := Port("PORT", "8080")
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		ServiceName: String("SERVICE_NAME", "storefront"),
		Port:        port,

		CORSAllowedOrigins:   List(String("CORS_ALLOWED_ORIGINS", "")),
		CORSAllowedMethods:   List(String("CORS_ALLOWED_METHODS", "GET,POST,OPTIONS")),
		CORSAllowedHeaders:   List(String("CORS_ALLOWED_HEADERS", "Content-Type,X-Request-Id")),
		CORSAllowCredentials: Bool("CORS_ALLOW_CREDENTIALS", false),
		CORSMaxAge:           time.Duration(Int("CORS_MAX_AGE_SECONDS", 600)) * time.Second,

		RequestBodyLimitBytes: int64(Int("REQUEST_BODY_LIMIT_BYTES", 1<<20)),
		RequestTimeout:        time.Duration(Int("REQUEST_TIMEOUT_SECONDS", 10)) * time.Second,
		RateLimitPerMinute:    Int("RATE_LIMIT_PER_MINUTE", 120),
		RateLimitFailOpen:     Bool("RATE_LIMIT_FAIL_OPEN", true),

		RedisAddr:     String("REDIS_ADDR", ""),
		RedisPassword: String("REDIS_PASSWORD", ""),
		RedisDB:       Int("REDIS_DB", 0),

		KafkaBrokers: String("KAFKA_BROKERS", ""),

		SMTPHost: String("SMTP_HOST", ""),
		SMTPPort: String("SMTP_PORT", "1025"),
		SMTPFrom: String("SMTP_FROM", "appointments@maison-lumiere.example"),

		SMSWebhookURL:   String("SMS_WEBHOOK_URL", ""),
		SMSWebhookToken: String("SMS_WEBHOOK_TOKEN", ""),

		SessionTTL: time.Duration(Int("WIZARD_SESSION_TTL_MINUTES", 30)) * time.Minute,

		RecurringDiscountPercent: Float("RECURRING_DISCOUNT_PERCENT", 5),
	}
	if cfg.RecurringDiscountPercent < 0 || cfg.RecurringDiscountPercent >= 100 {
		return Config{}, fmt.Errorf("RECURRING_DISCOUNT_PERCENT must be in [0, 100) (got %v)", cfg.RecurringDiscountPercent)
	}
	return cfg, nil
}

func String(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func Int(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func Float(key string, fallback float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func Bool(key string, fallback bool) bool {
	v := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	if v == "" {
		return fallback
	}
	switch v {
	case "1", "true", "t", "yes", "y", "on":
		return true
	default:
		return false
	}
}

func Port(key, fallback string) (string, error) {
	v := String(key, fallback)
	p, err := strconv.Atoi(v)
	if err != nil || p < 1 || p > 65535 {
		return "", fmt.Errorf("%s must be a valid TCP port (got %q)", key, v)
	}
	return v, nil
}

func List(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
