package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/imrishuroy/go-pos-terminal/internal/catalog"
	"github.com/imrishuroy/go-pos-terminal/internal/session"
)

type Config struct {
	HTTP        HTTPConfig
	Log         LogConfig
	Display     DisplayConfig
	Metrics     MetricsConfig
	Idempotency IdempotencyConfig

	// Fixed at start and shared by reference; never mutated.
	Catalog     *catalog.Catalog
	Credentials []session.Credential
}

type HTTPConfig struct {
	Addr     string
	RunLocal bool // serve HTTP directly instead of through the Lambda adapter
}

type LogConfig struct {
	Level string // "debug" selects the development logger
}

type DisplayConfig struct {
	CurrencySymbol string
}

type MetricsConfig struct {
	Enabled   bool
	Namespace string
}

type IdempotencyConfig struct {
	TTL time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	ttl, err := time.ParseDuration(getEnv("IDEMPOTENCY_TTL", "48h"))
	if err != nil {
		return nil, err
	}

	return &Config{
		HTTP: HTTPConfig{
			Addr:     getEnv("HTTP_ADDR", ":8080"),
			RunLocal: getBool("RUN_LOCAL", false),
		},
		Log: LogConfig{
			Level: strings.ToLower(getEnv("LOG_LEVEL", "info")),
		},
		Display: DisplayConfig{
			CurrencySymbol: getEnv("CURRENCY_SYMBOL", "₹"),
		},
		Metrics: MetricsConfig{
			Enabled:   getBool("METRICS_ENABLED", false),
			Namespace: getEnv("METRICS_NAMESPACE", "PosTerminal"),
		},
		Idempotency: IdempotencyConfig{
			TTL: ttl,
		},
		Catalog:     catalog.Default(),
		Credentials: session.DefaultCredentials(),
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
