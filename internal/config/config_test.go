package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "RUN_LOCAL", "LOG_LEVEL", "CURRENCY_SYMBOL", "METRICS_ENABLED", "METRICS_NAMESPACE", "IDEMPOTENCY_TTL"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.False(t, cfg.HTTP.RunLocal)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "₹", cfg.Display.CurrencySymbol)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "PosTerminal", cfg.Metrics.Namespace)
	assert.Equal(t, 48*time.Hour, cfg.Idempotency.TTL)
	assert.Equal(t, 6, cfg.Catalog.Len())
	assert.Len(t, cfg.Credentials, 2)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("RUN_LOCAL", "true")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("CURRENCY_SYMBOL", "$")
	t.Setenv("METRICS_ENABLED", "1")
	t.Setenv("METRICS_NAMESPACE", "Till")
	t.Setenv("IDEMPOTENCY_TTL", "15m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.True(t, cfg.HTTP.RunLocal)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "$", cfg.Display.CurrencySymbol)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "Till", cfg.Metrics.Namespace)
	assert.Equal(t, 15*time.Minute, cfg.Idempotency.TTL)
}

func TestLoad_BadTTL(t *testing.T) {
	t.Setenv("IDEMPOTENCY_TTL", "soon")
	_, err := Load()
	assert.Error(t, err)
}

func TestGetBool_Invalid(t *testing.T) {
	t.Setenv("RUN_LOCAL", "maybe")
	assert.False(t, getBool("RUN_LOCAL", false))
	assert.True(t, getBool("RUN_LOCAL", true))
}
