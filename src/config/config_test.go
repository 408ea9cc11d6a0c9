package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	for _, key := range []string{"PORT", "LOG_LEVEL", "STOCK_DATA_PATH", "DIVIDEND_TAX_RATE",
		"CALC_CACHE_EXPIRATION", "RATE_LIMIT_BURST", "ALLOWED_ORIGINS", "DEFAULT_DIVIDEND_GROWTH"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	require.NotNil(t, cfg)
	assert.Same(t, cfg, Cfg)

	// Empty values fall through to defaults for typed settings only.
	assert.Equal(t, 0.154, cfg.DividendTaxRate)
	assert.Equal(t, 10*time.Minute, cfg.CalcCacheExpiration)
	assert.Equal(t, 30, cfg.RateLimitBurst)
	assert.Equal(t, 0.0, cfg.DefaultDividendGrowth)
	assert.Empty(t, cfg.AllowedOrigins)
}

func TestLoadConfig_Overrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("STOCK_DATA_PATH", "/srv/stocks.json")
	t.Setenv("DIVIDEND_TAX_RATE", "0.22")
	t.Setenv("CALC_CACHE_EXPIRATION", "90s")
	t.Setenv("RATE_LIMIT_BURST", "5")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("DEFAULT_DIVIDEND_GROWTH", "6.5")

	cfg := LoadConfig()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/srv/stocks.json", cfg.StockDataPath)
	assert.Equal(t, 0.22, cfg.DividendTaxRate)
	assert.Equal(t, 90*time.Second, cfg.CalcCacheExpiration)
	assert.Equal(t, 5, cfg.RateLimitBurst)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, 6.5, cfg.DefaultDividendGrowth)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DIVIDEND_TAX_RATE", "1.2")
	t.Setenv("CALC_CACHE_EXPIRATION", "soon")
	t.Setenv("RATE_LIMIT_BURST", "many")

	cfg := LoadConfig()
	assert.Equal(t, 0.154, cfg.DividendTaxRate)
	assert.Equal(t, 10*time.Minute, cfg.CalcCacheExpiration)
	assert.Equal(t, 30, cfg.RateLimitBurst)
}
