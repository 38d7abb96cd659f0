package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Setenv("LEDGER_SCOPE", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, LedgerScopeShared, cfg.LedgerScope)
	assert.Equal(t, 270, cfg.DefaultHorizonDays)
	assert.True(t, cfg.ImportOverdueToTomorrow)
	assert.False(t, cfg.AllowReset)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	viper.Reset()
	t.Setenv("LEDGER_SCOPE", "USER")
	t.Setenv("DEFAULT_HORIZON_DAYS", "90")
	t.Setenv("JWT_EXPIRY_DURATION", "15m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("ALLOW_RESET", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, LedgerScopeUser, cfg.LedgerScope)
	assert.Equal(t, 90, cfg.DefaultHorizonDays)
	assert.Equal(t, 15*time.Minute, cfg.JWTExpiryDuration)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.AllowReset)
	assert.Equal(t, "u1", cfg.ScopeOwner("u1"))
}

func TestLoadConfig_InvalidScopeFallsBack(t *testing.T) {
	viper.Reset()
	t.Setenv("LEDGER_SCOPE", "tenant")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, LedgerScopeShared, cfg.LedgerScope)
	assert.Equal(t, "", cfg.ScopeOwner("u1"))
}
