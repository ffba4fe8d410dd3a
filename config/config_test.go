package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("PORT", "")
	t.Setenv("DB_TIMEOUT", "")
	t.Setenv("MONGO_TRANSACTIONS", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.DBTimeout)
	assert.Equal(t, 72*time.Hour, cfg.TokenTTL)
	assert.False(t, cfg.MongoTransaction)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("PORT", "8080")
	t.Setenv("DB_TIMEOUT", "250ms")
	t.Setenv("BCRYPT_COST", "not-a-number")
	t.Setenv("MONGO_TRANSACTIONS", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 250*time.Millisecond, cfg.DBTimeout)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.True(t, cfg.MongoTransaction)
}

func TestLoadConfig_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}
