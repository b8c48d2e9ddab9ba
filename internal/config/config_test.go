package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		original, had := os.LookupEnv(k)
		os.Unsetenv(k)
		t.Cleanup(func() {
			if had {
				os.Setenv(k, original)
			}
		})
	}
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	clearEnv(t, "DATABASE_URL")
	_, err := Load()
	require.Error(t, err)
}

func TestLoadAppliesDefaults(t *testing.T) {
	clearEnv(t, "DATABASE_URL", "API_ENV", "PAGE_SIZE")
	os.Setenv("DATABASE_URL", "postgres://localhost/covid19")
	t.Cleanup(func() { os.Unsetenv("DATABASE_URL") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "PRODUCTION", cfg.APIEnv)
	assert.Equal(t, 2500, cfg.PageSize)
}

func TestValidateRejectsUnknownEnvironment(t *testing.T) {
	cfg := &Config{DatabaseURL: "postgres://localhost/covid19", PageSize: 1, APIEnv: "QA"}
	require.Error(t, cfg.Validate())
}
