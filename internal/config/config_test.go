package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_DSN", "AUTO_MIGRATE", "PAGE_SIZE", "LOG_LEVEL", "LOG_FORMAT", "APP_NAME", "SERVER_READ_TIMEOUT"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, ":8080", cfg.Server.Addr())
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "", cfg.Postgres.DSN)
	assert.False(t, cfg.Postgres.AutoMigrate)
	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "pets-api", cfg.Log.App)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DSN", "  postgres://u:p@localhost:5432/pets  ")
	t.Setenv("AUTO_MIGRATE", "yes")
	t.Setenv("PAGE_SIZE", "2")
	t.Setenv("SERVER_READ_TIMEOUT", "1s")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr())
	assert.Equal(t, "postgres://u:p@localhost:5432/pets", cfg.Postgres.DSN)
	assert.True(t, cfg.Postgres.AutoMigrate)
	assert.Equal(t, 2, cfg.PageSize)
	assert.Equal(t, time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_RejectsBadValues(t *testing.T) {
	t.Run("page size", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("PAGE_SIZE", "0")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("port", func(t *testing.T) {
		t.Setenv("PAGE_SIZE", "")
		t.Setenv("PORT", "70000")
		_, err := Load()
		require.Error(t, err)
	})
}

func TestLoadDotEnvUp_FindsParentFile(t *testing.T) {
	root := t.TempDir()
	child := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(child, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), []byte("PETS_DOTENV_PROBE=found\n"), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(child))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
		_ = os.Unsetenv("PETS_DOTENV_PROBE")
	})

	LoadDotEnvUp(4)

	assert.Equal(t, "found", os.Getenv("PETS_DOTENV_PROBE"))
}
