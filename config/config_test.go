package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "platefull", cfg.DBName)
	assert.Equal(t, "dev-secret", cfg.JWTSecret)
	assert.Equal(t, 30, cfg.RateLimit)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com")
	t.Setenv("RATE_LIMIT", "5")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "env-secret", cfg.JWTSecret)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, 5, cfg.RateLimit)
}

func TestLoadConfigReadsDockerSecrets(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "jwt_secret"), []byte("secret-from-file\n"), 0600))
	t.Setenv("SECRETS_DIR", dir)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "secret-from-file", cfg.JWTSecret)
}

func TestEnvBeatsSecret(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "jwt_secret"), []byte("secret-from-file"), 0600))
	t.Setenv("SECRETS_DIR", dir)
	t.Setenv("JWT_SECRET", "from-env")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.JWTSecret)
}

func TestLoadConfigRejectsBadRateLimit(t *testing.T) {
	t.Setenv("RATE_LIMIT", "lots")
	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("RATE_LIMIT", "0")
	_, err = LoadConfig()
	assert.Error(t, err)
}

func TestProductionRejectsDefaults(t *testing.T) {
	t.Setenv("ENV", "production")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "production")

	t.Setenv("JWT_SECRET", "real-secret")
	t.Setenv("DB_PASSWORD", "real-password")
	_, err = LoadConfig()
	assert.NoError(t, err)
}

func TestGetEnvironment(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("ENV", "")
	assert.Equal(t, Development, GetEnvironment())

	t.Setenv("ENV", "test")
	assert.Equal(t, Test, GetEnvironment())

	t.Setenv("ENV", "production")
	assert.Equal(t, Production, GetEnvironment())
	assert.True(t, IsProduction())

	t.Setenv("CI", "true")
	assert.Equal(t, CI, GetEnvironment())
}
