// internal/common/config/loader_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFileAppliesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
ai:
  provider: httpapi
  httpapi:
    base_url: http://localhost:9000
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "gameforge", cfg.App.Name)
	assert.Equal(t, ":8080", cfg.Server.ListenAddress)
	assert.Equal(t, ":9090", cfg.Server.MetricsAddress)
	assert.Equal(t, 2, cfg.Retrieval.TopK)
	assert.Equal(t, 0.5, cfg.Retrieval.OverrideConfidence)
	assert.Equal(t, 16384, cfg.Retrieval.MaxContextBytes)
	assert.Equal(t, 10000, cfg.Retrieval.EmbedTimeout)
	assert.Equal(t, 30000, cfg.Generation.Timeout)
	assert.Equal(t, 2000, cfg.Generation.MaxPromptLength)
	assert.Equal(t, "memory", cfg.Jobs.Store)
	assert.Equal(t, "gemini-embedding-001", cfg.AI.GenAI.EmbedModel)
}

func TestLoadFromFileRejectsMissingProviderSettings(t *testing.T) {
	path := writeConfigFile(t, `
ai:
  provider: httpapi
`)

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base_url")
}

func TestLoadFromFileRejectsUnknownJobStore(t *testing.T) {
	path := writeConfigFile(t, `
ai:
  provider: httpapi
  httpapi:
    base_url: http://localhost:9000
jobs:
  store: cassandra
`)

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jobs.store")
}

func TestLoadFromFileRequiresRedisAddress(t *testing.T) {
	path := writeConfigFile(t, `
ai:
  provider: httpapi
  httpapi:
    base_url: http://localhost:9000
jobs:
  store: redis
database:
  redis:
    address: ""
`)

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis.address")
}

func TestGenerationTimeoutDuration(t *testing.T) {
	cfg := GenerationConfig{Timeout: 1500}
	assert.Equal(t, int64(1500), cfg.TimeoutDuration().Milliseconds())
}

func TestRetrievalEmbedTimeoutDuration(t *testing.T) {
	cfg := RetrievalConfig{EmbedTimeout: 2500}
	assert.Equal(t, int64(2500), cfg.EmbedTimeoutDuration().Milliseconds())
}

func TestPostgresDSN(t *testing.T) {
	cfg := PostgresConfig{
		Host: "db", Port: 5432, Database: "gameforge",
		User: "app", Password: "secret", SSLMode: "disable",
	}
	dsn := cfg.GetDSN()
	assert.Contains(t, dsn, "host=db")
	assert.Contains(t, dsn, "dbname=gameforge")
	assert.Contains(t, dsn, "sslmode=disable")
}
