package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio_sync/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const minimalConfig = `
database:
  user: site
  password: pw
  dbname: content
source:
  base_url: https://api.example.com
  token: global-tok
  types:
    projects:
      collection: col-projects
    posts:
      collection: col-posts
      token: posts-tok
`

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 100, cfg.Source.PageSize)
	assert.Equal(t, 30*time.Second, cfg.Source.Timeout)
	assert.Equal(t, 3, cfg.Source.Retry.MaxAttempts)
	assert.Equal(t, 5*time.Minute, cfg.Sync.PassTimeout)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestTypeBindingResolution(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	collection, token, ok := cfg.TypeBinding(domain.TypeProjects)
	require.True(t, ok)
	assert.Equal(t, "col-projects", collection)
	assert.Equal(t, "global-tok", token, "falls back to the shared token")

	_, token, ok = cfg.TypeBinding(domain.TypePosts)
	require.True(t, ok)
	assert.Equal(t, "posts-tok", token, "per-type token wins")

	_, _, ok = cfg.TypeBinding(domain.TypeLinks)
	assert.False(t, ok, "unconfigured type is disabled")
}

func TestTypeBindingDisabledWithoutAnyToken(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
database:
  user: site
  dbname: content
source:
  base_url: https://api.example.com
  types:
    projects:
      collection: col-projects
`))
	require.NoError(t, err)

	_, _, ok := cfg.TypeBinding(domain.TypeProjects)
	assert.False(t, ok, "a collection without any credential stays disabled")
}

func TestLoadExpandsEnvironmentVariables(t *testing.T) {
	t.Setenv("SOURCE_TOKEN", "sekrit")

	cfg, err := Load(writeConfig(t, `
database:
  user: site
  dbname: content
source:
  base_url: https://api.example.com
  token: ${SOURCE_TOKEN}
`))
	require.NoError(t, err)
	assert.Equal(t, "sekrit", cfg.Source.Token)
}

func TestLoadRejectsUnknownContentType(t *testing.T) {
	_, err := Load(writeConfig(t, `
database:
  user: site
  dbname: content
source:
  base_url: https://api.example.com
  types:
    blog_postz:
      collection: col-x
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown content type")
}

func TestLoadRejectsMissingDatabase(t *testing.T) {
	_, err := Load(writeConfig(t, `
source:
  base_url: https://api.example.com
`))
	require.Error(t, err)
}

func TestLoadRejectsMissingBaseURL(t *testing.T) {
	_, err := Load(writeConfig(t, `
database:
  user: site
  dbname: content
`))
	require.Error(t, err)
}
