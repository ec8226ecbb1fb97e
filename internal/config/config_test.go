package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "providers.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadProviders(t *testing.T) {
	path := writeConfig(t, `
providers:
  - type: openrouter
    enabled: true
    api_key: sk-or-123
  - type: static
    enabled: false
    model_name: gpt-4o
    provider: openai
    api_base: https://api.openai.com/v1
`)

	cfgs, err := LoadProviders(path)
	assert.NoError(t, err)
	assert.Len(t, cfgs, 2)

	assert.Equal(t, "openrouter", cfgs[0].Type)
	assert.True(t, cfgs[0].Enabled)
	assert.Equal(t, "sk-or-123", cfgs[0].APIKey)

	assert.Equal(t, "static", cfgs[1].Type)
	assert.False(t, cfgs[1].Enabled)
	assert.Equal(t, "gpt-4o", cfgs[1].ModelName)
	assert.Equal(t, "openai", cfgs[1].Provider)
}

func TestLoadProviders_APIKeyResolution(t *testing.T) {
	t.Setenv("TEST_API_KEY", "sk-test-12345")

	path := writeConfig(t, `
providers:
  - type: oai
    name: test-provider
    enabled: true
    api_base: https://api.test.com/v1
    api_key: ENV:TEST_API_KEY
`)

	cfgs, err := LoadProviders(path)
	assert.NoError(t, err)
	assert.Len(t, cfgs, 1)
	assert.Equal(t, "sk-test-12345", cfgs[0].APIKey)
}

func TestLoadProviders_UnsetEnvPlaceholderResolvesEmpty(t *testing.T) {
	os.Unsetenv("DEFINITELY_NOT_SET_KEY")

	path := writeConfig(t, `
providers:
  - type: iflow
    enabled: true
    api_key: ENV:DEFINITELY_NOT_SET_KEY
`)

	cfgs, err := LoadProviders(path)
	assert.NoError(t, err)
	assert.Empty(t, cfgs[0].APIKey)
}

func TestLoadProviders_MissingFile(t *testing.T) {
	_, err := LoadProviders(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDefaultTemplate_AllDisabled(t *testing.T) {
	path := writeConfig(t, defaultProvidersYAML)

	cfgs, err := LoadProviders(path)
	assert.NoError(t, err)
	assert.NotEmpty(t, cfgs)
	for _, cfg := range cfgs {
		assert.False(t, cfg.Enabled, "template provider %s must ship disabled", cfg.Type)
	}
}
