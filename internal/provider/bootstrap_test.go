package provider_test

import (
	"context"
	"testing"

	"github.com/mmdsnb/freerouter/internal/provider"
	_ "github.com/mmdsnb/freerouter/internal/provider/oai"
	_ "github.com/mmdsnb/freerouter/internal/provider/static"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestBootstrap_SkipsDisabled(t *testing.T) {
	providers, err := provider.Bootstrap([]provider.Config{
		{Type: "static", Enabled: false, ModelName: "m", Provider: "openai"},
	}, zap.NewNop())
	assert.NoError(t, err)
	assert.Empty(t, providers)
}

func TestBootstrap_BuildsEnabled(t *testing.T) {
	providers, err := provider.Bootstrap([]provider.Config{
		{Type: "static", Enabled: true, ModelName: "gpt-4o", Provider: "openai"},
		{Type: "oai", Enabled: true, Name: "svc", APIBase: "https://api.test.com/v1"},
	}, zap.NewNop())
	assert.NoError(t, err)
	assert.Len(t, providers, 2)
	assert.Equal(t, "openai", providers[0].Name())
	assert.Equal(t, "svc", providers[1].Name())

	models := providers[0].FetchModels(context.Background())
	assert.Len(t, models, 1)
}

func TestBootstrap_UnknownTypeIsError(t *testing.T) {
	_, err := provider.Bootstrap([]provider.Config{
		{Type: "does-not-exist", Enabled: true},
	}, zap.NewNop())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown provider type")
}

func TestBootstrap_MissingTypeIsError(t *testing.T) {
	_, err := provider.Bootstrap([]provider.Config{
		{Enabled: true},
	}, zap.NewNop())
	assert.Error(t, err)
}

func TestFactory_GetUnknown(t *testing.T) {
	_, err := provider.Get("nope")
	assert.Error(t, err)
}
