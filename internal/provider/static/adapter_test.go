package static_test

import (
	"context"
	"testing"

	"github.com/mmdsnb/freerouter/internal/provider/static"
	"github.com/mmdsnb/freerouter/pkg/schema"
	"github.com/stretchr/testify/assert"
)

func TestCreateStaticAdapter(t *testing.T) {
	a, err := static.NewAdapter("test-model", "openai", "https://api.test.com", "test-key")
	assert.NoError(t, err)
	assert.Equal(t, "openai", a.Name())
}

func TestCreateStaticAdapter_MissingFields(t *testing.T) {
	_, err := static.NewAdapter("", "openai", "", "")
	assert.Error(t, err)

	_, err = static.NewAdapter("test-model", "", "", "")
	assert.Error(t, err)
}

func TestFetchModels_ReturnsSingleModel(t *testing.T) {
	a, err := static.NewAdapter("test-model", "openai", "https://api.test.com", "")
	assert.NoError(t, err)

	models := a.FetchModels(context.Background())
	assert.Len(t, models, 1)
	assert.Equal(t, "test-model", models[0]["id"])
}

func TestFormatService(t *testing.T) {
	a, err := static.NewAdapter("test-model", "openai", "https://api.test.com", "test-key")
	assert.NoError(t, err)

	service := a.FormatService(schema.RawModel{"id": "test-model"})
	assert.Equal(t, "test-model", service.ModelName)
	assert.Equal(t, "openai/test-model", service.LiteLLMParams.Model)
	assert.Equal(t, "https://api.test.com", service.LiteLLMParams.APIBase)
	assert.Equal(t, "test-key", service.LiteLLMParams.APIKey)
}

func TestFormatService_MissingID(t *testing.T) {
	a, err := static.NewAdapter("test-model", "openai", "https://api.test.com", "")
	assert.NoError(t, err)

	service := a.FormatService(schema.RawModel{"object": "model"})
	assert.Equal(t, "unknown", service.ModelName)
	assert.Equal(t, "openai/unknown", service.LiteLLMParams.Model)
}
