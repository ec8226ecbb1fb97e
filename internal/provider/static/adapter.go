// Package static implements a provider with a fixed, offline model entry.
// It backs single-model routes that need no catalog endpoint, and doubles
// as the test stand-in for the real network adapters.
package static

import (
	"context"
	"errors"

	"github.com/mmdsnb/freerouter/internal/provider"
	"github.com/mmdsnb/freerouter/pkg/schema"
	"go.uber.org/zap"
)

func init() {
	provider.Register("static", func(cfg provider.Config, log *zap.Logger) (provider.Provider, error) {
		return NewAdapter(cfg.ModelName, cfg.Provider, cfg.APIBase, cfg.APIKey)
	})
}

type Adapter struct {
	modelName string
	provider  string
	apiBase   string
	apiKey    string
}

func NewAdapter(modelName, providerName, apiBase, apiKey string) (*Adapter, error) {
	if modelName == "" {
		return nil, errors.New("static provider requires model_name")
	}
	if providerName == "" {
		return nil, errors.New("static provider requires provider")
	}
	return &Adapter{
		modelName: modelName,
		provider:  providerName,
		apiBase:   apiBase,
		apiKey:    apiKey,
	}, nil
}

func (a *Adapter) Name() string {
	return a.provider
}

func (a *Adapter) FetchModels(ctx context.Context) []schema.RawModel {
	return []schema.RawModel{{"id": a.modelName}}
}

func (a *Adapter) FormatService(model schema.RawModel) schema.Service {
	id := model.ID()
	return schema.Service{
		ModelName: id,
		LiteLLMParams: schema.LiteLLMParams{
			Model:   a.provider + "/" + id,
			APIBase: a.apiBase,
			APIKey:  a.apiKey,
		},
	}
}
