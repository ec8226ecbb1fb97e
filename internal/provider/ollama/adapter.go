// Package ollama lists locally installed Ollama models via /api/tags.
package ollama

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/mmdsnb/freerouter/internal/httpclient"
	"github.com/mmdsnb/freerouter/internal/provider"
	"github.com/mmdsnb/freerouter/pkg/schema"
	"go.uber.org/zap"
)

const defaultAPIBase = "http://localhost:11434"

func init() {
	provider.Register("ollama", NewAdapter)
}

type Adapter struct {
	apiBase string
	client  *http.Client
	log     *zap.Logger
}

func NewAdapter(cfg provider.Config, log *zap.Logger) (provider.Provider, error) {
	apiBase := cfg.APIBase
	if apiBase == "" {
		apiBase = defaultAPIBase
	}
	return &Adapter{
		apiBase: strings.TrimRight(apiBase, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}, nil
}

func (a *Adapter) Name() string {
	return "ollama"
}

// tagsResponse mirrors the Ollama /api/tags shape.
type tagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

func (a *Adapter) FetchModels(ctx context.Context) []schema.RawModel {
	var resp tagsResponse
	if err := httpclient.SendRequest(ctx, a.client, http.MethodGet, a.apiBase+"/api/tags", nil, nil, &resp); err != nil {
		a.log.Error("Failed to fetch models from Ollama", zap.Error(err))
		return nil
	}

	models := make([]schema.RawModel, 0, len(resp.Models))
	for _, m := range resp.Models {
		models = append(models, schema.RawModel{"id": m.Name})
	}

	a.log.Info("Fetched models from Ollama", zap.Int("count", len(models)))
	return models
}

func (a *Adapter) FormatService(model schema.RawModel) schema.Service {
	id := model.ID()
	return schema.Service{
		ModelName: id,
		LiteLLMParams: schema.LiteLLMParams{
			Model:   "ollama/" + id,
			APIBase: a.apiBase,
		},
	}
}
