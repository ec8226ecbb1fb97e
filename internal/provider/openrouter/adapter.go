// Package openrouter fetches the OpenRouter model catalog. Routing goes
// through LiteLLM's native openrouter/ prefix, so no api_base is emitted.
package openrouter

import (
	"context"
	"net/http"
	"time"

	"github.com/mmdsnb/freerouter/internal/httpclient"
	"github.com/mmdsnb/freerouter/internal/provider"
	"github.com/mmdsnb/freerouter/pkg/schema"
	"go.uber.org/zap"
)

const defaultAPIBase = "https://openrouter.ai/api/v1"

func init() {
	provider.Register("openrouter", NewAdapter)
}

type Adapter struct {
	apiBase string
	apiKey  string
	client  *http.Client
	log     *zap.Logger
}

func NewAdapter(cfg provider.Config, log *zap.Logger) (provider.Provider, error) {
	apiBase := cfg.APIBase
	if apiBase == "" {
		apiBase = defaultAPIBase
	}
	return &Adapter{
		apiBase: apiBase,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}, nil
}

func (a *Adapter) Name() string {
	return "openrouter"
}

type modelListResponse struct {
	Data []schema.RawModel `json:"data"`
}

func (a *Adapter) FetchModels(ctx context.Context) []schema.RawModel {
	headers := map[string]string{}
	if a.apiKey != "" {
		headers["Authorization"] = "Bearer " + a.apiKey
	}

	var resp modelListResponse
	if err := httpclient.SendRequest(ctx, a.client, http.MethodGet, a.apiBase+"/models", headers, nil, &resp); err != nil {
		a.log.Error("Failed to fetch models from OpenRouter", zap.Error(err))
		return nil
	}

	if resp.Data == nil {
		a.log.Warn("No 'data' field in OpenRouter response")
		return nil
	}

	a.log.Info("Fetched models from OpenRouter", zap.Int("count", len(resp.Data)))
	return resp.Data
}

func (a *Adapter) FormatService(model schema.RawModel) schema.Service {
	id := model.ID()
	return schema.Service{
		ModelName: id,
		LiteLLMParams: schema.LiteLLMParams{
			Model:  "openrouter/" + id,
			APIKey: a.apiKey,
		},
	}
}
