// Package modelscope fetches the ModelScope API-Inference catalog.
// The service speaks the OpenAI wire format, so routes use the openai/
// prefix pointed at the ModelScope base URL.
package modelscope

import (
	"context"
	"net/http"
	"time"

	"github.com/mmdsnb/freerouter/internal/httpclient"
	"github.com/mmdsnb/freerouter/internal/provider"
	"github.com/mmdsnb/freerouter/pkg/schema"
	"go.uber.org/zap"
)

const apiBase = "https://api-inference.modelscope.cn/v1"

func init() {
	provider.Register("modelscope", NewAdapter)
}

type Adapter struct {
	apiKey string
	client *http.Client
	log    *zap.Logger
}

func NewAdapter(cfg provider.Config, log *zap.Logger) (provider.Provider, error) {
	return &Adapter{
		apiKey: cfg.APIKey,
		client: &http.Client{Timeout: 10 * time.Second},
		log:    log,
	}, nil
}

func (a *Adapter) Name() string {
	return "modelscope"
}

type modelListResponse struct {
	Data []schema.RawModel `json:"data"`
}

func (a *Adapter) FetchModels(ctx context.Context) []schema.RawModel {
	headers := map[string]string{
		"Authorization": "Bearer " + a.apiKey,
	}

	var resp modelListResponse
	if err := httpclient.SendRequest(ctx, a.client, http.MethodGet, apiBase+"/models", headers, nil, &resp); err != nil {
		a.log.Error("Failed to fetch models from ModelScope", zap.Error(err))
		return nil
	}

	if resp.Data == nil {
		a.log.Warn("No 'data' field in ModelScope response")
		return nil
	}

	a.log.Info("Fetched models from ModelScope", zap.Int("count", len(resp.Data)))
	return resp.Data
}

func (a *Adapter) FormatService(model schema.RawModel) schema.Service {
	id := model.ID()
	return schema.Service{
		ModelName: id,
		LiteLLMParams: schema.LiteLLMParams{
			Model:   "openai/" + id,
			APIBase: apiBase,
			APIKey:  a.apiKey,
		},
	}
}
