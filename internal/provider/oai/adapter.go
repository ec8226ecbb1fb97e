// Package oai implements the generic OpenAI-compatible catalog adapter.
// Any upstream exposing GET {api_base}/models with a {"data": [...]} body
// can be routed through it under a custom provider name.
package oai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mmdsnb/freerouter/internal/httpclient"
	"github.com/mmdsnb/freerouter/internal/provider"
	"github.com/mmdsnb/freerouter/pkg/schema"
	"go.uber.org/zap"
)

func init() {
	provider.Register("oai", NewAdapter)
}

type Adapter struct {
	name    string
	apiBase string
	apiKey  string
	client  *http.Client
	log     *zap.Logger
}

func NewAdapter(cfg provider.Config, log *zap.Logger) (provider.Provider, error) {
	if cfg.Name == "" {
		return nil, errors.New("oai provider requires a name")
	}
	if cfg.APIBase == "" {
		return nil, errors.New("oai provider requires api_base")
	}
	return &Adapter{
		name:    cfg.Name,
		apiBase: strings.TrimRight(cfg.APIBase, "/"),
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}, nil
}

func (a *Adapter) Name() string {
	return a.name
}

type modelListResponse struct {
	Data []schema.RawModel `json:"data"`
}

func (a *Adapter) FetchModels(ctx context.Context) []schema.RawModel {
	url := fmt.Sprintf("%s/models", a.apiBase)
	headers := map[string]string{}
	if a.apiKey != "" {
		headers["Authorization"] = "Bearer " + a.apiKey
	}

	var resp modelListResponse
	if err := httpclient.SendRequest(ctx, a.client, http.MethodGet, url, headers, nil, &resp); err != nil {
		a.log.Error("Failed to fetch models",
			zap.String("name", a.name),
			zap.Error(err))
		return nil
	}

	if resp.Data == nil {
		a.log.Warn("No 'data' field in model list response", zap.String("name", a.name))
		return nil
	}

	a.log.Info("Fetched models",
		zap.String("name", a.name),
		zap.Int("count", len(resp.Data)))
	return resp.Data
}

func (a *Adapter) FormatService(model schema.RawModel) schema.Service {
	id := model.ID()
	return schema.Service{
		ModelName: id,
		LiteLLMParams: schema.LiteLLMParams{
			Model:   "openai/" + id,
			APIBase: a.apiBase,
			APIKey:  a.apiKey,
		},
	}
}
