package provider

import (
	"context"

	"github.com/mmdsnb/freerouter/pkg/schema"
)

// Config is one entry from providers.yaml. The Type discriminator selects
// the adapter; the remaining fields are variant-specific.
type Config struct {
	Type    string `mapstructure:"type" validate:"required"`
	Enabled bool   `mapstructure:"enabled"`
	Name    string `mapstructure:"name"`
	APIBase string `mapstructure:"api_base"`
	APIKey  string `mapstructure:"api_key"`

	// Static adapter only.
	ModelName string `mapstructure:"model_name"`
	Provider  string `mapstructure:"provider"`
}

// Provider is the contract every upstream catalog adapter implements.
//
// FetchModels never returns an error: transport and parse failures are
// logged inside the adapter and collapse to an empty result, so one broken
// upstream cannot take down a whole fetch cycle.
type Provider interface {
	Name() string
	FetchModels(ctx context.Context) []schema.RawModel
	FormatService(model schema.RawModel) schema.Service
}
