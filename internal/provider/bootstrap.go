package provider

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Bootstrap constructs all enabled providers from configuration.
// An unknown type discriminator or an invalid entry fails the whole call:
// a broken providers.yaml should be corrected, not silently skipped.
func Bootstrap(cfgs []Config, log *zap.Logger) ([]Provider, error) {
	validate := validator.New()

	var providers []Provider
	for i, cfg := range cfgs {
		if !cfg.Enabled {
			log.Debug("Skipping disabled provider", zap.String("type", cfg.Type))
			continue
		}

		if err := validate.Struct(&cfg); err != nil {
			return nil, fmt.Errorf("invalid provider entry %d: %w", i, err)
		}

		factory, err := Get(cfg.Type)
		if err != nil {
			return nil, fmt.Errorf("provider entry %d: %w", i, err)
		}

		p, err := factory(cfg, log.With(zap.String("provider", cfg.Type)))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize provider %s: %w", cfg.Type, err)
		}

		providers = append(providers, p)
	}

	return providers, nil
}
