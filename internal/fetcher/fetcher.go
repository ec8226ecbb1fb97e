// Package fetcher runs the fetch-and-merge pipeline: it queries every
// registered provider concurrently, normalizes the results, and assembles
// the LiteLLM config document.
package fetcher

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mmdsnb/freerouter/internal/provider"
	"github.com/mmdsnb/freerouter/pkg/schema"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// defaultFetchTimeout bounds a single provider fetch so one hanging
// upstream cannot stall the whole generation.
const defaultFetchTimeout = 10 * time.Second

type Fetcher struct {
	log          *zap.Logger
	providers    []provider.Provider
	fetchTimeout time.Duration
}

func New(log *zap.Logger) *Fetcher {
	return &Fetcher{
		log:          log,
		fetchTimeout: defaultFetchTimeout,
	}
}

// AddProvider appends a provider to the registry. Registration order fixes
// the order of the merged service list, not the fetch order.
func (f *Fetcher) AddProvider(p provider.Provider) {
	f.providers = append(f.providers, p)
}

// Providers returns the registered providers in registration order.
func (f *Fetcher) Providers() []provider.Provider {
	return f.providers
}

// FetchAll queries every registered provider concurrently and merges the
// formatted services in registration order. A failing provider contributes
// nothing; FetchAll itself never fails. Wall-clock time tracks the slowest
// provider, not the sum.
func (f *Fetcher) FetchAll(ctx context.Context) []schema.Service {
	results := make([][]schema.Service, len(f.providers))

	var wg sync.WaitGroup
	for i, p := range f.providers {
		wg.Add(1)
		go func(i int, p provider.Provider) {
			defer wg.Done()
			// Providers are contracted not to panic, but one rogue
			// adapter must not take down its siblings.
			defer func() {
				if r := recover(); r != nil {
					f.log.Error("Provider panicked during fetch",
						zap.String("provider", p.Name()),
						zap.Any("panic", r))
				}
			}()

			fetchCtx, cancel := context.WithTimeout(ctx, f.fetchTimeout)
			defer cancel()

			models := p.FetchModels(fetchCtx)
			services := make([]schema.Service, 0, len(models))
			for _, m := range models {
				services = append(services, p.FormatService(m))
			}
			results[i] = services
		}(i, p)
	}
	wg.Wait()

	var merged []schema.Service
	for _, services := range results {
		merged = append(merged, services...)
	}
	return merged
}

// GenerateConfig runs a full fetch cycle and builds the config document.
// The only possible error is master-key generation (randomness exhaustion);
// an empty model list is a valid result and left to caller policy.
func (f *Fetcher) GenerateConfig(ctx context.Context) (*schema.Document, error) {
	runID := uuid.NewString()[:8]
	log := f.log.With(zap.String("run_id", runID))

	log.Info("Fetching models", zap.Int("providers", len(f.providers)))
	services := f.FetchAll(ctx)
	log.Info("Fetch complete", zap.Int("services", len(services)))

	masterKey, err := GetOrCreateMasterKey()
	if err != nil {
		return nil, err
	}
	if os.Getenv(EnvMasterKey) == "" {
		log.Warn("No " + EnvMasterKey + " set, generated an ephemeral master key (changes on every fetch)")
	}

	return &schema.Document{
		LiteLLMSettings: schema.LiteLLMSettings{
			DropParams: true,
			SetVerbose: false,
			MasterKey:  masterKey,
		},
		ModelList: services,
		RouterSettings: schema.RouterSettings{
			NumRetries: 3,
			Timeout:    30,
		},
	}, nil
}

// WriteConfig serializes the document to path as YAML.
func WriteConfig(doc *schema.Document, path string) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
