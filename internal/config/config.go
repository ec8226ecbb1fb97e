// Package config loads the declarative provider configuration and resolves
// the file locations freerouter reads and writes.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/mmdsnb/freerouter/internal/provider"
	"github.com/spf13/viper"
)

// envPrefix marks an api_key value as an environment-variable reference,
// e.g. `api_key: ENV:OPENROUTER_API_KEY`.
const envPrefix = "ENV:"

// LoadProviders reads providers.yaml and returns all entries with their
// api_key placeholders resolved. Disabled entries are kept; filtering is
// the bootstrap's job.
func LoadProviders(path string) ([]provider.Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading provider config: %w", err)
	}

	var cfgs []provider.Config
	if err := v.UnmarshalKey("providers", &cfgs); err != nil {
		return nil, fmt.Errorf("unable to decode provider config: %w", err)
	}

	for i, p := range cfgs {
		if strings.HasPrefix(p.APIKey, envPrefix) {
			cfgs[i].APIKey = os.Getenv(strings.TrimPrefix(p.APIKey, envPrefix))
		}
	}

	return cfgs, nil
}
