package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	providerConfigName = "providers.yaml"
	outputConfigName   = "config.yaml"
)

// Paths resolves configuration file locations with priority order:
// ./config first, then ~/.config/freerouter.
type Paths struct {
	locations []string
}

func NewPaths() (*Paths, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return &Paths{
		locations: []string{
			filepath.Join(cwd, "config"),
			filepath.Join(home, ".config", "freerouter"),
		},
	}, nil
}

// FindProviderConfig returns the first providers.yaml found, or an error
// telling the user to run `freerouter init`.
func (p *Paths) FindProviderConfig() (string, error) {
	for _, location := range p.locations {
		path := filepath.Join(location, providerConfigName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no %s found, run 'freerouter init' to create one", providerConfigName)
}

// OutputConfigPath returns where the generated config.yaml lives: next to
// a local ./config directory when one exists, otherwise in the user config
// directory (created on demand).
func (p *Paths) OutputConfigPath() (string, error) {
	local := p.locations[0]
	if info, err := os.Stat(local); err == nil && info.IsDir() {
		return filepath.Join(local, outputConfigName), nil
	}

	user := p.locations[1]
	if err := os.MkdirAll(user, 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	return filepath.Join(user, outputConfigName), nil
}

// InitConfig creates a config directory seeded with the example
// providers.yaml (all entries disabled). Returns the providers.yaml path.
func (p *Paths) InitConfig(userLevel bool) (string, error) {
	dir := p.locations[0]
	if userLevel {
		dir = p.locations[1]
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	target := filepath.Join(dir, providerConfigName)
	if _, err := os.Stat(target); err == nil {
		return target, nil
	}

	if err := os.WriteFile(target, []byte(defaultProvidersYAML), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", providerConfigName, err)
	}
	return target, nil
}
