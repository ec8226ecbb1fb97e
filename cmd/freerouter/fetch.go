package main

import (
	"errors"

	"github.com/mmdsnb/freerouter/internal/config"
	"github.com/mmdsnb/freerouter/internal/fetcher"
	"github.com/mmdsnb/freerouter/internal/logger"
	"github.com/mmdsnb/freerouter/internal/provider"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch models from all enabled providers and generate config",
	RunE:  runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	log := logger.Get()

	paths, err := config.NewPaths()
	if err != nil {
		return err
	}
	providerPath, err := paths.FindProviderConfig()
	if err != nil {
		return err
	}
	outputPath, err := paths.OutputConfigPath()
	if err != nil {
		return err
	}

	log.Info("Fetching models and generating config",
		zap.String("provider_config", providerPath),
		zap.String("output_config", outputPath))

	cfgs, err := config.LoadProviders(providerPath)
	if err != nil {
		return err
	}
	providers, err := provider.Bootstrap(cfgs, log)
	if err != nil {
		return err
	}
	if len(providers) == 0 {
		return errors.New("no providers enabled, edit " + providerPath)
	}

	f := fetcher.New(log)
	for _, p := range providers {
		f.AddProvider(p)
	}

	doc, err := f.GenerateConfig(cmd.Context())
	if err != nil {
		return err
	}
	// Caller policy: an all-providers-failed run should not clobber a
	// working config with an empty one.
	if len(doc.ModelList) == 0 {
		return errors.New("config generation failed: no models fetched from any provider")
	}

	if err := fetcher.WriteConfig(doc, outputPath); err != nil {
		return err
	}

	log.Info("Config generation successful",
		zap.String("path", outputPath),
		zap.Int("models", len(doc.ModelList)))
	return nil
}
