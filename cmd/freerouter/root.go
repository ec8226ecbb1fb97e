package main

import (
	"fmt"
	"os"

	"github.com/mmdsnb/freerouter/internal/config"
	"github.com/mmdsnb/freerouter/internal/logger"
	"github.com/mmdsnb/freerouter/internal/service"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "freerouter",
	Short: "FreeRouter - free LLM router service",
	Long: `FreeRouter aggregates model catalogs from free LLM-hosting providers,
merges them into a single LiteLLM proxy configuration, and manages the
proxy process lifecycle.

Running freerouter with no subcommand starts the service.`,
	SilenceUsage: true,
	RunE:         runStart,
	Version:      Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// outputConfigPath resolves where the generated config.yaml lives.
func outputConfigPath() (string, error) {
	paths, err := config.NewPaths()
	if err != nil {
		return "", err
	}
	return paths.OutputConfigPath()
}

// newManager builds a process manager bound to the generated config.
func newManager() (*service.Manager, error) {
	configPath, err := outputConfigPath()
	if err != nil {
		return nil, err
	}
	return service.NewManager(configPath, logger.Get()), nil
}
