package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/mmdsnb/freerouter/internal/cli"
	"github.com/mmdsnb/freerouter/pkg/schema"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured models grouped by provider",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	mgr, err := newManager()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(mgr.ConfigPath())
	if err != nil {
		return fmt.Errorf("config not found: %s, run 'freerouter fetch' first", mgr.ConfigPath())
	}
	var doc schema.Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	if mgr.IsRunning() {
		pid, _ := mgr.ReadPID()
		fmt.Printf("\n%s Service Running (PID: %d, %s)\n", cli.Stylize("●", cli.Green), pid, mgr.URL())
	} else {
		fmt.Printf("\n%s Service Not Running (start with: freerouter start)\n", cli.Stylize("○", cli.Dim))
	}

	if len(doc.ModelList) == 0 {
		fmt.Println("No models configured.")
		return nil
	}

	// Group by the litellm routing prefix for readability.
	grouped := make(map[string][]string)
	for _, svc := range doc.ModelList {
		providerName := "unknown"
		if idx := strings.Index(svc.LiteLLMParams.Model, "/"); idx > 0 {
			providerName = svc.LiteLLMParams.Model[:idx]
		}
		grouped[providerName] = append(grouped[providerName], svc.ModelName)
	}

	names := make([]string, 0, len(grouped))
	for name := range grouped {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		models := grouped[name]
		fmt.Printf("\n[%s] (%d models)\n", cli.Stylize(name, cli.Cyan), len(models))
		for i := 0; i < len(models); i += 2 {
			right := ""
			if i+1 < len(models) {
				right = models[i+1]
			}
			fmt.Printf("  %-50s %s\n", models[i], right)
		}
	}

	fmt.Printf("\nTotal: %d models across %d providers\n", len(doc.ModelList), len(grouped))
	return nil
}
