package main

import (
	"fmt"

	"github.com/mmdsnb/freerouter/internal/cli"
	"github.com/mmdsnb/freerouter/internal/service"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show FreeRouter service status",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	mgr, err := newManager()
	if err != nil {
		return err
	}
	st, err := mgr.Status()
	if err != nil {
		return err
	}

	switch {
	case st.Running:
		fmt.Printf("Status: %s Running\n", cli.Stylize("●", cli.Green))
		fmt.Printf("PID:    %d\n", st.PID)
		fmt.Printf("URL:    %s\n", cli.Stylize(st.URL, cli.Blue))
		fmt.Printf("Config: %s\n", mgr.ConfigPath())
		fmt.Printf("Uptime: %s\n", service.FormatUptime(st.Uptime))
		fmt.Printf("Models: %d configured\n", st.ModelCount)
		if st.LogSizeKB > 0 {
			fmt.Printf("Log:    %s (%.1f KB)\n", mgr.LogFile(), st.LogSizeKB)
		}
	case st.StalePID:
		fmt.Printf("Status: %s Not Running (stale PID file)\n", cli.Stylize("○", cli.Yellow))
		fmt.Printf("PID:    %d (not found)\n", st.PID)
		fmt.Println("\nClean up and start: freerouter start")
	default:
		fmt.Printf("Status: %s Not Running\n", cli.Stylize("○", cli.Dim))
		fmt.Println("\nStart service with: freerouter start")
	}
	return nil
}
