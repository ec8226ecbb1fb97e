package main

import (
	"fmt"
	"os"

	"github.com/mmdsnb/freerouter/internal/cli"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the FreeRouter service",
	RunE:  runStart,
}

func init() {
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	mgr, err := newManager()
	if err != nil {
		return err
	}

	if _, err := os.Stat(mgr.ConfigPath()); err != nil {
		return fmt.Errorf("config not found: %s, run 'freerouter fetch' first", mgr.ConfigPath())
	}

	if err := mgr.Start(cmd.Context()); err != nil {
		return err
	}

	pid, _ := mgr.ReadPID()
	fmt.Printf("\n%s FreeRouter started successfully!\n", cli.CheckMark())
	fmt.Printf("  PID:    %d\n", pid)
	fmt.Printf("  URL:    %s\n", cli.Stylize(mgr.URL(), cli.Blue))
	fmt.Printf("  Logs:   %s\n", mgr.LogFile())
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  freerouter logs      - View real-time logs")
	fmt.Println("  freerouter stop      - Stop the service")
	return nil
}
