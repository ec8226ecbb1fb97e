package main

import (
	"fmt"

	"github.com/mmdsnb/freerouter/internal/cli"
	"github.com/spf13/cobra"
)

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the FreeRouter service",
	RunE:  runStop,
}

func init() {
	rootCmd.AddCommand(stopCmd)
}

func runStop(cmd *cobra.Command, args []string) error {
	mgr, err := newManager()
	if err != nil {
		return err
	}
	if err := mgr.Stop(); err != nil {
		return err
	}
	fmt.Printf("%s FreeRouter stopped successfully\n", cli.CheckMark())
	return nil
}
