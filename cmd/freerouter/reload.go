package main

import (
	"fmt"
	"time"

	"github.com/mmdsnb/freerouter/internal/cli"
	"github.com/spf13/cobra"
)

var reloadRefresh bool

var reloadCmd = &cobra.Command{
	Use:   "reload",
	Short: "Reload the service (restart, optionally refreshing config)",
	Long: `Restart the FreeRouter service with the existing config. With
--refresh, the current config is backed up and regenerated from the
providers first.`,
	RunE: runReload,
}

func init() {
	reloadCmd.Flags().BoolVarP(&reloadRefresh, "refresh", "r", false, "refresh configuration from providers before reloading")
	rootCmd.AddCommand(reloadCmd)
}

func runReload(cmd *cobra.Command, args []string) error {
	mgr, err := newManager()
	if err != nil {
		return err
	}

	if reloadRefresh {
		if _, err := backupConfig(mgr.ConfigPath()); err != nil {
			return err
		}
		if err := runFetch(cmd, nil); err != nil {
			return err
		}
	}

	if mgr.IsRunning() {
		if err := runStop(cmd, nil); err != nil {
			return err
		}
		time.Sleep(time.Second)
	}

	if err := runStart(cmd, nil); err != nil {
		return err
	}

	fmt.Printf("%s Service reloaded successfully\n", cli.CheckMark())
	return nil
}
