package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/mmdsnb/freerouter/internal/cli"
	"github.com/mmdsnb/freerouter/internal/logfilter"
	"github.com/spf13/cobra"
)

var logsFilter bool

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Follow service logs in real-time",
	Long: `Follow the proxy log file. With --filter, raw LiteLLM request and
response dumps are reconstructed into readable blocks and everything
else is suppressed.`,
	RunE: runLogs,
}

func init() {
	logsCmd.Flags().BoolVarP(&logsFilter, "filter", "f", false, "reformat request/response dumps, hide noise")
	rootCmd.AddCommand(logsCmd)
}

func runLogs(cmd *cobra.Command, args []string) error {
	mgr, err := newManager()
	if err != nil {
		return err
	}
	if !mgr.IsRunning() {
		return errors.New("freerouter is not running, start it with: freerouter start")
	}

	pid, _ := mgr.ReadPID()
	fmt.Printf("Showing logs from: %s (PID: %d)\n", mgr.LogFile(), pid)
	fmt.Println("Press Ctrl+C to exit")

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var emit func(line string)
	if logsFilter {
		filter := logfilter.NewStreamFilter(cli.Enabled())
		emit = func(line string) {
			if out, ok := filter.ProcessLine(line); ok {
				fmt.Println(out)
			}
		}
	} else {
		emit = func(line string) { fmt.Println(line) }
	}

	err = mgr.TailLog(ctx, emit)
	if errors.Is(err, context.Canceled) {
		fmt.Println("\nStopped viewing logs")
		return nil
	}
	if err == nil {
		fmt.Println("\nService stopped")
	}
	return err
}
