package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mmdsnb/freerouter/internal/cli"
	"github.com/spf13/cobra"
)

var restoreYes bool

var restoreCmd = &cobra.Command{
	Use:   "restore <backup-file>",
	Short: "Restore configuration from a backup",
	Args:  cobra.ExactArgs(1),
	RunE:  runRestore,
}

func init() {
	restoreCmd.Flags().BoolVarP(&restoreYes, "yes", "y", false, "skip confirmation prompt")
	rootCmd.AddCommand(restoreCmd)
}

func runRestore(cmd *cobra.Command, args []string) error {
	mgr, err := newManager()
	if err != nil {
		return err
	}
	configPath := mgr.ConfigPath()

	backupPath := args[0]
	if !filepath.IsAbs(backupPath) {
		backupPath = filepath.Join(filepath.Dir(configPath), backupPath)
	}

	if _, err := os.Stat(backupPath); err != nil {
		fmt.Printf("%s Backup file not found: %s\n", cli.CrossMark(), backupPath)
		if backups := listBackups(configPath); len(backups) > 0 {
			fmt.Println("\nAvailable backups:")
			for _, b := range backups {
				info, _ := os.Stat(b)
				fmt.Printf("  - %s (%s)\n", filepath.Base(b), info.ModTime().Format("2006-01-02 15:04:05"))
			}
			fmt.Println("\nUsage: freerouter restore <backup-file>")
		} else {
			fmt.Println("No backups found")
		}
		return fmt.Errorf("backup not found")
	}

	fmt.Printf("From: %s\n", filepath.Base(backupPath))
	fmt.Printf("To:   %s\n", configPath)

	if !restoreYes {
		fmt.Print("\nContinue? [y/N]: ")
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println("Restore cancelled")
			return nil
		}
	}

	// Keep a copy of the current config before overwriting it.
	if _, err := backupConfig(configPath); err != nil {
		return err
	}

	if err := copyFile(backupPath, configPath); err != nil {
		return fmt.Errorf("failed to restore configuration: %w", err)
	}

	fmt.Printf("%s Configuration restored from %s\n", cli.CheckMark(), filepath.Base(backupPath))
	fmt.Println("\nTo apply changes, run: freerouter reload")
	return nil
}
