package main

import (
	"fmt"

	"github.com/mmdsnb/freerouter/internal/cli"
	"github.com/mmdsnb/freerouter/internal/config"
	"github.com/spf13/cobra"
)

var initUserLevel bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize provider configuration",
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initUserLevel, "user", false, "create config under ~/.config/freerouter instead of ./config")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	paths, err := config.NewPaths()
	if err != nil {
		return err
	}
	target, err := paths.InitConfig(initUserLevel)
	if err != nil {
		return err
	}

	fmt.Printf("%s Configuration initialized: %s\n", cli.CheckMark(), target)
	fmt.Printf("%s All providers are disabled by default (enabled: false)\n", cli.CheckMark())
	fmt.Println("\nNext steps:")
	fmt.Printf("1. Edit %s to configure your providers\n", target)
	fmt.Println("2. Set enabled: true for the providers you want to use")
	fmt.Println("3. Run 'freerouter fetch' to fetch the model list")
	fmt.Println("4. Run 'freerouter start' to start the service")
	return nil
}
