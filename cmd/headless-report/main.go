// Package main runs headless survival sessions and prints run reports.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Garsondee/Horde-Sense/internal/config"
)

func newRootCmd() *cobra.Command {
	var configPath string
	root := &cobra.Command{
		Use:           "headless-report",
		Short:         "Headless survival simulation reports",
		Long:          `headless-report runs survival sessions without a window, using an auto-aim fire policy, and prints per-run and aggregate reports.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML tuning file (defaults when empty)")

	loadConfig := func() (*config.Config, error) {
		if configPath == "" {
			return config.Default(), nil
		}
		return config.Load(configPath)
	}
	root.AddCommand(newRunCmd(loadConfig), newWavesCmd(loadConfig))
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
