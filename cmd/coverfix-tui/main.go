package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/handiism/coverfix/internal/config"
	"github.com/handiism/coverfix/internal/tui"
)

func main() {
	var configPath string

	cmd := &cobra.Command{
		Use:           "coverfix-tui [folder]",
		Short:         "Interactive cover art curation",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath
			if path == "" {
				path = config.DefaultPath()
			}
			settings, err := config.Load(path)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := settings.Validate(); err != nil {
				return err
			}

			folder := ""
			if len(args) == 1 {
				folder = args[0]
			}
			return tui.Run(settings, folder)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Configuration file path (.json, .toml, .yaml)")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
