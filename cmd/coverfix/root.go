package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/handiism/coverfix/internal/config"
)

// commandContext carries the global flags and the loaded settings.
type commandContext struct {
	configPath string
	verbose    bool
	settings   *config.Settings
}

// loadSettings reads --config, falling back to the per-user file and
// then to defaults.
func (c *commandContext) loadSettings() (*config.Settings, error) {
	if c.settings != nil {
		return c.settings, nil
	}

	path := strings.TrimSpace(c.configPath)
	if path == "" {
		path = config.DefaultPath()
		if _, err := os.Stat(path); err != nil {
			c.settings = config.DefaultSettings()
			return c.settings, nil
		}
	}

	settings, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	c.settings = settings
	return settings, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:           "coverfix",
		Short:         "Normalize embedded cover art and flag duplicate tracks",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.loadSettings()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&ctx.configPath, "config", "c", "", "Configuration file path (.json, .toml, .yaml)")
	rootCmd.PersistentFlags().BoolVarP(&ctx.verbose, "verbose", "v", false, "Show every file and mirror the log to stderr")

	rootCmd.AddCommand(newRunCommand(ctx))
	rootCmd.AddCommand(newInspectCommand(ctx))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}
