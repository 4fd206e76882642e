// Package root contains the root command for the application
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/emirfredy/ynab-syncher-sub000/internal/config"
	"github.com/emirfredy/ynab-syncher-sub000/internal/container"
)

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration
	Cfg *config.Config

	// Shared flag values used by multiple commands
	Input    string
	Output   string
	Account  string
	Budget   string
	From     string
	To       string
	Strategy string

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "ynab-sync",
		Short: "Synchronize a YNAB budget with raw bank transaction feeds.",
		Long: `ynab-sync imports raw bank transaction exports, infers spending
categories from learned mappings, reconciles bank transactions against the
budget, and pushes missing transactions into YNAB.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to ynab-sync!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Invalid configuration: %v", err)
			}
			Cfg = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)
		},
	}
)

// Wire builds the dependency container from the loaded configuration.
// Subcommands call this after PersistentPreRun has populated Cfg.
func Wire() *container.Container {
	c, err := container.NewContainer(Cfg)
	if err != nil {
		Log.Fatalf("Failed to wire application: %v", err)
	}
	return c
}
