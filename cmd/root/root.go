// Package root contains the root command for the application
package root

import (
	"baiyun/piggyvault/internal/config"
	"baiyun/piggyvault/internal/encourage"
	"baiyun/piggyvault/internal/engine"
	"baiyun/piggyvault/internal/export"
	"baiyun/piggyvault/internal/fileutils"
	"baiyun/piggyvault/internal/registry"
	"baiyun/piggyvault/internal/settings"
	"baiyun/piggyvault/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration
	Cfg *config.Config

	// dataDirFlag overrides data.directory when set
	dataDirFlag string

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "piggyvault",
		Short: "A CLI piggy bank: named savings accounts with targets, ledgers and rotating backups.",
		Long: `piggyvault manages independent savings accounts ("piggy banks"), each
persisted as a JSON record with automatic rotating backups. Deposits,
withdrawals, saving targets and an encouragement message library are
all driven from the command line.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to piggyvault!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			var err error
			Cfg, err = config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			if dataDirFlag != "" {
				Cfg.Data.Directory = dataDirFlag
			}

			Log = config.ConfigureLoggingFromConfig(Cfg)

			// Hand the configured logger to every internal package
			store.SetLogger(Log)
			registry.SetLogger(Log)
			engine.SetLogger(Log)
			settings.SetLogger(Log)
			encourage.SetLogger(Log)
			export.SetLogger(Log)
			fileutils.SetLogger(Log)
		},
	}
)

// Init initializes the root command flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&dataDirFlag, "data-dir", "d", "", "Data directory (overrides configuration)")
}

// DataDir returns the effective data root directory.
func DataDir() string {
	return Cfg.Data.Directory
}

// NewStore builds the account store from the loaded configuration.
func NewStore() *store.AccountStore {
	return store.NewAccountStore(DataDir(), Cfg.Backup.MaxCount)
}

// NewRegistry builds the account registry from the loaded configuration.
func NewRegistry() *registry.AccountRegistry {
	return registry.NewAccountRegistry(NewStore())
}

// NewSettings builds the global settings store.
func NewSettings() *settings.Store {
	return settings.NewStore(DataDir())
}

// NewLibrary builds the encouragement library.
func NewLibrary() *encourage.Library {
	return encourage.NewLibrary(DataDir())
}

// TouchLastOpened records name as the most recently opened account.
// Failures only log; settings are a convenience, not ledger state.
func TouchLastOpened(name string) {
	if err := NewSettings().SetLastOpened(name); err != nil {
		Log.WithError(err).Warn("failed to update last opened account")
	}
}
