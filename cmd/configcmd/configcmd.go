// Package configcmd contains the configuration commands.
package configcmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"baiyun/piggyvault/internal/config"
)

// Cmd is the configuration command
var Cmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the piggyvault configuration",
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration to $HOME/.piggyvault/config.yaml",
	RunE: func(cmd *cobra.Command, args []string) error {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("cannot resolve home directory: %w", err)
		}
		path := filepath.Join(home, ".piggyvault", "config.yaml")
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists: %s", path)
		}
		if err := config.WriteDefault(path); err != nil {
			return err
		}
		fmt.Printf("Default configuration written to %s\n", path)
		return nil
	},
}

func init() {
	Cmd.AddCommand(initCmd)
}
