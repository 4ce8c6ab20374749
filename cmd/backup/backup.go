// Package backup contains the backup management commands.
package backup

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"baiyun/piggyvault/cmd/root"
)

var listLimit int

// Cmd is the backup management command
var Cmd = &cobra.Command{
	Use:   "backup",
	Short: "List, create and restore account backups",
}

var listCmd = &cobra.Command{
	Use:   "list <account>",
	Short: "List an account's backups, newest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if !root.NewRegistry().Exists(name) {
			return fmt.Errorf("account '%s' not found", name)
		}

		files, err := root.NewStore().ListBackups(name, listLimit)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			fmt.Println("No backups yet")
			return nil
		}
		for _, f := range files {
			fmt.Println(filepath.Base(f))
		}
		return nil
	},
}

var createCmd = &cobra.Command{
	Use:   "create <account>",
	Short: "Snapshot the account's current state into a new backup",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if !root.NewRegistry().Exists(name) {
			return fmt.Errorf("account '%s' not found", name)
		}

		st := root.NewStore()
		if err := st.Save(name, st.Load(name)); err != nil {
			return err
		}
		fmt.Printf("Backup created for account '%s'\n", name)
		return nil
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore <account> <backup-file>",
	Short: "Restore an account from a backup file",
	Long: `Restore an account's state from one of its backup files. The restored
state is saved through the normal path, so the restore itself produces
a new backup entry; history is never destroyed by restoring.

The backup file may be given as a bare file name from 'backup list' or
as a full path.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		st := root.NewStore()
		if !root.NewRegistry().Exists(name) {
			return fmt.Errorf("account '%s' not found", name)
		}

		backupFile := args[1]
		if filepath.Dir(backupFile) == "." {
			backupFile = filepath.Join(st.BackupDir(name), backupFile)
		}

		if err := st.Restore(name, backupFile); err != nil {
			return err
		}
		fmt.Printf("Account '%s' restored from %s\n", name, filepath.Base(backupFile))
		return nil
	},
}

func init() {
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 0, "Show at most this many backups")
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(createCmd)
	Cmd.AddCommand(restoreCmd)
}
