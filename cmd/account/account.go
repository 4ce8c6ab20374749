// Package account contains the account management commands.
package account

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"baiyun/piggyvault/cmd/root"
)

// Cmd is the account management command
var Cmd = &cobra.Command{
	Use:   "account",
	Short: "List, create and delete savings accounts",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all savings accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := root.NewRegistry().List()
		if err != nil {
			return err
		}
		sort.Strings(names)
		if len(names) == 0 {
			fmt.Println("No accounts yet. Create one with: piggyvault account create <name>")
			return nil
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new savings account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := root.NewRegistry().Create(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Account '%s' created\n", name)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete an account and all of its backups, irrecoverably",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if err := root.NewRegistry().Delete(name); err != nil {
			return err
		}
		// The registry knows nothing about settings; the deleted account
		// must stop being the auto-open target here.
		if err := root.NewSettings().ClearLastOpenedIf(name); err != nil {
			root.Log.WithError(err).Warn("failed to clear last opened account")
		}
		fmt.Printf("Account '%s' deleted\n", name)
		return nil
	},
}

// StatusCmd shows one account's balance, target and progress.
var StatusCmd = &cobra.Command{
	Use:   "status <account>",
	Short: "Show an account's balance, target and progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		reg := root.NewRegistry()
		if !reg.Exists(name) {
			return fmt.Errorf("account '%s' not found", name)
		}

		rec := root.NewStore().Load(name)
		root.TouchLastOpened(name)

		fmt.Printf("Account:        %s\n", name)
		fmt.Printf("Balance:        %s\n", rec.CurrentSaved.StringFixed(2))
		if rec.Target.IsPositive() {
			fmt.Printf("Target:         %s\n", rec.Target.StringFixed(2))
			fmt.Printf("Remaining:      %s\n", rec.Remaining().StringFixed(2))
			fmt.Printf("Progress:       %.1f%%\n", rec.Progress())
		} else {
			fmt.Println("Target:         not set")
		}
		fmt.Printf("Deposits:       %d\n", rec.TotalDeposits)
		fmt.Printf("Active days:    %d\n", len(rec.DepositDates))
		fmt.Printf("Saving mode:    %s\n", rec.SavingMode)
		return nil
	},
}

func init() {
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(createCmd)
	Cmd.AddCommand(deleteCmd)
}
