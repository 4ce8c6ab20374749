// Package target contains the target, mode and reset commands.
package target

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"baiyun/piggyvault/cmd/root"
	"baiyun/piggyvault/internal/engine"
	"baiyun/piggyvault/internal/models"
)

// Cmd sets a new saving target.
var Cmd = &cobra.Command{
	Use:   "target <account> <amount>",
	Short: "Set a new saving target",
	Long: `Set a new saving target for an account.

In accumulate mode the target is replaced and everything else is kept.
In per-target mode the account is reset first: balance and history are
discarded and the new goal starts clean.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		amount, err := decimal.NewFromString(args[1])
		if err != nil {
			return fmt.Errorf("'%s' is not a valid amount", args[1])
		}

		reg := root.NewRegistry()
		if !reg.Exists(name) {
			return fmt.Errorf("account '%s' not found", name)
		}

		st := root.NewStore()
		rec, err := engine.New().SetTarget(st.Load(name), amount)
		if err != nil {
			return err
		}
		if err := st.Save(name, rec); err != nil {
			return err
		}
		root.TouchLastOpened(name)

		fmt.Printf("Target set to %s\n", rec.Target.StringFixed(2))
		return nil
	},
}

// ModeCmd switches the saving mode.
var ModeCmd = &cobra.Command{
	Use:   "mode <account> <accumulate|per-target>",
	Short: "Switch the saving mode",
	Long: `Switch the saving mode of an account.

Switching to per-target does not reset anything by itself; only the
next 'target' command while in per-target mode starts a fresh record.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		mode, err := modeFromLabel(args[1])
		if err != nil {
			return err
		}

		reg := root.NewRegistry()
		if !reg.Exists(name) {
			return fmt.Errorf("account '%s' not found", name)
		}

		st := root.NewStore()
		rec := engine.New().SetMode(st.Load(name), mode)
		if err := st.Save(name, rec); err != nil {
			return err
		}
		root.TouchLastOpened(name)

		fmt.Printf("Saving mode set to %s\n", rec.SavingMode)
		return nil
	},
}

// ResetCmd wipes an account back to the empty default state.
var ResetCmd = &cobra.Command{
	Use:   "reset <account>",
	Short: "Reset an account to its empty state (recoverable only from a backup)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		reg := root.NewRegistry()
		if !reg.Exists(name) {
			return fmt.Errorf("account '%s' not found", name)
		}

		st := root.NewStore()
		rec := engine.New().Reset(st.Load(name))
		if err := st.Save(name, rec); err != nil {
			return err
		}
		root.TouchLastOpened(name)

		fmt.Printf("Account '%s' reset\n", name)
		return nil
	},
}

func modeFromLabel(label string) (models.SavingMode, error) {
	switch label {
	case "accumulate":
		return models.ModeAccumulate, nil
	case "per-target":
		return models.ModePerTarget, nil
	default:
		return "", fmt.Errorf("unknown mode '%s' (use 'accumulate' or 'per-target')", label)
	}
}
