// Package transaction contains the deposit and withdraw commands.
package transaction

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"baiyun/piggyvault/cmd/root"
	"baiyun/piggyvault/internal/engine"
)

// DepositCmd adds money to an account.
var DepositCmd = &cobra.Command{
	Use:   "deposit <account> <amount>",
	Short: "Deposit an amount into an account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		amount, err := parseAmount(args[1])
		if err != nil {
			return err
		}

		reg := root.NewRegistry()
		if !reg.Exists(name) {
			return fmt.Errorf("account '%s' not found", name)
		}

		st := root.NewStore()
		rec, _, err := engine.New().Deposit(st.Load(name), amount)
		if err != nil {
			return err
		}
		if err := st.Save(name, rec); err != nil {
			return err
		}
		root.TouchLastOpened(name)

		fmt.Printf("Deposited %s, balance is now %s\n",
			amount.StringFixed(2), rec.CurrentSaved.StringFixed(2))
		fmt.Println(root.NewLibrary().Random())
		return nil
	},
}

// WithdrawCmd removes money from an account.
var WithdrawCmd = &cobra.Command{
	Use:   "withdraw <account> <amount>",
	Short: "Withdraw an amount from an account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		amount, err := parseAmount(args[1])
		if err != nil {
			return err
		}

		reg := root.NewRegistry()
		if !reg.Exists(name) {
			return fmt.Errorf("account '%s' not found", name)
		}

		st := root.NewStore()
		rec, _, err := engine.New().Withdraw(st.Load(name), amount)
		if err != nil {
			return err
		}
		if err := st.Save(name, rec); err != nil {
			return err
		}
		root.TouchLastOpened(name)

		fmt.Printf("Withdrew %s, balance is now %s\n",
			amount.StringFixed(2), rec.CurrentSaved.StringFixed(2))
		return nil
	},
}

func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("'%s' is not a valid amount", s)
	}
	return amount, nil
}
