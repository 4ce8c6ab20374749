// Package history contains the ledger history command.
package history

import (
	"fmt"

	"github.com/spf13/cobra"

	"baiyun/piggyvault/cmd/root"
	"baiyun/piggyvault/internal/dateutils"
	"baiyun/piggyvault/internal/export"
	"baiyun/piggyvault/internal/models"
)

var (
	monthFlag  string
	limitFlag  int
	exportFlag string
)

// Cmd shows or exports an account's transaction history.
var Cmd = &cobra.Command{
	Use:   "history <account>",
	Short: "Show an account's transaction history, newest date first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		reg := root.NewRegistry()
		if !reg.Exists(name) {
			return fmt.Errorf("account '%s' not found", name)
		}
		if monthFlag != "" && !dateutils.ValidMonth(monthFlag) {
			return fmt.Errorf("'%s' is not a valid month (expected YYYY-MM)", monthFlag)
		}

		rec := root.NewStore().Load(name)
		entries := models.FilterMonth(rec.Ledger, monthFlag)

		if exportFlag != "" {
			if err := export.WriteLedgerCSV(exportFlag, entries); err != nil {
				return err
			}
			fmt.Printf("History exported to %s\n", exportFlag)
			return nil
		}

		entries = models.SortedForDisplay(entries)
		if limitFlag > 0 && len(entries) > limitFlag {
			entries = entries[:limitFlag]
		}
		if len(entries) == 0 {
			fmt.Println("No transactions recorded")
			return nil
		}

		for _, e := range entries {
			kind := "deposit"
			if e.Amount.IsNegative() {
				kind = "withdrawal"
			}
			fmt.Printf("%s  %-10s %10s  remaining %s\n",
				dateutils.FormatStamp(e.Timestamp), kind,
				e.Amount.StringFixed(2), e.Remaining.StringFixed(2))
		}
		return nil
	},
}

func init() {
	Cmd.Flags().StringVarP(&monthFlag, "month", "m", "", "Only show entries from this month (YYYY-MM)")
	Cmd.Flags().IntVarP(&limitFlag, "limit", "n", 0, "Show at most this many entries")
	Cmd.Flags().StringVarP(&exportFlag, "export", "e", "", "Write the selection to a CSV file instead of printing")
}
