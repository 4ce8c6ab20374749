// Package export writes ledger history to CSV for use outside the
// application.
package export

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"

	"baiyun/piggyvault/internal/dateutils"
	"baiyun/piggyvault/internal/models"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// LedgerRow is one CSV row of exported history.
type LedgerRow struct {
	Date      string `csv:"date"`
	Amount    string `csv:"amount"`
	Remaining string `csv:"remaining"`
}

// RowsFromLedger converts entries to CSV rows with two-decimal amounts.
func RowsFromLedger(entries []models.LedgerEntry) []LedgerRow {
	rows := []LedgerRow{}
	for _, e := range entries {
		rows = append(rows, LedgerRow{
			Date:      dateutils.FormatStamp(e.Timestamp),
			Amount:    e.Amount.StringFixed(2),
			Remaining: e.Remaining.StringFixed(2),
		})
	}
	return rows
}

// WriteLedgerCSV writes the entries to a CSV file at path, newest date
// first like the history view.
func WriteLedgerCSV(path string, entries []models.LedgerEntry) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("failed to close CSV file")
		}
	}()

	rows := RowsFromLedger(models.SortedForDisplay(entries))
	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("error writing CSV file: %w", err)
	}

	log.WithFields(logrus.Fields{"file": path, "rows": len(rows)}).Info("ledger exported")
	return nil
}
