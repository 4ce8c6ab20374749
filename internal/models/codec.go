package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"baiyun/piggyvault/internal/dateutils"
)

// recordJSON is the canonical data.json document. Amounts are emitted as
// bare JSON numbers so files stay readable by the original application.
type recordJSON struct {
	Target         json.Number       `json:"target"`
	CurrentSaved   json.Number       `json:"current_saved"`
	TotalDeposits  int               `json:"total_deposits"`
	DepositDates   []string          `json:"deposit_dates"`
	DepositHistory []ledgerEntryJSON `json:"deposit_history"`
	SavingMode     string            `json:"saving_mode"`
}

type ledgerEntryJSON struct {
	Date      string      `json:"date"`
	Amount    json.Number `json:"amount"`
	Remaining json.Number `json:"remaining"`
}

// EncodeRecord marshals the record as two-space-indented JSON with all
// five canonical keys present.
func EncodeRecord(r AccountRecord) ([]byte, error) {
	doc := recordJSON{
		Target:         json.Number(r.Target.String()),
		CurrentSaved:   json.Number(r.CurrentSaved.String()),
		TotalDeposits:  r.TotalDeposits,
		DepositDates:   r.DepositDates,
		DepositHistory: []ledgerEntryJSON{},
		SavingMode:     string(r.SavingMode),
	}
	if doc.DepositDates == nil {
		doc.DepositDates = []string{}
	}
	for _, e := range r.Ledger {
		doc.DepositHistory = append(doc.DepositHistory, ledgerEntryJSON{
			Date:      dateutils.FormatStamp(e.Timestamp),
			Amount:    json.Number(e.Amount.String()),
			Remaining: json.Number(e.Remaining.String()),
		})
	}
	return json.MarshalIndent(doc, "", "  ")
}

// DecodeRecord unmarshals a data.json document permissively: absent or
// mistyped fields keep their defaults instead of failing the whole parse,
// and DepositDates is always recomputed from the ledger. Only a document
// that is not a JSON object at all is an error; the store downgrades that
// to a fresh record.
func DecodeRecord(data []byte) (AccountRecord, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return NewAccountRecord(), err
	}

	rec := NewAccountRecord()

	if msg, ok := raw["target"]; ok {
		var d decimal.Decimal
		if err := json.Unmarshal(msg, &d); err == nil {
			rec.Target = d
		}
	}
	if msg, ok := raw["current_saved"]; ok {
		var d decimal.Decimal
		if err := json.Unmarshal(msg, &d); err == nil {
			rec.CurrentSaved = d
		}
	}
	if msg, ok := raw["total_deposits"]; ok {
		var n int
		if err := json.Unmarshal(msg, &n); err == nil {
			rec.TotalDeposits = n
		}
	}
	if msg, ok := raw["saving_mode"]; ok {
		var s string
		if err := json.Unmarshal(msg, &s); err == nil {
			rec.SavingMode = ParseSavingMode(s)
		}
	}
	if msg, ok := raw["deposit_history"]; ok {
		var entries []ledgerEntryJSON
		if err := json.Unmarshal(msg, &entries); err == nil {
			for _, e := range entries {
				ts, err := dateutils.ParseStamp(e.Date)
				if err != nil {
					continue
				}
				amount, err := decimal.NewFromString(e.Amount.String())
				if err != nil {
					continue
				}
				remaining, err := decimal.NewFromString(e.Remaining.String())
				if err != nil {
					remaining = decimal.Zero
				}
				rec.Ledger = append(rec.Ledger, LedgerEntry{
					Timestamp: ts,
					Amount:    amount,
					Remaining: remaining,
				})
			}
		}
	}

	// Stored deposit_dates is informational only.
	rec.RecomputeDates()
	return rec, nil
}
