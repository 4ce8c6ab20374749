// Package models defines the account record, its ledger, and the JSON
// wire codec used by the store.
package models

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"baiyun/piggyvault/internal/dateutils"
)

// LedgerEntry is one recorded transaction. Amount is signed: positive for
// deposits, negative for withdrawals. Remaining is target minus balance
// after the transaction was applied; with no target set it goes negative
// and callers treat that as informational, not a warning.
type LedgerEntry struct {
	Timestamp time.Time
	Amount    decimal.Decimal
	Remaining decimal.Decimal
}

// DatePart returns the calendar date of the entry's timestamp.
func (e LedgerEntry) DatePart() string {
	return dateutils.ToISODate(e.Timestamp)
}

// AccountRecord is the in-memory state of one savings account. While on
// disk it is owned by the store; in memory it is owned by the caller and
// mutated only through the transaction engine.
type AccountRecord struct {
	Target        decimal.Decimal
	CurrentSaved  decimal.Decimal
	TotalDeposits int
	// DepositDates is derived from Ledger on every load and never trusted
	// from storage.
	DepositDates []string
	// Ledger is append-only; insertion order is application order.
	Ledger     []LedgerEntry
	SavingMode SavingMode
}

// NewAccountRecord returns the empty default record.
func NewAccountRecord() AccountRecord {
	return AccountRecord{
		Target:       decimal.Zero,
		CurrentSaved: decimal.Zero,
		DepositDates: []string{},
		Ledger:       []LedgerEntry{},
		SavingMode:   ModeAccumulate,
	}
}

// Clone returns a deep copy of the record. The engine mutates copies so a
// validation failure never leaves the caller's record half-updated.
func (r AccountRecord) Clone() AccountRecord {
	out := r
	out.DepositDates = append([]string{}, r.DepositDates...)
	out.Ledger = append([]LedgerEntry{}, r.Ledger...)
	return out
}

// Remaining returns target minus current balance. With target unset this
// is negative whenever anything has been saved.
func (r AccountRecord) Remaining() decimal.Decimal {
	return r.Target.Sub(r.CurrentSaved)
}

// Progress returns the saved fraction of the target as a percentage, or 0
// when no target is set.
func (r AccountRecord) Progress() float64 {
	if !r.Target.IsPositive() {
		return 0
	}
	return r.CurrentSaved.Div(r.Target).Mul(decimal.NewFromInt(100)).InexactFloat64()
}

// Equal reports whether two records hold the same state, comparing
// decimal values numerically.
func (r AccountRecord) Equal(other AccountRecord) bool {
	if !r.Target.Equal(other.Target) ||
		!r.CurrentSaved.Equal(other.CurrentSaved) ||
		r.TotalDeposits != other.TotalDeposits ||
		r.SavingMode != other.SavingMode ||
		len(r.DepositDates) != len(other.DepositDates) ||
		len(r.Ledger) != len(other.Ledger) {
		return false
	}
	for i, d := range r.DepositDates {
		if other.DepositDates[i] != d {
			return false
		}
	}
	for i, e := range r.Ledger {
		o := other.Ledger[i]
		if !e.Timestamp.Equal(o.Timestamp) || !e.Amount.Equal(o.Amount) || !e.Remaining.Equal(o.Remaining) {
			return false
		}
	}
	return true
}

// DatesFromLedger returns the distinct calendar dates of the entries in
// first-seen order. It is the single source of truth for DepositDates.
func DatesFromLedger(entries []LedgerEntry) []string {
	seen := make(map[string]struct{}, len(entries))
	dates := []string{}
	for _, e := range entries {
		d := e.DatePart()
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		dates = append(dates, d)
	}
	return dates
}

// RecomputeDates overwrites DepositDates from the ledger.
func (r *AccountRecord) RecomputeDates() {
	r.DepositDates = DatesFromLedger(r.Ledger)
}

// SortedForDisplay returns the entries ordered newest date first. Entries
// on the same date keep their stored order; sub-day ordering from storage
// carries no guarantee.
func SortedForDisplay(entries []LedgerEntry) []LedgerEntry {
	out := append([]LedgerEntry{}, entries...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DatePart() > out[j].DatePart()
	})
	return out
}

// FilterMonth returns the entries whose date falls in the given YYYY-MM
// month. An empty month returns everything.
func FilterMonth(entries []LedgerEntry, month string) []LedgerEntry {
	if month == "" {
		return entries
	}
	var out []LedgerEntry
	for _, e := range entries {
		if e.Timestamp.Format(dateutils.MonthLayout) == month {
			out = append(out, e)
		}
	}
	return out
}
