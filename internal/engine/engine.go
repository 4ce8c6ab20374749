// Package engine applies transactions to account records. Every operation
// is a pure transformation: it validates first, works on a copy, and
// returns the updated record, so a failed operation never leaves the
// caller's record half-updated.
package engine

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"baiyun/piggyvault/internal/bankerror"
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

// Engine applies transactions to account records.
type Engine struct {
	now func() time.Time
}

// New returns an engine stamping entries with the wall clock.
func New() *Engine {
	return NewWithClock(time.Now)
}

// NewWithClock returns an engine with an injected clock.
func NewWithClock(now func() time.Time) *Engine {
	return &Engine{now: now}
}

// Deposit adds amount to the balance. It fails with InvalidAmountError if
// amount is not positive and with TargetExceededError if a target is set
// and the deposit would overshoot it. target == 0 means no cap.
func (e *Engine) Deposit(rec models.AccountRecord, amount decimal.Decimal) (models.AccountRecord, models.LedgerEntry, error) {
	if !amount.IsPositive() {
		return rec, models.LedgerEntry{}, &bankerror.InvalidAmountError{Amount: amount}
	}
	if rec.Target.IsPositive() && rec.CurrentSaved.Add(amount).GreaterThan(rec.Target) {
		return rec, models.LedgerEntry{}, &bankerror.TargetExceededError{
			Amount:    amount,
			Remaining: rec.Target.Sub(rec.CurrentSaved),
		}
	}

	out := rec.Clone()
	out.CurrentSaved = out.CurrentSaved.Add(amount)
	out.TotalDeposits++

	entry := e.appendEntry(&out, amount)
	log.WithFields(logrus.Fields{
		"amount":  amount.StringFixed(2),
		"balance": out.CurrentSaved.StringFixed(2),
	}).Debug("deposit applied")
	return out, entry, nil
}

// Withdraw removes amount from the balance. It fails with
// InvalidAmountError if amount is not positive and with
// InsufficientFundsError if the balance would go negative. The deposit
// counter is untouched; the withdrawal day still counts as an active day
// because deposit dates are rebuilt from the ledger.
func (e *Engine) Withdraw(rec models.AccountRecord, amount decimal.Decimal) (models.AccountRecord, models.LedgerEntry, error) {
	if !amount.IsPositive() {
		return rec, models.LedgerEntry{}, &bankerror.InvalidAmountError{Amount: amount}
	}
	if amount.GreaterThan(rec.CurrentSaved) {
		return rec, models.LedgerEntry{}, &bankerror.InsufficientFundsError{
			Amount:    amount,
			Available: rec.CurrentSaved,
		}
	}

	out := rec.Clone()
	out.CurrentSaved = out.CurrentSaved.Sub(amount)

	entry := e.appendEntry(&out, amount.Neg())
	log.WithFields(logrus.Fields{
		"amount":  amount.StringFixed(2),
		"balance": out.CurrentSaved.StringFixed(2),
	}).Debug("withdrawal applied")
	return out, entry, nil
}

// SetTarget replaces the target. In accumulate mode everything else is
// preserved. In per-target mode the whole record is reset first: a new
// goal starts clean, discarding balance and history.
func (e *Engine) SetTarget(rec models.AccountRecord, target decimal.Decimal) (models.AccountRecord, error) {
	if !target.IsPositive() {
		return rec, &bankerror.InvalidAmountError{Amount: target}
	}

	var out models.AccountRecord
	switch rec.SavingMode {
	case models.ModePerTarget:
		out = models.NewAccountRecord()
		out.SavingMode = models.ModePerTarget
	default:
		out = rec.Clone()
	}
	out.Target = target
	return out, nil
}

// SetMode assigns the saving mode. Nothing else changes; switching to
// per-target only takes effect on the next SetTarget.
func (e *Engine) SetMode(rec models.AccountRecord, mode models.SavingMode) models.AccountRecord {
	out := rec.Clone()
	out.SavingMode = mode
	return out
}

// Reset unconditionally replaces the record with the empty default.
// Recoverable only through a prior backup.
func (e *Engine) Reset(rec models.AccountRecord) models.AccountRecord {
	return models.NewAccountRecord()
}

// appendEntry records a signed transaction and keeps the derived date set
// in sync with the ledger.
func (e *Engine) appendEntry(rec *models.AccountRecord, amount decimal.Decimal) models.LedgerEntry {
	now := e.now()
	entry := models.LedgerEntry{
		Timestamp: now,
		Amount:    amount,
		Remaining: rec.Target.Sub(rec.CurrentSaved),
	}
	rec.Ledger = append(rec.Ledger, entry)

	day := dateutils.ToISODate(now)
	for _, d := range rec.DepositDates {
		if d == day {
			return entry
		}
	}
	rec.DepositDates = append(rec.DepositDates, day)
	return entry
}
