package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func entryAt(t *testing.T, stamp string, amount string) LedgerEntry {
	t.Helper()
	ts, err := time.ParseInLocation("2006-01-02 15:04:05", stamp, time.Local)
	assert.NoError(t, err)
	return LedgerEntry{
		Timestamp: ts,
		Amount:    decimal.RequireFromString(amount),
		Remaining: decimal.Zero,
	}
}

func TestNewAccountRecord(t *testing.T) {
	rec := NewAccountRecord()
	assert.True(t, rec.Target.IsZero())
	assert.True(t, rec.CurrentSaved.IsZero())
	assert.Zero(t, rec.TotalDeposits)
	assert.Empty(t, rec.DepositDates)
	assert.Empty(t, rec.Ledger)
	assert.Equal(t, ModeAccumulate, rec.SavingMode)
}

func TestDatesFromLedger(t *testing.T) {
	entries := []LedgerEntry{
		entryAt(t, "2024-03-15 09:00:00", "10"),
		entryAt(t, "2024-03-15 18:00:00", "5"),
		entryAt(t, "2024-03-16 08:00:00", "-3"),
		entryAt(t, "2024-03-15 23:59:59", "1"),
	}
	dates := DatesFromLedger(entries)
	assert.Equal(t, []string{"2024-03-15", "2024-03-16"}, dates)
}

func TestDatesFromLedgerEmpty(t *testing.T) {
	assert.Equal(t, []string{}, DatesFromLedger(nil))
}

func TestCloneIsIndependent(t *testing.T) {
	rec := NewAccountRecord()
	rec.Ledger = append(rec.Ledger, entryAt(t, "2024-03-15 09:00:00", "10"))
	rec.DepositDates = append(rec.DepositDates, "2024-03-15")

	clone := rec.Clone()
	clone.Ledger[0].Amount = decimal.NewFromInt(99)
	clone.DepositDates[0] = "1999-01-01"
	clone.CurrentSaved = decimal.NewFromInt(42)

	assert.True(t, rec.Ledger[0].Amount.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, "2024-03-15", rec.DepositDates[0])
	assert.True(t, rec.CurrentSaved.IsZero())
}

func TestRemainingAndProgress(t *testing.T) {
	rec := NewAccountRecord()
	rec.Target = decimal.NewFromInt(200)
	rec.CurrentSaved = decimal.NewFromInt(50)

	assert.True(t, rec.Remaining().Equal(decimal.NewFromInt(150)))
	assert.InDelta(t, 25.0, rec.Progress(), 0.001)
}

func TestRemainingWithoutTargetGoesNegative(t *testing.T) {
	// target == 0 means "no cap"; remaining stays informational and may
	// be negative.
	rec := NewAccountRecord()
	rec.CurrentSaved = decimal.NewFromInt(30)

	assert.True(t, rec.Remaining().Equal(decimal.NewFromInt(-30)))
	assert.Zero(t, rec.Progress())
}

func TestSortedForDisplay(t *testing.T) {
	entries := []LedgerEntry{
		entryAt(t, "2024-03-14 09:00:00", "1"),
		entryAt(t, "2024-03-16 09:00:00", "2"),
		entryAt(t, "2024-03-15 18:00:00", "3"),
		entryAt(t, "2024-03-15 08:00:00", "4"),
	}
	sorted := SortedForDisplay(entries)

	assert.Equal(t, "2024-03-16", sorted[0].DatePart())
	assert.Equal(t, "2024-03-15", sorted[1].DatePart())
	assert.Equal(t, "2024-03-15", sorted[2].DatePart())
	assert.Equal(t, "2024-03-14", sorted[3].DatePart())
	// Same-date entries keep stored order; sub-day ordering carries no
	// further guarantee.
	assert.True(t, sorted[1].Amount.Equal(decimal.NewFromInt(3)))
	assert.True(t, sorted[2].Amount.Equal(decimal.NewFromInt(4)))

	// Input order untouched
	assert.Equal(t, "2024-03-14", entries[0].DatePart())
}

func TestFilterMonth(t *testing.T) {
	entries := []LedgerEntry{
		entryAt(t, "2024-03-14 09:00:00", "1"),
		entryAt(t, "2024-04-01 09:00:00", "2"),
		entryAt(t, "2024-03-31 23:00:00", "3"),
	}

	march := FilterMonth(entries, "2024-03")
	assert.Len(t, march, 2)

	all := FilterMonth(entries, "")
	assert.Len(t, all, 3)

	none := FilterMonth(entries, "2023-03")
	assert.Empty(t, none)
}

func TestRecordEqual(t *testing.T) {
	a := NewAccountRecord()
	b := NewAccountRecord()
	assert.True(t, a.Equal(b))

	// Different decimal representations of the same value still compare
	// equal.
	a.CurrentSaved = decimal.RequireFromString("10.50")
	b.CurrentSaved = decimal.RequireFromString("10.5")
	assert.True(t, a.Equal(b))

	b.TotalDeposits = 1
	assert.False(t, a.Equal(b))
}
