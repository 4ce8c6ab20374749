// Package dateutils provides the date and timestamp layouts shared by the
// record codec, the transaction engine and the history views.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DateLayoutISO is the calendar-date layout used for deposit dates.
	DateLayoutISO = "2006-01-02"
	// DateLayoutFull is the timestamp layout written to ledger entries.
	DateLayoutFull = "2006-01-02 15:04:05"
	// BackupStampLayout is the second-resolution stamp in backup file names.
	BackupStampLayout = "20060102_150405"
	// MonthLayout is the layout accepted by history month filters.
	MonthLayout = "2006-01"
)

// FormatStamp formats a time as a full ledger timestamp.
func FormatStamp(t time.Time) string {
	return t.Format(DateLayoutFull)
}

// ToISODate formats a time as a calendar date.
func ToISODate(t time.Time) string {
	return t.Format(DateLayoutISO)
}

// ParseStamp parses a ledger timestamp. Date-only values are accepted and
// resolve to midnight, matching records written by older versions.
func ParseStamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(DateLayoutFull, s, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(DateLayoutISO, s, time.Local); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unable to parse timestamp: %s", s)
}

// DatePart returns the calendar-date prefix of a ledger timestamp string.
func DatePart(stamp string) string {
	if i := strings.IndexByte(stamp, ' '); i >= 0 {
		return stamp[:i]
	}
	return stamp
}

// ValidMonth reports whether s is a well-formed YYYY-MM month filter.
func ValidMonth(s string) bool {
	_, err := time.Parse(MonthLayout, s)
	return err == nil
}
