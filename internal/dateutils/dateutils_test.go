package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseStamp(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "full timestamp",
			input: "2024-03-15 09:30:00",
			want:  time.Date(2024, 3, 15, 9, 30, 0, 0, time.Local),
		},
		{
			name:  "date only resolves to midnight",
			input: "2024-03-15",
			want:  time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local),
		},
		{
			name:  "surrounding whitespace",
			input: "  2024-03-15 09:30:00  ",
			want:  time.Date(2024, 3, 15, 9, 30, 0, 0, time.Local),
		},
		{
			name:    "garbage",
			input:   "not-a-date",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStamp(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestFormatStampRoundTrip(t *testing.T) {
	orig := time.Date(2024, 3, 15, 9, 30, 45, 0, time.Local)
	parsed, err := ParseStamp(FormatStamp(orig))
	assert.NoError(t, err)
	assert.True(t, parsed.Equal(orig))
}

func TestDatePart(t *testing.T) {
	assert.Equal(t, "2024-03-15", DatePart("2024-03-15 09:30:00"))
	assert.Equal(t, "2024-03-15", DatePart("2024-03-15"))
}

func TestValidMonth(t *testing.T) {
	assert.True(t, ValidMonth("2024-03"))
	assert.False(t, ValidMonth("2024-13"))
	assert.False(t, ValidMonth("March 2024"))
	assert.False(t, ValidMonth(""))
}
