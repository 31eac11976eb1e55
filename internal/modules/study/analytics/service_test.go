package analytics

import (
	"testing"
	"time"
)

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*3600)
	now := time.Date(2025, 8, 15, 1, 30, 0, 0, time.UTC) // 03:30 local

	got := StartOfDay(now, loc)
	want := time.Date(2025, 8, 15, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("StartOfDay = %v, want %v", got, want)
	}

	// Late UTC evening crosses into the next local day.
	now = time.Date(2025, 8, 15, 23, 30, 0, 0, time.UTC) // 01:30 local Aug 16
	got = StartOfDay(now, loc)
	want = time.Date(2025, 8, 16, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("StartOfDay = %v, want %v", got, want)
	}
}

func TestPeriodStart(t *testing.T) {
	loc := time.UTC
	now := time.Date(2025, 8, 15, 14, 0, 0, 0, loc)

	tests := []struct {
		period string
		want   time.Time
	}{
		{"today", time.Date(2025, 8, 15, 0, 0, 0, 0, loc)},
		{"week", now.AddDate(0, 0, -7)},
		{"month", now.AddDate(0, 0, -30)},
		{"bogus", now.AddDate(0, 0, -7)},
		{"", now.AddDate(0, 0, -7)},
	}
	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			if got := PeriodStart(tt.period, now, loc); !got.Equal(tt.want) {
				t.Errorf("PeriodStart(%q) = %v, want %v", tt.period, got, tt.want)
			}
		})
	}
}
