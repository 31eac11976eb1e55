package app

import (
	"testing"
	"time"
)

func TestParseTimezoneLocation(t *testing.T) {
	loc, err := parseTimezoneLocation("UTC")
	if err != nil || loc.String() != "UTC" {
		t.Errorf("UTC: loc=%v err=%v", loc, err)
	}

	loc, err = parseTimezoneLocation("+05:30")
	if err != nil {
		t.Fatalf("+05:30: %v", err)
	}
	_, offset := time.Now().In(loc).Zone()
	if offset != 5*3600+30*60 {
		t.Errorf("+05:30 offset = %d", offset)
	}

	loc, err = parseTimezoneLocation("-02:00")
	if err != nil {
		t.Fatalf("-02:00: %v", err)
	}
	_, offset = time.Now().In(loc).Zone()
	if offset != -2*3600 {
		t.Errorf("-02:00 offset = %d", offset)
	}

	if _, err := parseTimezoneLocation("Not/AZone"); err == nil {
		t.Error("expected error for unknown zone")
	}
	if _, err := parseTimezoneLocation("+99:00"); err == nil {
		t.Error("expected error for out-of-range offset")
	}
}

func TestHumanizeDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{30 * time.Second, "30s"},
		{90 * time.Minute, "1h0m0s"},
		{3 * time.Hour, "3h0m0s"},
		{50 * time.Hour, "48h0m0s"},
	}
	for _, tt := range tests {
		if got := humanizeDuration(tt.d); got != tt.want {
			t.Errorf("humanizeDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
