package models

import (
	"testing"
	"time"
)

func TestDurationMinutes(t *testing.T) {
	start := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		end  time.Time
		want int
	}{
		{"exact hour", start.Add(60 * time.Minute), 60},
		{"rounds 90s up to 2min", start.Add(90 * time.Second), 2},
		{"rounds 29s down to 0", start.Add(29 * time.Second), 0},
		{"rounds 30s up to 1", start.Add(30 * time.Second), 1},
		{"25 minutes", start.Add(25 * time.Minute), 25},
		{"zero length", start, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DurationMinutes(start, tt.end); got != tt.want {
				t.Errorf("DurationMinutes() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestComplete(t *testing.T) {
	start := time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(45 * time.Minute)

	s := StudySessionModel{
		Subject:   SubjectDSA,
		StartTime: start,
		IsActive:  true,
	}
	s.Complete(end, "solved two tree problems")

	if s.IsActive {
		t.Error("session should not be active after Complete")
	}
	if s.EndTime == nil || !s.EndTime.Equal(end) {
		t.Errorf("EndTime = %v, want %v", s.EndTime, end)
	}
	if s.Duration != 45 {
		t.Errorf("Duration = %d, want 45", s.Duration)
	}
	if s.Notes != "solved two tree problems" {
		t.Errorf("Notes = %q", s.Notes)
	}
}
