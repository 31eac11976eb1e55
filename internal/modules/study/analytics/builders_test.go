package analytics

import (
	"testing"
	"time"

	"github.com/routein/core/internal/models"
)

func completedSession(subject models.Subject, start time.Time, minutes int, notes string) models.StudySessionModel {
	end := start.Add(time.Duration(minutes) * time.Minute)
	return models.StudySessionModel{
		Subject:   subject,
		StartTime: start,
		EndTime:   &end,
		Duration:  minutes,
		Notes:     notes,
	}
}

func TestRoundHours(t *testing.T) {
	tests := []struct {
		minutes int
		want    float64
	}{
		{0, 0},
		{60, 1},
		{75, 1.25},
		{90, 1.5},
		{100, 1.67},
		{1, 0.02},
	}
	for _, tt := range tests {
		if got := RoundHours(tt.minutes); got != tt.want {
			t.Errorf("RoundHours(%d) = %v, want %v", tt.minutes, got, tt.want)
		}
	}
}

func TestBuildTodaySummary(t *testing.T) {
	dayStart := time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)
	sessions := []models.StudySessionModel{
		completedSession(models.SubjectAWS, dayStart.Add(9*time.Hour), 30, "EC2"),
		completedSession(models.SubjectDSA, dayStart.Add(11*time.Hour), 45, "graphs"),
		completedSession(models.SubjectAWS, dayStart.Add(14*time.Hour), 25, "S3"),
	}

	got := BuildTodaySummary(sessions, dayStart)

	if got.Date != "2025-08-15" {
		t.Errorf("Date = %q, want 2025-08-15", got.Date)
	}
	if got.TotalMinutes != 100 {
		t.Errorf("TotalMinutes = %d, want 100", got.TotalMinutes)
	}
	if got.TotalHours != 1.67 {
		t.Errorf("TotalHours = %v, want 1.67", got.TotalHours)
	}
	if got.TotalSessions != 3 {
		t.Errorf("TotalSessions = %d, want 3", got.TotalSessions)
	}

	// Subjects appear in order of first occurrence.
	if len(got.SubjectBreakdown) != 2 {
		t.Fatalf("SubjectBreakdown has %d entries, want 2", len(got.SubjectBreakdown))
	}
	aws := got.SubjectBreakdown[0]
	if aws.Subject != models.SubjectAWS || aws.TotalMinutes != 55 || aws.SessionCount != 2 {
		t.Errorf("first breakdown = %+v, want AWS/55/2", aws)
	}
	dsa := got.SubjectBreakdown[1]
	if dsa.Subject != models.SubjectDSA || dsa.TotalMinutes != 45 || dsa.SessionCount != 1 {
		t.Errorf("second breakdown = %+v, want DSA/45/1", dsa)
	}
	if len(aws.Sessions) != 2 || aws.Sessions[0].Notes != "EC2" {
		t.Errorf("AWS sessions = %+v", aws.Sessions)
	}

	// Recent sessions are most recent first.
	if len(got.RecentSessions) != 3 {
		t.Fatalf("RecentSessions has %d entries, want 3", len(got.RecentSessions))
	}
	if got.RecentSessions[0].Notes != "S3" || got.RecentSessions[2].Notes != "EC2" {
		t.Errorf("RecentSessions not reversed: %+v", got.RecentSessions)
	}
}

func TestBuildTodaySummaryEmpty(t *testing.T) {
	dayStart := time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)
	got := BuildTodaySummary(nil, dayStart)

	if got.TotalMinutes != 0 || got.TotalSessions != 0 || got.TotalHours != 0 {
		t.Errorf("empty summary has non-zero totals: %+v", got)
	}
	if got.SubjectBreakdown == nil || len(got.SubjectBreakdown) != 0 {
		t.Errorf("SubjectBreakdown should be empty non-nil slice, got %v", got.SubjectBreakdown)
	}
	if got.RecentSessions == nil || len(got.RecentSessions) != 0 {
		t.Errorf("RecentSessions should be empty non-nil slice, got %v", got.RecentSessions)
	}
}

func TestBuildAnalytics(t *testing.T) {
	base := time.Date(2025, 8, 10, 8, 0, 0, 0, time.UTC)
	sessions := []models.StudySessionModel{
		completedSession(models.SubjectDocker, base, 60, ""),
		completedSession(models.SubjectAWS, base.Add(24*time.Hour), 30, ""),
		completedSession(models.SubjectDocker, base.Add(48*time.Hour), 30, ""),
	}

	got := BuildAnalytics(sessions, "week")

	if got.Period != "week" {
		t.Errorf("Period = %q, want week", got.Period)
	}
	if got.TotalSessions != 3 || got.TotalMinutes != 120 || got.TotalHours != 2 {
		t.Errorf("totals = %d/%d/%v, want 3/120/2", got.TotalSessions, got.TotalMinutes, got.TotalHours)
	}
	if len(got.SubjectBreakdown) != 2 {
		t.Fatalf("SubjectBreakdown has %d entries, want 2", len(got.SubjectBreakdown))
	}
	if got.SubjectBreakdown[0].Subject != models.SubjectDocker {
		t.Errorf("first subject = %q, want Docker (first occurrence order)", got.SubjectBreakdown[0].Subject)
	}
	if got.SubjectBreakdown[0].TotalMinutes != 90 || got.SubjectBreakdown[0].TotalHours != 1.5 {
		t.Errorf("Docker stat = %+v", got.SubjectBreakdown[0])
	}
}

func TestBuildDailySummary(t *testing.T) {
	loc := time.UTC
	day1 := time.Date(2025, 8, 14, 9, 0, 0, 0, loc)
	day2 := time.Date(2025, 8, 15, 20, 0, 0, 0, loc)
	sessions := []models.StudySessionModel{
		completedSession(models.SubjectAWS, day1, 30, ""),
		completedSession(models.SubjectDSA, day1.Add(3*time.Hour), 60, ""),
		completedSession(models.SubjectAWS, day2, 45, ""),
	}

	got := BuildDailySummary(sessions, loc)

	if len(got) != 2 {
		t.Fatalf("got %d days, want 2", len(got))
	}
	// Most recent day first.
	if got[0].Date != "2025-08-15" || got[1].Date != "2025-08-14" {
		t.Errorf("day order = [%s, %s], want [2025-08-15, 2025-08-14]", got[0].Date, got[1].Date)
	}
	if got[1].TotalMinutes != 90 {
		t.Errorf("2025-08-14 TotalMinutes = %d, want 90", got[1].TotalMinutes)
	}
	if got[1].Subjects[models.SubjectAWS] != 30 || got[1].Subjects[models.SubjectDSA] != 60 {
		t.Errorf("2025-08-14 subjects = %v", got[1].Subjects)
	}
	if len(got[0].Sessions) != 1 || got[0].Sessions[0].Subject != models.SubjectAWS {
		t.Errorf("2025-08-15 sessions = %+v", got[0].Sessions)
	}
}

func TestBuildDailySummaryLateEveningLocalGrouping(t *testing.T) {
	// 23:30 local on Aug 14 is 03:30 UTC on Aug 15; the session must land
	// on the local day.
	loc := time.FixedZone("UTC+4", 4*3600)
	start := time.Date(2025, 8, 14, 23, 30, 0, 0, loc)
	sessions := []models.StudySessionModel{
		completedSession(models.SubjectDSA, start.UTC(), 20, ""),
	}

	got := BuildDailySummary(sessions, loc)
	if len(got) != 1 {
		t.Fatalf("got %d days, want 1", len(got))
	}
	if got[0].Date != "2025-08-14" {
		t.Errorf("Date = %q, want 2025-08-14", got[0].Date)
	}
}

func TestLastReversed(t *testing.T) {
	base := time.Date(2025, 8, 15, 8, 0, 0, 0, time.UTC)
	sessions := make([]models.StudySessionModel, 0, 7)
	for i := 0; i < 7; i++ {
		sessions = append(sessions, completedSession(models.SubjectAWS, base.Add(time.Duration(i)*time.Hour), 10, ""))
	}

	got := lastReversed(sessions, 5)
	if len(got) != 5 {
		t.Fatalf("got %d sessions, want 5", len(got))
	}
	if !got[0].StartTime.Equal(sessions[6].StartTime) {
		t.Errorf("first recent session should be the latest one")
	}
	if !got[4].StartTime.Equal(sessions[2].StartTime) {
		t.Errorf("last recent session should be the 5th newest")
	}

	short := lastReversed(sessions[:2], 5)
	if len(short) != 2 || !short[0].StartTime.Equal(sessions[1].StartTime) {
		t.Errorf("short input not reversed correctly: %+v", short)
	}
}
