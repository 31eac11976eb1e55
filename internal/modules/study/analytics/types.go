package analytics

import (
	"time"

	"github.com/routein/core/internal/models"
)

// TodaySessionItem is the embedded per-session detail inside a subject's
// breakdown for today's stats.
type TodaySessionItem struct {
	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
	Duration  int        `json:"duration"`
	Notes     string     `json:"notes"`
}

type TodaySubjectStat struct {
	Subject      models.Subject     `json:"subject"`
	TotalMinutes int                `json:"totalMinutes"`
	TotalHours   float64            `json:"totalHours"`
	SessionCount int                `json:"sessionCount"`
	Sessions     []TodaySessionItem `json:"sessions"`
}

type TodaySummary struct {
	Date             string                     `json:"date"`
	TotalMinutes     int                        `json:"totalMinutes"`
	TotalHours       float64                    `json:"totalHours"`
	TotalSessions    int                        `json:"totalSessions"`
	SubjectBreakdown []TodaySubjectStat         `json:"subjectBreakdown"`
	RecentSessions   []models.StudySessionModel `json:"recentSessions"`
}

type SubjectStat struct {
	Subject      models.Subject `json:"subject"`
	TotalHours   float64        `json:"totalHours"`
	TotalMinutes int            `json:"totalMinutes"`
	SessionCount int            `json:"sessionCount"`
}

type AnalyticsSummary struct {
	Period           string        `json:"period"`
	TotalSessions    int           `json:"totalSessions"`
	TotalMinutes     int           `json:"totalMinutes"`
	TotalHours       float64       `json:"totalHours"`
	SubjectBreakdown []SubjectStat `json:"subjectBreakdown"`
}

type DaySessionItem struct {
	Subject   models.Subject `json:"subject"`
	Duration  int            `json:"duration"`
	StartTime time.Time      `json:"startTime"`
	EndTime   *time.Time     `json:"endTime"`
}

// DaySummary aggregates one calendar day of completed sessions.
type DaySummary struct {
	Date         string                 `json:"date"`
	TotalMinutes int                    `json:"totalMinutes"`
	Sessions     []DaySessionItem       `json:"sessions"`
	Subjects     map[models.Subject]int `json:"subjects"`
}

type DailySummaryFilter struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}
