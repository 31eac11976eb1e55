package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/routein/core/internal/models"
)

const dateLayout = "2006-01-02"

// RoundHours converts minutes to hours rounded to 2 decimals.
func RoundHours(minutes int) float64 {
	return math.Round(float64(minutes)/60*100) / 100
}

// BuildTodaySummary reduces today's completed sessions into the summary
// payload. Sessions must be in chronological order; subjects appear in the
// breakdown in order of first occurrence.
func BuildTodaySummary(sessions []models.StudySessionModel, dayStart time.Time) TodaySummary {
	totalMinutes := 0
	order := []models.Subject{}
	bySubject := map[models.Subject]*TodaySubjectStat{}

	for _, s := range sessions {
		totalMinutes += s.Duration

		stat, ok := bySubject[s.Subject]
		if !ok {
			stat = &TodaySubjectStat{Subject: s.Subject, Sessions: []TodaySessionItem{}}
			bySubject[s.Subject] = stat
			order = append(order, s.Subject)
		}
		stat.TotalMinutes += s.Duration
		stat.SessionCount++
		stat.Sessions = append(stat.Sessions, TodaySessionItem{
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Duration:  s.Duration,
			Notes:     s.Notes,
		})
	}

	breakdown := make([]TodaySubjectStat, 0, len(order))
	for _, subject := range order {
		stat := bySubject[subject]
		stat.TotalHours = RoundHours(stat.TotalMinutes)
		breakdown = append(breakdown, *stat)
	}

	return TodaySummary{
		Date:             dayStart.Format(dateLayout),
		TotalMinutes:     totalMinutes,
		TotalHours:       RoundHours(totalMinutes),
		TotalSessions:    len(sessions),
		SubjectBreakdown: breakdown,
		RecentSessions:   lastReversed(sessions, 5),
	}
}

// BuildAnalytics reduces completed sessions of an analytics window into
// per-subject and aggregate totals.
func BuildAnalytics(sessions []models.StudySessionModel, period string) AnalyticsSummary {
	totalMinutes := 0
	order := []models.Subject{}
	bySubject := map[models.Subject]*SubjectStat{}

	for _, s := range sessions {
		totalMinutes += s.Duration

		stat, ok := bySubject[s.Subject]
		if !ok {
			stat = &SubjectStat{Subject: s.Subject}
			bySubject[s.Subject] = stat
			order = append(order, s.Subject)
		}
		stat.TotalMinutes += s.Duration
		stat.SessionCount++
	}

	breakdown := make([]SubjectStat, 0, len(order))
	for _, subject := range order {
		stat := bySubject[subject]
		stat.TotalHours = RoundHours(stat.TotalMinutes)
		breakdown = append(breakdown, *stat)
	}

	return AnalyticsSummary{
		Period:           period,
		TotalSessions:    len(sessions),
		TotalMinutes:     totalMinutes,
		TotalHours:       RoundHours(totalMinutes),
		SubjectBreakdown: breakdown,
	}
}

// BuildDailySummary groups completed sessions by the calendar date of their
// startTime, in the given location, most recent day first. Grouping and the
// rendered date key use the same location so a late-evening session never
// lands on the wrong day.
func BuildDailySummary(sessions []models.StudySessionModel, loc *time.Location) []DaySummary {
	if loc == nil {
		loc = time.Local
	}

	byDate := map[string]*DaySummary{}
	for _, s := range sessions {
		dateKey := s.StartTime.In(loc).Format(dateLayout)

		day, ok := byDate[dateKey]
		if !ok {
			day = &DaySummary{
				Date:     dateKey,
				Sessions: []DaySessionItem{},
				Subjects: map[models.Subject]int{},
			}
			byDate[dateKey] = day
		}

		day.TotalMinutes += s.Duration
		day.Sessions = append(day.Sessions, DaySessionItem{
			Subject:   s.Subject,
			Duration:  s.Duration,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
		})
		day.Subjects[s.Subject] += s.Duration
	}

	out := make([]DaySummary, 0, len(byDate))
	for _, day := range byDate {
		out = append(out, *day)
	}
	// ISO date keys sort lexicographically.
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}

// lastReversed returns the trailing n elements in reverse order, so the most
// recent session comes first.
func lastReversed(sessions []models.StudySessionModel, n int) []models.StudySessionModel {
	if len(sessions) > n {
		sessions = sessions[len(sessions)-n:]
	}
	out := make([]models.StudySessionModel, len(sessions))
	for i, s := range sessions {
		out[len(sessions)-1-i] = s
	}
	return out
}
