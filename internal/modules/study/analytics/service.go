package analytics

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/routein/core/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrBadDateRange marks an unparseable startDate/endDate query value.
var ErrBadDateRange = errors.New("invalid date range")

type Service struct {
	db  *mongo.Database
	loc *time.Location
}

// NewService creates the analytics service. loc is the time zone used for
// calendar-day boundaries; nil means the server's local zone.
func NewService(db *mongo.Database, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{db: db, loc: loc}
}

func (s *Service) sessions() *mongo.Collection {
	return s.db.Collection(models.StudySessionModel{}.CollectionName())
}

// Today aggregates completed sessions of the current calendar day.
func (s *Service) Today(ctx context.Context, userID primitive.ObjectID) (TodaySummary, error) {
	dayStart := StartOfDay(time.Now(), s.loc)

	sessions, err := s.findCompleted(ctx, bson.M{
		"user":    userID,
		"endTime": bson.M{"$ne": nil},
		"startTime": bson.M{
			"$gte": dayStart,
			"$lt":  dayStart.AddDate(0, 0, 1),
		},
	})
	if err != nil {
		return TodaySummary{}, err
	}
	return BuildTodaySummary(sessions, dayStart), nil
}

// Analytics aggregates completed sessions since the period's window start.
// The upper edge is unbounded. Unknown periods fall back to week semantics.
func (s *Service) Analytics(ctx context.Context, userID primitive.ObjectID, period string) (AnalyticsSummary, error) {
	period = strings.TrimSpace(period)
	if period == "" {
		period = "week"
	}
	windowStart := PeriodStart(period, time.Now(), s.loc)

	sessions, err := s.findCompleted(ctx, bson.M{
		"user":      userID,
		"endTime":   bson.M{"$ne": nil},
		"startTime": bson.M{"$gte": windowStart},
	})
	if err != nil {
		return AnalyticsSummary{}, err
	}
	return BuildAnalytics(sessions, period), nil
}

// DailySummary aggregates completed sessions per calendar day. Bounds
// default to the last 30 days through now.
func (s *Service) DailySummary(ctx context.Context, userID primitive.ObjectID, filter DailySummaryFilter) ([]DaySummary, error) {
	now := time.Now()

	start := now.Add(-30 * 24 * time.Hour)
	if raw := strings.TrimSpace(filter.StartDate); raw != "" {
		parsed, err := time.ParseInLocation(dateLayout, raw, s.loc)
		if err != nil {
			return nil, fmt.Errorf("%w: startDate %q, expected YYYY-MM-DD", ErrBadDateRange, raw)
		}
		start = parsed
	}

	end := now
	if raw := strings.TrimSpace(filter.EndDate); raw != "" {
		parsed, err := time.ParseInLocation(dateLayout, raw, s.loc)
		if err != nil {
			return nil, fmt.Errorf("%w: endDate %q, expected YYYY-MM-DD", ErrBadDateRange, raw)
		}
		end = parsed
	}

	sessions, err := s.findCompleted(ctx, bson.M{
		"user":      userID,
		"endTime":   bson.M{"$ne": nil},
		"startTime": bson.M{"$gte": start, "$lte": end},
	})
	if err != nil {
		return nil, err
	}
	return BuildDailySummary(sessions, s.loc), nil
}

func (s *Service) findCompleted(ctx context.Context, query bson.M) ([]models.StudySessionModel, error) {
	cur, err := s.sessions().Find(ctx, query,
		options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}}))
	if err != nil {
		return nil, err
	}
	sessions := []models.StudySessionModel{}
	if err := cur.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// StartOfDay truncates t to midnight in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// PeriodStart maps an analytics period keyword to its window start: today is
// calendar-aligned, week and month are rolling windows of 7 and 30 days.
func PeriodStart(period string, now time.Time, loc *time.Location) time.Time {
	switch period {
	case "today":
		return StartOfDay(now, loc)
	case "month":
		return now.AddDate(0, 0, -30)
	case "week":
		return now.AddDate(0, 0, -7)
	default:
		return now.AddDate(0, 0, -7)
	}
}
