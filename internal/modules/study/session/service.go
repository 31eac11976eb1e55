package session

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/routein/core/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Service struct{ db *mongo.Database }

func NewService(db *mongo.Database) *Service { return &Service{db: db} }

func (s *Service) sessions() *mongo.Collection {
	return s.db.Collection(models.StudySessionModel{}.CollectionName())
}

// Start opens a new study session. The partial unique index on
// {user, isActive: true} makes concurrent starts race-safe: the insert is
// attempted unconditionally and a duplicate-key error means another session
// is already running.
func (s *Service) Start(ctx context.Context, userID primitive.ObjectID, subject string) (*models.StudySessionModel, error) {
	sub := models.Subject(strings.TrimSpace(subject))
	if !sub.IsValid() {
		return nil, errInvalidSubject
	}

	now := time.Now()
	doc := models.StudySessionModel{
		ID:        primitive.NewObjectID(),
		User:      userID,
		Subject:   sub,
		StartTime: now,
		IsActive:  true,
		CreatedAt: now,
	}
	if _, err := s.sessions().InsertOne(ctx, &doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, errActiveExists
		}
		return nil, err
	}
	return &doc, nil
}

// End completes the user's session. The update filter re-checks isActive so a
// concurrent End of the same session cannot complete it twice.
func (s *Service) End(ctx context.Context, userID primitive.ObjectID, sessionID, notes string) (*models.StudySessionModel, error) {
	sid, err := primitive.ObjectIDFromHex(strings.TrimSpace(sessionID))
	if err != nil {
		return nil, errNoActiveToFinish
	}

	filter := bson.M{"_id": sid, "user": userID, "isActive": true}

	var doc models.StudySessionModel
	if err := s.sessions().FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errNoActiveToFinish
		}
		return nil, err
	}

	doc.Complete(time.Now(), notes)

	res, err := s.sessions().UpdateOne(ctx, filter, bson.M{"$set": bson.M{
		"endTime":  doc.EndTime,
		"duration": doc.Duration,
		"isActive": false,
		"notes":    doc.Notes,
	}})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, errNoActiveToFinish
	}
	return &doc, nil
}

// Active returns the user's running session, or nil when there is none.
func (s *Service) Active(ctx context.Context, userID primitive.ObjectID) (*models.StudySessionModel, error) {
	var doc models.StudySessionModel
	err := s.sessions().FindOne(ctx, bson.M{"user": userID, "isActive": true}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &doc, nil
}

// List returns the user's sessions ordered by startTime descending,
// optionally filtered to one calendar day and/or one subject.
func (s *Service) List(ctx context.Context, userID primitive.ObjectID, filter ListFilter) ([]models.StudySessionModel, error) {
	query := bson.M{"user": userID}

	if date := strings.TrimSpace(filter.Date); date != "" {
		dayStart, err := time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			return nil, errInvalidDateFilter(date)
		}
		query["startTime"] = bson.M{
			"$gte": dayStart,
			"$lt":  dayStart.AddDate(0, 0, 1),
		}
	}
	if subject := strings.TrimSpace(filter.Subject); subject != "" {
		query["subject"] = subject
	}

	cur, err := s.sessions().Find(ctx, query,
		options.Find().SetSort(bson.D{{Key: "startTime", Value: -1}}))
	if err != nil {
		return nil, err
	}
	sessions := []models.StudySessionModel{}
	if err := cur.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// Delete hard-deletes a session owned by the user. Deleting an active
// session is permitted and simply clears the in-progress state.
func (s *Service) Delete(ctx context.Context, userID primitive.ObjectID, sessionID string) error {
	sid, err := primitive.ObjectIDFromHex(strings.TrimSpace(sessionID))
	if err != nil {
		return errSessionNotFound
	}

	res, err := s.sessions().DeleteOne(ctx, bson.M{"_id": sid, "user": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errSessionNotFound
	}
	return nil
}
