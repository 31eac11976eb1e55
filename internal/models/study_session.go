package models

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StudySessionModel is a single timed interval of study on one subject.
// Field names follow the original Mongoose schema and are part of the wire
// contract: startTime, endTime, duration, isActive, notes.
type StudySessionModel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"     json:"id"`
	User      primitive.ObjectID `bson:"user"              json:"user"`
	Subject   Subject            `bson:"subject"           json:"subject"`
	StartTime time.Time          `bson:"startTime"         json:"startTime"`
	EndTime   *time.Time         `bson:"endTime"           json:"endTime"`
	Duration  int                `bson:"duration"          json:"duration"` // minutes
	IsActive  bool               `bson:"isActive"          json:"isActive"`
	Notes     string             `bson:"notes"             json:"notes"`
	CreatedAt time.Time          `bson:"createdAt"         json:"createdAt"`
}

func (StudySessionModel) CollectionName() string { return "studysessions" }

// Complete transitions the session to its terminal completed state: endTime is
// set, duration derived and isActive cleared. A completed session is never
// mutated again except by deletion.
func (s *StudySessionModel) Complete(endTime time.Time, notes string) {
	s.EndTime = &endTime
	s.Duration = DurationMinutes(s.StartTime, endTime)
	s.IsActive = false
	s.Notes = notes
}

// DurationMinutes derives the stored duration: round((end-start)/1m).
// A 90 second session rounds up to 2 minutes.
func DurationMinutes(start, end time.Time) int {
	return int(math.Round(end.Sub(start).Minutes()))
}
