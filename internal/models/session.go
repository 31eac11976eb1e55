package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserSession is a revocable login session backing a JWT. It gives issued
// tokens an explicit server-side lifecycle: created at login, touched on use,
// revoked at logout or expiry.
type UserSession struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User      primitive.ObjectID `bson:"user"          json:"user"`
	IP        string             `bson:"ip"            json:"ip"`
	UA        string             `bson:"ua"            json:"ua"`
	ExpiresAt time.Time          `bson:"expiresAt"     json:"expiresAt"`
	RevokedAt *time.Time         `bson:"revokedAt"     json:"revokedAt,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"     json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"     json:"updatedAt"`
}

func (UserSession) CollectionName() string { return "usersessions" }
