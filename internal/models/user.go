package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserModel represents a registered account.
type UserModel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name"          json:"name"`
	Email     string             `bson:"email"         json:"email"`
	Password  string             `bson:"password"      json:"-"`
	CreatedAt time.Time          `bson:"createdAt"     json:"createdAt"`
}

func (UserModel) CollectionName() string { return "users" }
