package session

import (
	"context"
	"strings"
	"time"

	"github.com/routein/core/internal/models"
	jwtpkg "github.com/routein/core/internal/pkg/jwt"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const DefaultTTL = 30 * 24 * time.Hour

func collection(db *mongo.Database) *mongo.Collection {
	return db.Collection(models.UserSession{}.CollectionName())
}

// Issue creates a login session document and signs a JWT bound to it.
func Issue(ctx context.Context, db *mongo.Database, userID primitive.ObjectID, ip, ua string, ttl time.Duration) (string, *models.UserSession, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	now := time.Now()
	s := &models.UserSession{
		ID:        primitive.NewObjectID(),
		User:      userID,
		IP:        strings.TrimSpace(ip),
		UA:        strings.TrimSpace(ua),
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := collection(db).InsertOne(ctx, s); err != nil {
		return "", nil, err
	}

	token, err := jwtpkg.Sign(userID.Hex(), s.ID.Hex(), ttl)
	if err != nil {
		_, _ = collection(db).DeleteOne(ctx, bson.M{"_id": s.ID})
		return "", nil, err
	}
	return token, s, nil
}

// IsActive reports whether the session backing a token is still usable.
// Tokens without a sid claim are accepted for backward compatibility.
func IsActive(ctx context.Context, db *mongo.Database, userID primitive.ObjectID, sessionID string) (bool, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return true, nil
	}
	sid, err := primitive.ObjectIDFromHex(sessionID)
	if err != nil {
		return false, nil
	}

	count, err := collection(db).CountDocuments(ctx, activeFilter(sid, userID))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Touch bumps updatedAt so recently used sessions sort first. Best effort.
func Touch(ctx context.Context, db *mongo.Database, userID primitive.ObjectID, sessionID string) {
	sid, err := primitive.ObjectIDFromHex(strings.TrimSpace(sessionID))
	if err != nil {
		return
	}
	_, _ = collection(db).UpdateOne(ctx, activeFilter(sid, userID),
		bson.M{"$set": bson.M{"updatedAt": time.Now()}})
}

// ListActive returns the user's live sessions, most recently used first.
func ListActive(ctx context.Context, db *mongo.Database, userID primitive.ObjectID) ([]models.UserSession, error) {
	cur, err := collection(db).Find(ctx, bson.M{
		"user":      userID,
		"revokedAt": nil,
		"expiresAt": bson.M{"$gt": time.Now()},
	}, options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}, {Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	sessions := []models.UserSession{}
	if err := cur.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// Revoke marks one session revoked. Returns mongo.ErrNoDocuments when the
// session does not exist or is already revoked.
func Revoke(ctx context.Context, db *mongo.Database, userID primitive.ObjectID, sessionID string) error {
	sid, err := primitive.ObjectIDFromHex(strings.TrimSpace(sessionID))
	if err != nil {
		return mongo.ErrNoDocuments
	}

	now := time.Now()
	res, err := collection(db).UpdateOne(ctx,
		bson.M{"_id": sid, "user": userID, "revokedAt": nil},
		bson.M{"$set": bson.M{"revokedAt": &now, "updatedAt": now}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// RevokeAllExcept revokes every live session of the user except one,
// typically the session performing the request.
func RevokeAllExcept(ctx context.Context, db *mongo.Database, userID primitive.ObjectID, keepSessionID string) error {
	now := time.Now()
	filter := bson.M{"user": userID, "revokedAt": nil}
	if keep, err := primitive.ObjectIDFromHex(strings.TrimSpace(keepSessionID)); err == nil {
		filter["_id"] = bson.M{"$ne": keep}
	}
	_, err := collection(db).UpdateMany(ctx, filter,
		bson.M{"$set": bson.M{"revokedAt": &now, "updatedAt": now}})
	return err
}

func activeFilter(sid, userID primitive.ObjectID) bson.M {
	return bson.M{
		"_id":       sid,
		"user":      userID,
		"revokedAt": nil,
		"expiresAt": bson.M{"$gt": time.Now()},
	}
}
