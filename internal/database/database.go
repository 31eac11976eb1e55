package database

import (
	"context"
	"fmt"
	"time"

	"github.com/routein/core/internal/config"
	"github.com/routein/core/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DB is the global database handle.
var DB *mongo.Database

// Connect opens a MongoDB connection, verifies it with a ping and ensures
// the indexes the application relies on.
func Connect(ctx context.Context, cfg *config.AppConfig) (*mongo.Database, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	db := client.Database(cfg.Mongo.Name)
	if err := EnsureIndexes(connectCtx, db); err != nil {
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}

	DB = db
	return db, nil
}

// Disconnect closes the underlying client connection.
func Disconnect(ctx context.Context, db *mongo.Database) error {
	if db == nil {
		return nil
	}
	return db.Client().Disconnect(ctx)
}

// EnsureIndexes creates the collection indexes. The partial unique index on
// studysessions is what enforces at most one active session per user; the
// application relies on duplicate-key errors from it rather than on a
// read-then-write check.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	users := db.Collection(models.UserModel{}.CollectionName())
	if _, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("users email index: %w", err)
	}

	sessions := db.Collection(models.StudySessionModel{}.CollectionName())
	if _, err := sessions.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "user", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.D{{Key: "isActive", Value: true}}).
				SetName("one_active_session_per_user"),
		},
		{
			Keys: bson.D{{Key: "user", Value: 1}, {Key: "startTime", Value: -1}},
		},
	}); err != nil {
		return fmt.Errorf("studysessions indexes: %w", err)
	}

	userSessions := db.Collection(models.UserSession{}.CollectionName())
	if _, err := userSessions.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "user", Value: 1}, {Key: "revokedAt", Value: 1}},
		},
		{
			Keys:    bson.D{{Key: "expiresAt", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0),
		},
	}); err != nil {
		return fmt.Errorf("usersessions indexes: %w", err)
	}

	return nil
}
