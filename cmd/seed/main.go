package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/routein/core/internal/config"
	"github.com/routein/core/internal/database"
	"github.com/routein/core/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	seedEmail    = "john@example.com"
	seedPassword = "password123"
)

// Demo notes keyed by broad topic area.
var seedNotes = map[models.Subject][]string{
	models.SubjectAWS:          {"EC2 Instances", "S3 Storage", "VPC Networking", "IAM Policies"},
	models.SubjectSystemDesign: {"Load Balancing", "Caching", "Microservices", "Databases"},
	models.SubjectDSA:          {"Arrays", "Trees", "Graphs", "Dynamic Programming"},
	models.SubjectDocker:       {"Containers", "Images", "Compose", "Kubernetes"},
}

func main() {
	configPath := flag.String("config", config.DefaultConfigPath, "Path to YAML config file")
	days := flag.Int("days", 30, "Number of past days to generate sessions for")
	flag.Parse()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Disconnect(context.Background(), db)

	logger.Info("clearing existing data")
	for _, coll := range []string{
		models.UserModel{}.CollectionName(),
		models.StudySessionModel{}.CollectionName(),
		models.UserSession{}.CollectionName(),
	} {
		if _, err := db.Collection(coll).DeleteMany(ctx, bson.M{}); err != nil {
			logger.Fatal("failed to clear collection", zap.String("collection", coll), zap.Error(err))
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Fatal("failed to hash password", zap.Error(err))
	}

	user := models.UserModel{
		ID:        primitive.NewObjectID(),
		Name:      "John Doe",
		Email:     seedEmail,
		Password:  string(hashed),
		CreatedAt: time.Now(),
	}
	if _, err := db.Collection(user.CollectionName()).InsertOne(ctx, user); err != nil {
		logger.Fatal("failed to create user", zap.Error(err))
	}

	sessions := generateSessions(user.ID, *days)
	if len(sessions) > 0 {
		docs := make([]interface{}, len(sessions))
		for i, s := range sessions {
			docs[i] = s
		}
		coll := models.StudySessionModel{}.CollectionName()
		if _, err := db.Collection(coll).InsertMany(ctx, docs); err != nil {
			logger.Fatal("failed to insert study sessions", zap.Error(err))
		}
	}

	logger.Info("database seeded",
		zap.String("email", user.Email),
		zap.String("password", seedPassword),
		zap.Int("sessions", len(sessions)))
}

// generateSessions produces 0-3 completed sessions per day for the given
// number of past days, 30-150 minutes each.
func generateSessions(userID primitive.ObjectID, days int) []models.StudySessionModel {
	subjects := models.Subjects()
	sessions := make([]models.StudySessionModel, 0, days*2)
	now := time.Now()

	for i := 0; i < days; i++ {
		day := now.AddDate(0, 0, -i)
		perDay := rand.Intn(4)

		for j := 0; j < perDay; j++ {
			subject := subjects[rand.Intn(len(subjects))]
			minutes := rand.Intn(121) + 30
			start := time.Date(day.Year(), day.Month(), day.Day(), 8+rand.Intn(12), rand.Intn(60), 0, 0, time.Local)
			end := start.Add(time.Duration(minutes) * time.Minute)

			session := models.StudySessionModel{
				ID:        primitive.NewObjectID(),
				User:      userID,
				Subject:   subject,
				StartTime: start,
				IsActive:  true,
				CreatedAt: start,
			}
			session.Complete(end, seedNote(subject))
			sessions = append(sessions, session)
		}
	}
	return sessions
}

func seedNote(subject models.Subject) string {
	topics, ok := seedNotes[subject]
	if !ok {
		// Revision subjects reuse the base subject's topics.
		for base, list := range seedNotes {
			if string(subject) == string(base)+" Revision" {
				topics = list
				break
			}
		}
	}
	if len(topics) == 0 {
		return fmt.Sprintf("Productive session covering %s concepts.", subject)
	}
	topic := topics[rand.Intn(len(topics))]
	return fmt.Sprintf("Covered %s. Made good progress.", topic)
}
