package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/routein/core/internal/models"
	sessionpkg "github.com/routein/core/internal/pkg/session"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type Service struct{ db *mongo.Database }

func NewService(db *mongo.Database) *Service { return &Service{db: db} }

func (s *Service) users() *mongo.Collection {
	return s.db.Collection(models.UserModel{}.CollectionName())
}

// Register creates an account and signs the user in immediately.
func (s *Service) Register(ctx context.Context, dto *RegisterDTO, ip, ua string) (*models.UserModel, string, error) {
	email := normalizeEmail(dto.Email)

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	u := models.UserModel{
		ID:        primitive.NewObjectID(),
		Name:      strings.TrimSpace(dto.Name),
		Email:     email,
		Password:  string(hash),
		CreatedAt: time.Now(),
	}
	if _, err := s.users().InsertOne(ctx, &u); err != nil {
		// The unique email index is the source of truth for duplicates.
		if mongo.IsDuplicateKeyError(err) {
			return nil, "", errUserExists
		}
		return nil, "", err
	}

	token, _, err := sessionpkg.Issue(ctx, s.db, u.ID, ip, ua, sessionpkg.DefaultTTL)
	if err != nil {
		return nil, "", err
	}
	return &u, token, nil
}

// Login verifies credentials and issues a fresh login session.
func (s *Service) Login(ctx context.Context, email, password, ip, ua string) (*models.UserModel, string, error) {
	var u models.UserModel
	err := s.users().FindOne(ctx, bson.M{"email": normalizeEmail(email)}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Burn comparable time so user enumeration via timing is harder.
			_ = bcrypt.CompareHashAndPassword([]byte("$2a$10$N9qo8uLOickgx2ZMRZoMye"), []byte(password))
			return nil, "", errInvalidLogin
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, "", errInvalidLogin
	}

	token, _, err := sessionpkg.Issue(ctx, s.db, u.ID, ip, ua, sessionpkg.DefaultTTL)
	if err != nil {
		return nil, "", err
	}
	return &u, token, nil
}

// Profile loads the account for the authenticated user.
func (s *Service) Profile(ctx context.Context, userID primitive.ObjectID) (*models.UserModel, error) {
	var u models.UserModel
	err := s.users().FindOne(ctx, bson.M{"_id": userID}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errAuthUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
