package services

import (
	"context"
	"errors"

	"radarcontacts/internal/auth"
	"radarcontacts/internal/models"
	"radarcontacts/internal/repositories"
	"radarcontacts/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type userService struct {
	repo      repositories.UserRepository
	jwtSecret string
}

func NewUserService(repo repositories.UserRepository, jwtSecret string) UserService {
	return &userService{
		repo:      repo,
		jwtSecret: jwtSecret,
	}
}

func (s *userService) Register(ctx context.Context, user *models.User) (*auth.TokenDetails, error) {
	existing, err := s.repo.FindByEmail(ctx, user.Email)
	if err != nil && err != mongo.ErrNoDocuments {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.ID = primitive.NewObjectID()
	user.Password = string(hashed)

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	logger.GlobalLogger.Printf("Registered new user: %s", user.Email)

	return auth.GenerateJWT(user.ID.Hex(), user.FullName, user.Email, s.jwtSecret)
}

func (s *userService) Login(ctx context.Context, email, password string) (*auth.TokenDetails, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return auth.GenerateJWT(user.ID.Hex(), user.FullName, user.Email, s.jwtSecret)
}
