package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/00AR/blog-app/models"
	"github.com/00AR/blog-app/store"
	"github.com/00AR/blog-app/utils"
)

type UserService struct {
	store store.Store
}

func NewUserService(st store.Store) *UserService {
	return &UserService{store: st}
}

func (s *UserService) SignUp(ctx context.Context, name, email, password string) (*models.User, error) {
	n, err := s.store.Count(ctx, models.CollUsers, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, ErrUserExists
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		ID:       primitive.NewObjectID(),
		Name:     name,
		Email:    email,
		Password: hash,
	}
	err = s.store.InsertOne(ctx, models.CollUsers, user)
	if errors.Is(err, store.ErrDuplicateKey) {
		return nil, ErrUserExists
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the stored bcrypt hash. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	err := s.store.FindOne(ctx, models.CollUsers, bson.M{"email": email}, &user)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

func (s *UserService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := s.store.FindOne(ctx, models.CollUsers, bson.M{"_id": id}, &user)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
