package services

import (
	"context"
	"errors"

	"quiz-enroll-backend/internal/models"
	"quiz-enroll-backend/internal/store"
)

const usersCollection = "users"

var ErrUserNotFound = errors.New("user not found")

type UserService struct {
	store store.Store
}

func NewUserService(s store.Store) *UserService {
	return &UserService{store: s}
}

func (s *UserService) Create(ctx context.Context, name string) (*models.User, error) {
	id, err := s.store.Add(ctx, usersCollection, map[string]interface{}{
		"name":    name,
		"quizIds": []string{},
	})
	if err != nil {
		return nil, err
	}
	return &models.User{ID: id, Name: name, QuizIDs: []string{}}, nil
}

func (s *UserService) Get(ctx context.Context, userID string) (*models.User, error) {
	fields, err := s.store.Get(ctx, usersCollection, userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return models.UserFromDoc(userID, fields), nil
}

// Delete returns the pre-deletion snapshot. The exists-check and the delete
// are two store calls; losing the race just makes the delete a no-op, the
// caller still gets the snapshot it observed.
func (s *UserService) Delete(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.store.Delete(ctx, usersCollection, userID); err != nil {
		return nil, err
	}
	return user, nil
}
