package services

import (
	"context"
	"errors"

	"quiz-enroll-backend/internal/models"
	"quiz-enroll-backend/internal/store"
)

const quizzesCollection = "quizzes"

// recentQuizLimit caps the recent-quizzes listing; there is no pagination.
const recentQuizLimit = 10

var ErrQuizNotFound = errors.New("quiz not found")

type QuizService struct {
	store store.Store
}

func NewQuizService(s store.Store) *QuizService {
	return &QuizService{store: s}
}

// Create stores a new quiz. userCount always starts at 0 and createdOn is
// assigned by the store, whatever the request carried.
func (s *QuizService) Create(ctx context.Context, name, description string, active bool) (*models.Quiz, error) {
	fields := map[string]interface{}{
		"name":      name,
		"active":    active,
		"userCount": int64(0),
		"createdOn": store.ServerTimestamp,
	}
	if description != "" {
		fields["description"] = description
	}

	id, err := s.store.Add(ctx, quizzesCollection, fields)
	if err != nil {
		return nil, err
	}

	// Read back so the response carries the server-assigned timestamp.
	return s.Get(ctx, id)
}

func (s *QuizService) Get(ctx context.Context, quizID string) (*models.Quiz, error) {
	fields, err := s.store.Get(ctx, quizzesCollection, quizID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrQuizNotFound
	}
	if err != nil {
		return nil, err
	}
	return models.QuizFromDoc(quizID, fields), nil
}

// QuizUpdate carries the client-settable quiz fields. userCount and
// createdOn deliberately have no representation here, so a crafted payload
// cannot reach them no matter what the validation layer lets through.
type QuizUpdate struct {
	Name        *string
	Description *string
	Active      *bool
}

func (s *QuizService) PartialUpdate(ctx context.Context, quizID string, upd QuizUpdate) (*models.Quiz, error) {
	quiz, err := s.Get(ctx, quizID)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if upd.Name != nil {
		fields["name"] = *upd.Name
		quiz.Name = *upd.Name
	}
	if upd.Description != nil {
		fields["description"] = *upd.Description
		quiz.Description = *upd.Description
	}
	if upd.Active != nil {
		fields["active"] = *upd.Active
		quiz.Active = *upd.Active
	}
	if len(fields) == 0 {
		return quiz, nil
	}

	if err := s.store.Update(ctx, quizzesCollection, quizID, fields); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, err
	}
	return quiz, nil
}

func (s *QuizService) Delete(ctx context.Context, quizID string) (*models.Quiz, error) {
	quiz, err := s.Get(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if err := s.store.Delete(ctx, quizzesCollection, quizID); err != nil {
		return nil, err
	}
	return quiz, nil
}

// ListRecent returns the newest quizzes by createdOn, newest first.
func (s *QuizService) ListRecent(ctx context.Context) ([]*models.Quiz, error) {
	docs, err := s.store.Query(ctx, quizzesCollection, "createdOn", true, recentQuizLimit)
	if err != nil {
		return nil, err
	}

	quizzes := make([]*models.Quiz, 0, len(docs))
	for _, doc := range docs {
		quizzes = append(quizzes, models.QuizFromDoc(doc.ID, doc.Fields))
	}
	return quizzes, nil
}
