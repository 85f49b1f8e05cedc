package services

import (
	"context"
	"errors"

	"quiz-enroll-backend/internal/models"
	"quiz-enroll-backend/internal/store"
)

// ErrAlreadyEnrolled aborts the enrollment transaction without writing
// anything. It is a normal outcome at the API surface, not a failure.
var ErrAlreadyEnrolled = errors.New("quiz already added")

type EnrollmentService struct {
	store store.Store
}

func NewEnrollmentService(s store.Store) *EnrollmentService {
	return &EnrollmentService{store: s}
}

// Enroll adds the quiz to the user's quizIds and bumps the quiz's userCount,
// both inside one store transaction so they commit together. The user is
// checked before the quiz, so "user not found" wins when both ids are bad.
// A concurrent enrollment that commits first invalidates this transaction's
// reads and the store reruns it, so the counter never loses an increment.
func (s *EnrollmentService) Enroll(ctx context.Context, userID, quizID string) (*models.User, *models.Quiz, error) {
	var user *models.User
	var quiz *models.Quiz

	err := s.store.RunTransaction(ctx, func(tx store.Tx) error {
		userFields, err := tx.Get(usersCollection, userID)
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		if err != nil {
			return err
		}

		quizFields, err := tx.Get(quizzesCollection, quizID)
		if errors.Is(err, store.ErrNotFound) {
			return ErrQuizNotFound
		}
		if err != nil {
			return err
		}

		user = models.UserFromDoc(userID, userFields)
		quiz = models.QuizFromDoc(quizID, quizFields)

		if user.HasQuiz(quizID) {
			return ErrAlreadyEnrolled
		}

		user.QuizIDs = append(user.QuizIDs, quizID)
		quiz.UserCount++

		if err := tx.Update(usersCollection, userID, map[string]interface{}{"quizIds": user.QuizIDs}); err != nil {
			return err
		}
		return tx.Update(quizzesCollection, quizID, map[string]interface{}{"userCount": quiz.UserCount})
	})
	if err != nil {
		return nil, nil, err
	}
	return user, quiz, nil
}
