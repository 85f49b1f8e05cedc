package services

import (
	"context"
	"fmt"
	"testing"

	"quiz-enroll-backend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestQuizService_CreateDefaults(t *testing.T) {
	svc := NewQuizService(store.NewMemory())

	quiz, err := svc.Create(context.Background(), "Quiz 1", "", false)
	require.NoError(t, err)
	assert.NotEmpty(t, quiz.ID)
	assert.Equal(t, "Quiz 1", quiz.Name)
	assert.Empty(t, quiz.Description)
	assert.False(t, quiz.Active)
	assert.Equal(t, int64(0), quiz.UserCount)
	assert.False(t, quiz.CreatedOn.IsZero(), "createdOn is assigned by the store")
}

func TestQuizService_CreateWithAllFields(t *testing.T) {
	svc := NewQuizService(store.NewMemory())

	quiz, err := svc.Create(context.Background(), "Quiz 2", "a description", true)
	require.NoError(t, err)
	assert.Equal(t, "a description", quiz.Description)
	assert.True(t, quiz.Active)
	assert.Equal(t, int64(0), quiz.UserCount)
}

func TestQuizService_GetNotFound(t *testing.T) {
	svc := NewQuizService(store.NewMemory())

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrQuizNotFound)
}

func TestQuizService_PartialUpdate(t *testing.T) {
	mem := store.NewMemory()
	svc := NewQuizService(mem)
	ctx := context.Background()

	created, err := svc.Create(ctx, "Quiz 2", "d", false)
	require.NoError(t, err)

	// Pretend three users already enrolled.
	require.NoError(t, mem.Update(ctx, "quizzes", created.ID, map[string]interface{}{"userCount": int64(3)}))

	updated, err := svc.PartialUpdate(ctx, created.ID, QuizUpdate{Active: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, updated.Active)
	assert.Equal(t, "Quiz 2", updated.Name)
	assert.Equal(t, "d", updated.Description)
	assert.Equal(t, int64(3), updated.UserCount)
	assert.Equal(t, created.CreatedOn, updated.CreatedOn)

	// Stored state matches the merged view.
	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestQuizService_PartialUpdateAllFields(t *testing.T) {
	svc := NewQuizService(store.NewMemory())
	ctx := context.Background()

	created, err := svc.Create(ctx, "Quiz 1", "", false)
	require.NoError(t, err)

	updated, err := svc.PartialUpdate(ctx, created.ID, QuizUpdate{
		Name:        strPtr("Renamed"),
		Description: strPtr("new description"),
		Active:      boolPtr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "new description", updated.Description)
	assert.True(t, updated.Active)
}

func TestQuizService_PartialUpdateNoFields(t *testing.T) {
	svc := NewQuizService(store.NewMemory())
	ctx := context.Background()

	created, err := svc.Create(ctx, "Quiz 1", "", false)
	require.NoError(t, err)

	updated, err := svc.PartialUpdate(ctx, created.ID, QuizUpdate{})
	require.NoError(t, err)
	assert.Equal(t, created, updated)
}

func TestQuizService_PartialUpdateNotFound(t *testing.T) {
	svc := NewQuizService(store.NewMemory())

	_, err := svc.PartialUpdate(context.Background(), "missing", QuizUpdate{Active: boolPtr(true)})
	assert.ErrorIs(t, err, ErrQuizNotFound)
}

func TestQuizService_Delete(t *testing.T) {
	svc := NewQuizService(store.NewMemory())
	ctx := context.Background()

	created, err := svc.Create(ctx, "Quiz 1", "", false)
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, deleted)

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrQuizNotFound)
}

func TestQuizService_DeleteNotFound(t *testing.T) {
	svc := NewQuizService(store.NewMemory())

	_, err := svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrQuizNotFound)
}

func TestQuizService_ListRecent(t *testing.T) {
	svc := NewQuizService(store.NewMemory())
	ctx := context.Background()

	var names []string
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf("Quiz %d", i)
		_, err := svc.Create(ctx, name, "", false)
		require.NoError(t, err)
		names = append(names, name)
	}

	quizzes, err := svc.ListRecent(ctx)
	require.NoError(t, err)
	require.Len(t, quizzes, 10)

	// Newest first, oldest two cut off.
	for i, quiz := range quizzes {
		assert.Equal(t, names[11-i], quiz.Name)
	}
	for i := 1; i < len(quizzes); i++ {
		assert.True(t, quizzes[i-1].CreatedOn.After(quizzes[i].CreatedOn))
	}
}

func TestQuizService_ListRecentEmpty(t *testing.T) {
	svc := NewQuizService(store.NewMemory())

	quizzes, err := svc.ListRecent(context.Background())
	require.NoError(t, err)
	assert.Empty(t, quizzes)
}
