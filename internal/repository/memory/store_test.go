package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobready-backend/internal/domain"
	"jobready-backend/internal/repository/memory"
)

func TestCVRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().CVs()

	cv := &domain.CV{UserID: "u1", Title: "My CV", FullName: "Jane Doe", Skills: []string{"Go", "SQL"}}
	require.NoError(t, repo.Create(ctx, cv))
	assert.Equal(t, int64(1), cv.ID)

	got, err := repo.GetByID(ctx, cv.ID)
	require.NoError(t, err)
	assert.Nil(t, got.GeneratedHTML)

	got.Skills[0] = "mutated"
	again, _ := repo.GetByID(ctx, cv.ID)
	assert.Equal(t, "Go", again.Skills[0])

	updated, err := repo.UpdateHTML(ctx, cv.ID, "<html></html>")
	require.NoError(t, err)
	require.NotNil(t, updated.GeneratedHTML)
	assert.Equal(t, "<html></html>", *updated.GeneratedHTML)

	_, err = repo.GetByID(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = repo.UpdateHTML(ctx, 99, "x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListByUserNewestFirst(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	store := memory.NewStore().WithClock(func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	})
	repo := store.Interviews()

	for _, owner := range []string{"a", "b", "a"} {
		require.NoError(t, repo.Create(ctx, &domain.InterviewSession{UserID: owner, JobTitle: "Dev"}))
	}

	list, err := repo.ListByUser(ctx, "a")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(3), list[0].ID)
	assert.Equal(t, int64(1), list[1].ID)

	empty, err := repo.ListByUser(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestInterviewUpdateChecksVersion(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Interviews()

	session := &domain.InterviewSession{UserID: "u1", JobTitle: "Dev", Questions: []domain.Question{{Question: "Q1"}}}
	require.NoError(t, repo.Create(ctx, session))
	assert.Equal(t, 1, session.Version)

	first, _ := repo.GetByID(ctx, session.ID)
	second, _ := repo.GetByID(ctx, session.ID)

	require.NoError(t, first.RecordAnswer(0, "a", &domain.AnswerFeedback{Score: 7, Feedback: "ok"}))
	require.NoError(t, repo.Update(ctx, first))
	assert.Equal(t, 2, first.Version)

	require.NoError(t, second.RecordAnswer(0, "b", &domain.AnswerFeedback{Score: 3, Feedback: "meh"}))
	assert.ErrorIs(t, repo.Update(ctx, second), domain.ErrVersionConflict)

	stored, _ := repo.GetByID(ctx, session.ID)
	assert.True(t, stored.Completed)
	assert.Equal(t, "a", *stored.Questions[0].Answer)

	assert.ErrorIs(t, repo.Update(ctx, &domain.InterviewSession{ID: 42}), domain.ErrNotFound)
}

func TestChatAppendIsAtomic(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Chats()

	session := &domain.ChatSession{UserID: "u1", Title: domain.DefaultChatTitle}
	require.NoError(t, repo.Create(ctx, session))
	assert.NotNil(t, session.Messages)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.AppendMessages(ctx, session.ID,
				domain.Message{Role: domain.RoleUser, Content: "q"},
				domain.Message{Role: domain.RoleAssistant, Content: "a"},
			)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := repo.GetByID(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, got.Messages, 40)
	for i := 0; i < len(got.Messages); i += 2 {
		assert.Equal(t, domain.RoleUser, got.Messages[i].Role)
		assert.Equal(t, domain.RoleAssistant, got.Messages[i+1].Role)
	}

	_, err = repo.AppendMessages(ctx, 7, domain.Message{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserUpsertKeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	repo := memory.NewStore().WithClock(func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Hour)
	}).Users()

	require.NoError(t, repo.Upsert(ctx, &domain.User{ID: "u1", Email: "a@b.c"}))
	require.NoError(t, repo.Upsert(ctx, &domain.User{ID: "u1", Email: "new@b.c"}))

	got, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "new@b.c", got.Email)
	assert.Equal(t, base.Add(time.Hour), got.CreatedAt)
	assert.Equal(t, base.Add(2*time.Hour), got.UpdatedAt)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
