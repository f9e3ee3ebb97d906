package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/waqashussainziarana-ux/woogenius/internal/domain/entity"
	"github.com/waqashussainziarana-ux/woogenius/internal/domain/repository"
	"github.com/waqashussainziarana-ux/woogenius/internal/infrastructure/storage"
)

type fakeAIRepository struct {
	reply       string
	err         error
	seenHistory []entity.ChatMessage
	seenText    string
	calls       int
}

func (f *fakeAIRepository) SendMessage(ctx context.Context, history []entity.ChatMessage, userText string) (string, error) {
	f.calls++
	f.seenHistory = history
	f.seenText = userText
	return f.reply, f.err
}

func TestProcessMessageSavesBothSides(t *testing.T) {
	ctx := context.Background()
	ai := &fakeAIRepository{reply: "We have 12 in stock."}
	chatRepo := storage.NewMemoryChatRepository(0)
	uc := NewChatUseCase(ai, chatRepo, 10)

	reply, err := uc.ProcessMessage(ctx, "session-1", "Is the ProBook in stock?")
	require.NoError(t, err)
	assert.Equal(t, "We have 12 in stock.", reply)
	assert.Equal(t, "Is the ProBook in stock?", ai.seenText)
	assert.Empty(t, ai.seenHistory, "first turn has no prior history")

	history, err := uc.GetHistory(ctx, "session-1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, entity.RoleUser, history[0].Role)
	assert.Equal(t, entity.RoleModel, history[1].Role)
	assert.NotEmpty(t, history[0].ID)
}

func TestProcessMessagePassesPriorHistory(t *testing.T) {
	ctx := context.Background()
	ai := &fakeAIRepository{reply: "ok"}
	chatRepo := storage.NewMemoryChatRepository(0)
	uc := NewChatUseCase(ai, chatRepo, 10)

	_, err := uc.ProcessMessage(ctx, "session-1", "first")
	require.NoError(t, err)
	_, err = uc.ProcessMessage(ctx, "session-1", "second")
	require.NoError(t, err)

	require.Len(t, ai.seenHistory, 2, "prior turn only, new text goes separately")
	assert.Equal(t, "first", ai.seenHistory[0].Content)
	assert.Equal(t, "second", ai.seenText)
}

func TestProcessMessageFailureReplies(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "missing credential", err: repository.ErrAINotConfigured, expected: replyNotConfigured},
		{name: "rate limited after retries", err: repository.ErrAIRateLimited, expected: replyRateLimited},
		{name: "generic failure", err: errors.New("boom"), expected: replyGenericError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			ai := &fakeAIRepository{err: tc.err}
			uc := NewChatUseCase(ai, storage.NewMemoryChatRepository(0), 10)

			reply, err := uc.ProcessMessage(ctx, "session-1", "hello")
			require.NoError(t, err, "remote failures convert to user-facing text")
			assert.Equal(t, tc.expected, reply)
		})
	}
}

func TestProcessMessageWrappedSentinels(t *testing.T) {
	ctx := context.Background()
	ai := &fakeAIRepository{err: errors.Join(errors.New("transport"), repository.ErrAIRateLimited)}
	uc := NewChatUseCase(ai, storage.NewMemoryChatRepository(0), 10)

	reply, err := uc.ProcessMessage(ctx, "session-1", "hello")
	require.NoError(t, err)
	assert.Equal(t, replyRateLimited, reply)
}

func TestClearHistory(t *testing.T) {
	ctx := context.Background()
	ai := &fakeAIRepository{reply: "ok"}
	uc := NewChatUseCase(ai, storage.NewMemoryChatRepository(0), 10)

	_, err := uc.ProcessMessage(ctx, "session-1", "hello")
	require.NoError(t, err)
	require.NoError(t, uc.ClearHistory(ctx, "session-1"))

	history, err := uc.GetHistory(ctx, "session-1")
	require.NoError(t, err)
	assert.Empty(t, history)
}
