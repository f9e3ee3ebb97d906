package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/waqashussainziarana-ux/woogenius/internal/domain/entity"
)

func chatMessage(session, role, content string, ts time.Time) entity.ChatMessage {
	return entity.ChatMessage{
		ID:        uuid.New().String(),
		SessionID: session,
		Role:      role,
		Content:   content,
		Timestamp: ts,
	}
}

func TestSQLiteChatRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, err := NewSQLiteChatRepository(filepath.Join(t.TempDir(), "chat.db"), 0)
	require.NoError(t, err)

	base := time.Now().Truncate(time.Second)
	require.NoError(t, repo.SaveMessage(ctx, chatMessage("s1", entity.RoleUser, "hello", base)))
	require.NoError(t, repo.SaveMessage(ctx, chatMessage("s1", entity.RoleModel, "hi there", base.Add(time.Second))))
	require.NoError(t, repo.SaveMessage(ctx, chatMessage("s2", entity.RoleUser, "other session", base)))

	history, err := repo.GetHistory(ctx, "s1", 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "hello", history[0].Content)
	assert.Equal(t, entity.RoleModel, history[1].Role)

	history, err = repo.GetHistory(ctx, "s1", 1)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "hi there", history[0].Content, "limit keeps the most recent messages")
}

func TestSQLiteChatTrimsToMaxSize(t *testing.T) {
	ctx := context.Background()
	repo, err := NewSQLiteChatRepository(filepath.Join(t.TempDir(), "chat.db"), 3)
	require.NoError(t, err)

	base := time.Now().Truncate(time.Second)
	for i, content := range []string{"one", "two", "three", "four", "five"} {
		msg := chatMessage("s1", entity.RoleUser, content, base.Add(time.Duration(i)*time.Second))
		require.NoError(t, repo.SaveMessage(ctx, msg))
	}

	history, err := repo.GetHistory(ctx, "s1", 0)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "three", history[0].Content)
	assert.Equal(t, "five", history[2].Content)
}

func TestSQLiteChatClearHistory(t *testing.T) {
	ctx := context.Background()
	repo, err := NewSQLiteChatRepository(filepath.Join(t.TempDir(), "chat.db"), 0)
	require.NoError(t, err)

	base := time.Now()
	require.NoError(t, repo.SaveMessage(ctx, chatMessage("s1", entity.RoleUser, "hello", base)))
	require.NoError(t, repo.SaveMessage(ctx, chatMessage("s2", entity.RoleUser, "keep me", base)))

	require.NoError(t, repo.ClearHistory(ctx, "s1"))

	history, err := repo.GetHistory(ctx, "s1", 0)
	require.NoError(t, err)
	assert.Empty(t, history)

	history, err = repo.GetHistory(ctx, "s2", 0)
	require.NoError(t, err)
	assert.Len(t, history, 1, "other sessions untouched")
}
