package storage

import (
	"context"
	"sync"

	"github.com/waqashussainziarana-ux/woogenius/internal/domain/entity"
	"github.com/waqashussainziarana-ux/woogenius/internal/domain/repository"
)

type memoryChatRepository struct {
	mu       sync.RWMutex
	sessions map[string][]entity.ChatMessage
	maxSize  int
}

// NewMemoryChatRepository creates an in-memory transcript store. Each
// session keeps at most maxSize messages; zero means unbounded.
func NewMemoryChatRepository(maxSize int) repository.ChatRepository {
	return &memoryChatRepository{
		sessions: make(map[string][]entity.ChatMessage),
		maxSize:  maxSize,
	}
}

// SaveMessage appends one message to its session's transcript.
func (m *memoryChatRepository) SaveMessage(ctx context.Context, message entity.ChatMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	messages := append(m.sessions[message.SessionID], message)
	if m.maxSize > 0 && len(messages) > m.maxSize {
		messages = messages[len(messages)-m.maxSize:]
	}
	m.sessions[message.SessionID] = messages
	return nil
}

// GetHistory returns the last limit messages of a session in order.
func (m *memoryChatRepository) GetHistory(ctx context.Context, sessionID string, limit int) ([]entity.ChatMessage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	messages := m.sessions[sessionID]
	if limit > 0 && len(messages) > limit {
		messages = messages[len(messages)-limit:]
	}

	out := make([]entity.ChatMessage, len(messages))
	copy(out, messages)
	return out, nil
}

// ClearHistory drops a session's transcript.
func (m *memoryChatRepository) ClearHistory(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, sessionID)
	return nil
}
