package repository

import (
	"context"

	"github.com/waqashussainziarana-ux/woogenius/internal/domain/entity"
)

// ChatRepository stores conversation transcripts per session.
type ChatRepository interface {
	// SaveMessage appends one message to its session's transcript.
	SaveMessage(ctx context.Context, message entity.ChatMessage) error

	// GetHistory returns the last limit messages of a session in
	// chronological order. limit <= 0 means no limit.
	GetHistory(ctx context.Context, sessionID string, limit int) ([]entity.ChatMessage, error)

	// ClearHistory drops a session's transcript.
	ClearHistory(ctx context.Context, sessionID string) error
}
