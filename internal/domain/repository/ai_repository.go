package repository

import (
	"context"
	"errors"

	"github.com/waqashussainziarana-ux/woogenius/internal/domain/entity"
)

// ErrAINotConfigured means the model credential is missing; detected before
// any network call and never retried.
var ErrAINotConfigured = errors.New("ai service not configured")

// ErrAIRateLimited means the model kept rate-limiting after all retries.
var ErrAIRateLimited = errors.New("ai service rate limited")

// AIRepository drives one conversational turn against the remote model.
type AIRepository interface {
	// SendMessage sends the prior history plus the new user text and returns
	// the model's final natural-language reply, executing at most one tool
	// call in between. The history must not contain the synthetic welcome
	// message shown only in the UI transcript.
	SendMessage(ctx context.Context, history []entity.ChatMessage, userText string) (string, error)
}
