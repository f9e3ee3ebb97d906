package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/waqashussainziarana-ux/woogenius/internal/domain/entity"
	"github.com/waqashussainziarana-ux/woogenius/internal/domain/repository"
)

// User-facing replies for remote failures. The raw provider error never
// reaches the customer; rate limiting stays distinguishable from a generic
// failure, and a missing credential from both.
const (
	replyNotConfigured = "The assistant is not configured: the GEMINI_API_KEY credential is missing. Please set it and restart."
	replyRateLimited   = "I'm handling too many requests right now. Please try again in a minute."
	replyGenericError  = "Sorry, I encountered an error communicating with the AI. Please try again."
)

// Budget for one turn: two model calls plus the retry policy's worst-case
// backoff sleeps.
const turnTimeout = 90 * time.Second

// ChatUseCase drives one customer conversation session.
type ChatUseCase interface {
	// ProcessMessage runs one user turn and returns the reply to show.
	// Remote failures come back as user-facing text, never as errors.
	ProcessMessage(ctx context.Context, sessionID, text string) (string, error)

	// GetHistory returns the session transcript.
	GetHistory(ctx context.Context, sessionID string) ([]entity.ChatMessage, error)

	// ClearHistory forgets the session transcript.
	ClearHistory(ctx context.Context, sessionID string) error
}

type chatUseCase struct {
	aiRepo     repository.AIRepository
	chatRepo   repository.ChatRepository
	maxContext int
}

// NewChatUseCase creates the conversation orchestrator.
func NewChatUseCase(aiRepo repository.AIRepository, chatRepo repository.ChatRepository, maxContext int) ChatUseCase {
	return &chatUseCase{
		aiRepo:     aiRepo,
		chatRepo:   chatRepo,
		maxContext: maxContext,
	}
}

// ProcessMessage appends the user message to the stored history, obtains the
// model's reply (possibly via one tool call) and records both sides of the
// turn. The stored history never contains the synthetic welcome message.
func (u *chatUseCase) ProcessMessage(ctx context.Context, sessionID, text string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, turnTimeout)
	defer cancel()

	history, err := u.chatRepo.GetHistory(ctx, sessionID, u.maxContext)
	if err != nil {
		return "", fmt.Errorf("failed to get history: %w", err)
	}

	reply, err := u.aiRepo.SendMessage(ctx, history, text)
	if err != nil {
		log.Printf("⚠️ Model call failed for session %s: %v", sessionID, err)
		reply = userFacingReply(err)
	}

	now := time.Now()
	userMsg := entity.ChatMessage{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Role:      entity.RoleUser,
		Content:   text,
		Timestamp: now,
	}
	modelMsg := entity.ChatMessage{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Role:      entity.RoleModel,
		Content:   reply,
		Timestamp: now.Add(time.Millisecond),
	}

	if err := u.chatRepo.SaveMessage(ctx, userMsg); err != nil {
		return "", fmt.Errorf("failed to save message: %w", err)
	}
	if err := u.chatRepo.SaveMessage(ctx, modelMsg); err != nil {
		return "", fmt.Errorf("failed to save reply: %w", err)
	}

	return reply, nil
}

// GetHistory returns the session transcript.
func (u *chatUseCase) GetHistory(ctx context.Context, sessionID string) ([]entity.ChatMessage, error) {
	return u.chatRepo.GetHistory(ctx, sessionID, 0)
}

// ClearHistory forgets the session transcript.
func (u *chatUseCase) ClearHistory(ctx context.Context, sessionID string) error {
	return u.chatRepo.ClearHistory(ctx, sessionID)
}

func userFacingReply(err error) string {
	switch {
	case errors.Is(err, repository.ErrAINotConfigured):
		return replyNotConfigured
	case errors.Is(err, repository.ErrAIRateLimited):
		return replyRateLimited
	default:
		return replyGenericError
	}
}
