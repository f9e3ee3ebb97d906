package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/waqashussainziarana-ux/woogenius/internal/domain/entity"
	"github.com/waqashussainziarana-ux/woogenius/internal/domain/repository"
)

type sqliteChatRepository struct {
	db      *sql.DB
	maxSize int
}

// NewSQLiteChatRepository creates a SQLite-backed transcript store so
// conversations survive restarts.
func NewSQLiteChatRepository(dbPath string, maxSize int) (repository.ChatRepository, error) {
	if dbPath == "" {
		return nil, errors.New("db path must not be empty")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create db directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}

	if err := createChatSchema(db); err != nil {
		return nil, err
	}

	return &sqliteChatRepository{db: db, maxSize: maxSize}, nil
}

func createChatSchema(db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS messages (
	id TEXT PRIMARY KEY,
	session_id TEXT NOT NULL,
	role TEXT NOT NULL,
	content TEXT,
	ts TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_messages_session_ts ON messages (session_id, ts);
`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// SaveMessage appends one message to its session's transcript.
func (s *sqliteChatRepository) SaveMessage(ctx context.Context, message entity.ChatMessage) error {
	const insert = `INSERT INTO messages (id, session_id, role, content, ts) VALUES (?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, insert,
		message.ID, message.SessionID, message.Role, message.Content, message.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to save message: %w", err)
	}

	if s.maxSize > 0 {
		const trim = `
DELETE FROM messages WHERE session_id = ? AND id NOT IN (
	SELECT id FROM messages WHERE session_id = ? ORDER BY ts DESC LIMIT ?
)`
		if _, err := s.db.ExecContext(ctx, trim, message.SessionID, message.SessionID, s.maxSize); err != nil {
			return fmt.Errorf("failed to trim history: %w", err)
		}
	}
	return nil
}

// GetHistory returns the last limit messages of a session in order.
func (s *sqliteChatRepository) GetHistory(ctx context.Context, sessionID string, limit int) ([]entity.ChatMessage, error) {
	query := `SELECT id, session_id, role, content, ts FROM messages WHERE session_id = ? ORDER BY ts`
	args := []any{sessionID}
	if limit > 0 {
		query = `
SELECT id, session_id, role, content, ts FROM (
	SELECT id, session_id, role, content, ts FROM messages
	WHERE session_id = ? ORDER BY ts DESC LIMIT ?
) ORDER BY ts`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var messages []entity.ChatMessage
	for rows.Next() {
		var msg entity.ChatMessage
		if err := rows.Scan(&msg.ID, &msg.SessionID, &msg.Role, &msg.Content, &msg.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	return messages, nil
}

// ClearHistory drops a session's transcript.
func (s *sqliteChatRepository) ClearHistory(ctx context.Context, sessionID string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM messages WHERE session_id = ?`, sessionID); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}
