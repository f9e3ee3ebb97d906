package entity

import "time"

// Chat roles as the model API expects them.
const (
	RoleUser   = "user"
	RoleModel  = "model"
	RoleSystem = "system"
)

// ChatMessage is one immutable entry of a conversation transcript.
type ChatMessage struct {
	ID        string
	SessionID string
	Role      string
	Content   string
	Timestamp time.Time
}
