package repository

import (
	"context"

	"github.com/waqashussainziarana-ux/woogenius/internal/domain/entity"
)

// ToolDispatcher executes a model-requested tool call against the stores.
type ToolDispatcher interface {
	// Dispatch never returns a Go error: any failure is reported inside the
	// result under the "error" key so the caller always has a well-formed
	// payload to hand back to the model.
	Dispatch(ctx context.Context, call entity.ToolCall) entity.ToolResult
}
