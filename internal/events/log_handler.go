package events

import (
	"context"
	"log/slog"

	"github.com/phrazzld/goalboard/internal/redact"
)

// LogHandler records every event as an audit log line. Email addresses in
// the payload are redacted.
type LogHandler struct {
	logger *slog.Logger
}

// NewLogHandler creates a LogHandler writing to logger, or to slog.Default()
// when logger is nil.
func NewLogHandler(logger *slog.Logger) *LogHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogHandler{logger: logger.With("component", "audit")}
}

// HandleEvent implements EventHandler.
func (h *LogHandler) HandleEvent(ctx context.Context, event *EntityEvent) error {
	h.logger.InfoContext(ctx, "entity event",
		"event_id", event.ID,
		"event_type", event.Type,
		"entity", event.Entity,
		"entity_id", event.EntityID,
		"payload", redact.String(string(event.Payload)),
		"created_at", event.CreatedAt)
	return nil
}
