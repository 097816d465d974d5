package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes events to an slog.Logger.
// Useful for development when you want to see registry events in the console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("subject_id", event.SubjectID),
		slog.String("subject", event.Subject),
		slog.String("kind", event.Kind.String()),
	}

	switch event.Kind {
	case KindSubscribed, KindUnsubscribed, KindDelivered:
		attrs = append(attrs, slog.String("subscriber", event.Subscriber))
	case KindNotifying:
		attrs = append(attrs, slog.Int("count", event.Count))
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "registry", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
