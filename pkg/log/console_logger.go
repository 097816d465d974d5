package log

import (
	"fmt"
	"io"
	"sync"
)

// ConsoleLogger renders events as the human-readable "[System]" lines of the
// restock demo. DELIVERED events are not printed; subscribers report their own
// notifications.
type ConsoleLogger struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsoleLogger creates a ConsoleLogger writing to w.
func NewConsoleLogger(w io.Writer) *ConsoleLogger {
	return &ConsoleLogger{w: w}
}

// Log writes one line for the event.
func (c *ConsoleLogger) Log(event Event) {
	line := FormatLine(event)
	if line == "" {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.w, line)
}

// FormatLine returns the console line for an event, or "" for kinds that are
// not printed.
func FormatLine(event Event) string {
	switch event.Kind {
	case KindSubscribed:
		return fmt.Sprintf("[System] %s subscribed to '%s'", event.Subscriber, event.Subject)
	case KindUnsubscribed:
		return fmt.Sprintf("[System] %s unsubscribed from '%s'", event.Subscriber, event.Subject)
	case KindAvailable:
		return fmt.Sprintf("[System] '%s' is now in stock!", event.Subject)
	case KindUnavailable:
		return fmt.Sprintf("[System] '%s' is now out of stock.", event.Subject)
	case KindNotifying:
		return fmt.Sprintf("[System] Notifying %d user(s) about '%s'...", event.Count, event.Subject)
	default:
		return ""
	}
}

// Compile-time interface satisfaction check.
var _ Logger = (*ConsoleLogger)(nil)
