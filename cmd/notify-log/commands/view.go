// Package commands implements the notify-log CLI commands.
package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/patternkit/patternkit-go/pkg/log"
)

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	Kind       *log.Kind
	Subject    string
	Subscriber string
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [subject:id] KIND name
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	fmt.Fprintf(w, "%s [subject:%s] %-12s %s\n", ts, shortenID(event.SubjectID), event.Kind.String(), event.Subject)

	switch event.Kind {
	case log.KindSubscribed, log.KindUnsubscribed, log.KindDelivered:
		fmt.Fprintf(w, "  Subscriber: %s\n", event.Subscriber)
	case log.KindNotifying:
		fmt.Fprintf(w, "  Subscribers: %d\n", event.Count)
	}

	if line := log.FormatLine(event); line != "" {
		fmt.Fprintf(w, "  %s\n", line)
	}

	fmt.Fprintln(w)
}

// shortenID returns the first 8 characters of a subject ID.
func shortenID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func (f ViewFilter) matches(event log.Event) bool {
	if f.Kind != nil && event.Kind != *f.Kind {
		return false
	}
	if f.Subject != "" && event.Subject != f.Subject {
		return false
	}
	if f.Subscriber != "" && event.Subscriber != f.Subscriber {
		return false
	}
	return true
}

// ParseKindFlag parses a -kind flag value.
func ParseKindFlag(s string) (log.Kind, error) {
	return log.ParseKind(s)
}

// parseTime parses an RFC3339 flag value.
func parseTime(name, s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, fmt.Errorf("invalid %s format: %w", name, err)
	}
	return &t, nil
}

// RunView executes the view command.
func RunView(path string, filter ViewFilter, output io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		if !filter.matches(event) {
			continue
		}

		formatEvent(output, event)
	}

	return nil
}
