package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/patternkit/patternkit-go/pkg/log"
)

// jsonEvent is the JSONL export shape; kinds are written by name.
type jsonEvent struct {
	Timestamp  time.Time `json:"timestamp"`
	SubjectID  string    `json:"subject_id"`
	Subject    string    `json:"subject"`
	Kind       string    `json:"kind"`
	Subscriber string    `json:"subscriber,omitempty"`
	Count      *int      `json:"count,omitempty"`
}

// RunExport exports the log file to the specified format.
func RunExport(path, format, output string) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "jsonl":
		return exportJSONL(reader, w)
	case "csv":
		return exportCSV(reader, w)
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		je := jsonEvent{
			Timestamp:  event.Timestamp,
			SubjectID:  event.SubjectID,
			Subject:    event.Subject,
			Kind:       event.Kind.String(),
			Subscriber: event.Subscriber,
		}
		if event.Kind == log.KindNotifying {
			count := event.Count
			je.Count = &count
		}

		if err := encoder.Encode(je); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
	return nil
}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"timestamp", "subject_id", "subject", "kind", "subscriber", "count"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		count := ""
		if event.Kind == log.KindNotifying {
			count = strconv.Itoa(event.Count)
		}

		row := []string{
			event.Timestamp.UTC().Format(time.RFC3339Nano),
			event.SubjectID,
			event.Subject,
			event.Kind.String(),
			event.Subscriber,
			count,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	return cw.Error()
}
