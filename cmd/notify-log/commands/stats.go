package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/patternkit/patternkit-go/pkg/log"
)

// Stats holds aggregate statistics about a log file.
type Stats struct {
	TotalEvents  int
	EventsByKind map[log.Kind]int
	Subjects     map[string]*SubjectStats
	TimeRange    struct {
		Start time.Time
		End   time.Time
	}
}

// SubjectStats holds statistics for a single subject.
type SubjectStats struct {
	Name       string
	FirstSeen  time.Time
	Events     int
	Rounds     int
	Delivered  int
	Deliveries map[string]int
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, w io.Writer) error {
	stats, err := CollectStats(path)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

// CollectStats reads the whole log file and aggregates it.
func CollectStats(path string) (*Stats, error) {
	reader, err := log.NewReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByKind: make(map[log.Kind]int),
		Subjects:     make(map[string]*SubjectStats),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByKind[event.Kind]++

		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		subj, ok := stats.Subjects[event.SubjectID]
		if !ok {
			subj = &SubjectStats{
				Name:       event.Subject,
				FirstSeen:  event.Timestamp,
				Deliveries: make(map[string]int),
			}
			stats.Subjects[event.SubjectID] = subj
		}
		subj.Events++

		switch event.Kind {
		case log.KindNotifying:
			subj.Rounds++
		case log.KindDelivered:
			subj.Delivered++
			subj.Deliveries[event.Subscriber]++
		}
	}

	return stats, nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Event Log Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Kind:")
	for _, kind := range log.AllKinds {
		if count := stats.EventsByKind[kind]; count > 0 {
			fmt.Fprintf(w, "  %-14s %d\n", kind.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Subjects: %d\n", len(stats.Subjects))
	if len(stats.Subjects) == 0 {
		return
	}

	type subjectInfo struct {
		id    string
		stats *SubjectStats
	}
	subjects := make([]subjectInfo, 0, len(stats.Subjects))
	for id, s := range stats.Subjects {
		subjects = append(subjects, subjectInfo{id, s})
	}
	sort.Slice(subjects, func(i, j int) bool {
		return subjects[i].stats.FirstSeen.Before(subjects[j].stats.FirstSeen)
	})

	fmt.Fprintln(w)
	for _, s := range subjects {
		fmt.Fprintf(w, "  [%s] %s: %d events, %d rounds, %d notifications\n",
			shortenID(s.id), s.stats.Name, s.stats.Events, s.stats.Rounds, s.stats.Delivered)

		names := make([]string, 0, len(s.stats.Deliveries))
		for name := range s.stats.Deliveries {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(w, "           %s: %d\n", name, s.stats.Deliveries[name])
		}
	}
}
