package commands

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/patternkit/patternkit-go/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectStats(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 15, 32, 0, time.UTC)
	events := restockEvents(ts)
	events = append(events, log.Event{
		Timestamp:  ts.Add(10 * time.Second),
		SubjectID:  "other-subject-id",
		Subject:    "Lamp",
		Kind:       log.KindSubscribed,
		Subscriber: "Charlie",
	})
	path := createTestLogFile(t, events)

	stats, err := CollectStats(path)
	require.NoError(t, err)

	assert.Equal(t, 7, stats.TotalEvents)
	assert.Equal(t, 3, stats.EventsByKind[log.KindSubscribed])
	assert.Equal(t, 2, stats.EventsByKind[log.KindDelivered])
	assert.Equal(t, 1, stats.EventsByKind[log.KindNotifying])
	assert.True(t, stats.TimeRange.Start.Equal(ts))
	assert.True(t, stats.TimeRange.End.Equal(ts.Add(10*time.Second)))

	require.Len(t, stats.Subjects, 2)
	ps5 := stats.Subjects["3f2a9c1e-0000-4000-8000-000000000001"]
	require.NotNil(t, ps5)
	assert.Equal(t, "PlayStation 5", ps5.Name)
	assert.Equal(t, 6, ps5.Events)
	assert.Equal(t, 1, ps5.Rounds)
	assert.Equal(t, 2, ps5.Delivered)
	assert.Equal(t, map[string]int{"Alice": 1, "Bob": 1}, ps5.Deliveries)
}

func TestRunStatsOutput(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 15, 32, 0, time.UTC)
	path := createTestLogFile(t, restockEvents(ts))

	var buf bytes.Buffer
	require.NoError(t, RunStats(path, &buf))
	output := buf.String()

	for _, want := range []string{
		"Total Events: 6",
		"SUBSCRIBED:",
		"DELIVERED:",
		"Subjects: 1",
		"[3f2a9c1e] PlayStation 5: 6 events, 1 rounds, 2 notifications",
		"Alice: 1",
		"Duration:   5s",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
	if strings.Contains(output, "UNSUBSCRIBED:") {
		t.Errorf("kinds with zero events should be omitted:\n%s", output)
	}
}

func TestRunStatsEmptyLog(t *testing.T) {
	path := createTestLogFile(t, nil)

	var buf bytes.Buffer
	require.NoError(t, RunStats(path, &buf))
	output := buf.String()

	assert.Contains(t, output, "Total Events: 0")
	assert.Contains(t, output, "Subjects: 0")
	assert.NotContains(t, output, "Time Range")
}
