package log

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestFileLoggerCreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.elog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	defer logger.Close()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("log file was not created")
	}
}

func TestFileLoggerWritesCBOR(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.elog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}

	event := Event{
		Timestamp:  time.Now(),
		SubjectID:  "subject-123",
		Subject:    "PlayStation 5",
		Kind:       KindSubscribed,
		Subscriber: "Alice",
	}

	logger.Log(event)
	logger.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("log file is empty")
	}

	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("failed to decode event: %v", err)
	}
	if decoded.SubjectID != event.SubjectID {
		t.Errorf("SubjectID: got %q, want %q", decoded.SubjectID, event.SubjectID)
	}
	if decoded.Subscriber != "Alice" {
		t.Errorf("Subscriber: got %q, want %q", decoded.Subscriber, "Alice")
	}
}

func TestFileLoggerAppends(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.elog")

	logger1, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	logger1.Log(Event{Timestamp: time.Now(), SubjectID: "subject-1", Kind: KindAvailable})
	logger1.Close()

	info1, _ := os.Stat(path)
	size1 := info1.Size()

	logger2, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger second open failed: %v", err)
	}
	logger2.Log(Event{Timestamp: time.Now(), SubjectID: "subject-2", Kind: KindUnavailable})
	logger2.Close()

	info2, _ := os.Stat(path)
	if size2 := info2.Size(); size2 <= size1 {
		t.Errorf("file did not grow: size before=%d, size after=%d", size1, size2)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	decoder := NewDecoder(bytes.NewReader(data))
	var events []Event
	for {
		var event Event
		if err := decoder.Decode(&event); err != nil {
			break
		}
		events = append(events, event)
	}

	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].SubjectID != "subject-1" {
		t.Errorf("first event SubjectID: got %q, want %q", events[0].SubjectID, "subject-1")
	}
	if events[1].SubjectID != "subject-2" {
		t.Errorf("second event SubjectID: got %q, want %q", events[1].SubjectID, "subject-2")
	}
}

func TestFileLoggerThreadSafe(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.elog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	defer logger.Close()

	const numGoroutines = 10
	const eventsPerGoroutine = 100

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < eventsPerGoroutine; j++ {
				logger.Log(Event{
					Timestamp:  time.Now(),
					SubjectID:  "subject-" + string(rune('A'+id)),
					Kind:       KindDelivered,
					Subscriber: "sub",
				})
			}
		}(i)
	}

	wg.Wait()
	logger.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	decoder := NewDecoder(bytes.NewReader(data))
	count := 0
	for {
		var event Event
		if err := decoder.Decode(&event); err != nil {
			break
		}
		count++
	}

	if want := numGoroutines * eventsPerGoroutine; count != want {
		t.Errorf("event count: got %d, want %d", count, want)
	}
}

func TestFileLoggerClose(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.elog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}

	logger.Log(Event{Timestamp: time.Now(), Kind: KindAvailable})

	if err := logger.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}

	// Logging after close is ignored
	logger.Log(Event{Timestamp: time.Now(), Kind: KindUnavailable})
}

func TestFileLoggerBadPath(t *testing.T) {
	_, err := NewFileLogger(filepath.Join(t.TempDir(), "missing", "dir", "x.elog"))
	if err == nil {
		t.Fatal("NewFileLogger should fail for a missing directory")
	}
}

func TestFileLoggerCountsWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.elog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	if logger.Path() != path {
		t.Errorf("Path() = %q, want %q", logger.Path(), path)
	}

	for i := 0; i < 3; i++ {
		logger.Log(Event{Timestamp: time.Now(), Kind: KindDelivered, Subscriber: "Alice"})
	}
	if got := logger.Written(); got != 3 {
		t.Errorf("Written() = %d, want 3", got)
	}
	if err := logger.Err(); err != nil {
		t.Errorf("Err() = %v, want nil", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("Close() = %v, want nil", err)
	}
}

func TestFileLoggerKeepsFirstWriteError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.elog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	logger.Log(Event{Timestamp: time.Now(), Kind: KindAvailable})

	// Break the underlying file so the next write fails.
	logger.file.Close()

	logger.Log(Event{Timestamp: time.Now(), Kind: KindUnavailable})
	logger.Log(Event{Timestamp: time.Now(), Kind: KindAvailable})

	werr := logger.Err()
	if werr == nil {
		t.Fatal("Err() = nil after failed write")
	}
	if !strings.Contains(werr.Error(), "event 2") {
		t.Errorf("Err() = %v, want it to name event 2", werr)
	}
	if got := logger.Written(); got != 1 {
		t.Errorf("Written() = %d, want 1", got)
	}
	if err := logger.Close(); err != werr {
		t.Errorf("Close() = %v, want first write error %v", err, werr)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("second Close() = %v, want nil", err)
	}
}
