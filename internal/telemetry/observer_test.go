package telemetry

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestSlogObserverEmitsEventAsLogRecord(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	observer := NewSlogObserver(logger)

	observer.OnEvent(context.Background(), Event{
		Type:      EventResolveComplete,
		Level:     slog.LevelInfo,
		Timestamp: time.Now(),
		Source:    "resolver",
		Data:      map[string]any{"dropped": 1},
	})

	out := buf.String()
	if !strings.Contains(out, string(EventResolveComplete)) {
		t.Fatalf("expected log output to contain event type, got %q", out)
	}
	if !strings.Contains(out, "source=resolver") {
		t.Fatalf("expected log output to contain source attribute, got %q", out)
	}
	if !strings.Contains(out, "dropped=1") {
		t.Fatalf("expected log output to contain data attribute, got %q", out)
	}
}

func TestNoOpObserverDiscardsEvents(t *testing.T) {
	var observer Observer = NoOpObserver{}
	observer.OnEvent(context.Background(), Event{Type: EventResolveStart})
}
