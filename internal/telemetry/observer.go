package telemetry

import (
	"context"
	"log/slog"
	"time"
)

// EventType identifies the kind of event, e.g. "resolve.start".
type EventType string

const (
	EventResolveStart    EventType = "resolve.start"
	EventResolveComplete EventType = "resolve.complete"
	EventResolveError    EventType = "resolve.error"
)

// Event is emitted by the resolver for logging or metrics sinks.
// Diagnostics are an injected capability rather than a process-wide debug
// switch.
type Event struct {
	Type      EventType
	Level     slog.Level
	Timestamp time.Time
	Source    string
	Data      map[string]any
}

// Observer receives resolver events.
type Observer interface {
	OnEvent(ctx context.Context, event Event)
}

// SlogObserver emits events to a slog.Logger. The event type becomes the
// log message and Data keys are flattened as top-level attributes.
type SlogObserver struct {
	logger *slog.Logger
}

// NewSlogObserver creates a SlogObserver that emits to the given logger.
func NewSlogObserver(logger *slog.Logger) *SlogObserver {
	return &SlogObserver{logger: logger}
}

func (o *SlogObserver) OnEvent(ctx context.Context, event Event) {
	attrs := make([]slog.Attr, 0, len(event.Data)+1)
	attrs = append(attrs, slog.String("source", event.Source))
	for k, v := range event.Data {
		attrs = append(attrs, slog.Any(k, v))
	}

	o.logger.LogAttrs(ctx, event.Level, string(event.Type), attrs...)
}

// NoOpObserver discards all events.
type NoOpObserver struct{}

func (NoOpObserver) OnEvent(ctx context.Context, event Event) {}
