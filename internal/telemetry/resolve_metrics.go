package telemetry

import (
	"context"
	"sync/atomic"
	"time"
)

// ResolveMetrics fasst Messwerte zu Auflösungs-Batches zusammen.
type ResolveMetrics struct {
	totalDuration atomic.Int64
	attempts      atomic.Uint64
	failures      atomic.Uint64
}

var defaultResolveMetrics ResolveMetrics

// DefaultResolveMetrics liefert die globalen Metriken.
func DefaultResolveMetrics() *ResolveMetrics {
	return &defaultResolveMetrics
}

// TraceResolve startet ein Resolve-Span und liefert eine Abschlussfunktion,
// die Dauer und Fehlerzustand meldet.
func TraceResolve(ctx context.Context) (context.Context, func(error)) {
	start := time.Now()
	defaultResolveMetrics.attempts.Add(1)
	return ctx, func(err error) {
		elapsed := time.Since(start)
		defaultResolveMetrics.totalDuration.Add(elapsed.Nanoseconds())
		if err != nil {
			defaultResolveMetrics.failures.Add(1)
		}
	}
}

// Snapshot gibt die gesammelten Werte zurück.
func (m *ResolveMetrics) Snapshot() (attempts uint64, failures uint64, average time.Duration) {
	attempts = m.attempts.Load()
	failures = m.failures.Load()
	total := m.totalDuration.Load()
	if attempts == 0 {
		return attempts, failures, 0
	}
	average = time.Duration(total / int64(attempts))
	return attempts, failures, average
}

// Reset setzt alle Zähler zurück.
func (m *ResolveMetrics) Reset() {
	m.totalDuration.Store(0)
	m.attempts.Store(0)
	m.failures.Store(0)
}
