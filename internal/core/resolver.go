package core

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	positionalqueue "github.com/timzifer/positional_queue"
	"github.com/timzifer/positional_queue/internal/telemetry"
)

// Lookup ist der schnelle Auflösungspfad (z.B. ein Cache). Ein Miss ist
// kein Fehler, sondern ein normales negatives Ergebnis.
type Lookup[K comparable, V any] func(ctx context.Context, key K) (V, bool)

// Source beschreibt einen langsamen Auflösungspfad (z.B. eine Datenbank).
//
// ResolveBatch erhält die noch offenen Schlüssel in Slot-Reihenfolge und
// liefert die gefundenen Werte pro Schlüssel. Nicht enthaltene Schlüssel
// bleiben offen und werden von späteren Quellen oder dem abschließenden
// Cleanse behandelt.
type Source[K comparable, V any] interface {
	ResolveBatch(ctx context.Context, keys []K) (map[K]V, error)
}

// Resolver serialisiert Auflösungs-Batches über einer Queue: zuerst der
// schnelle Pfad, dann alle Quellen in Registrierungsreihenfolge,
// abschließend Cleanse.
type Resolver[K comparable, V any] struct {
	mu       sync.Mutex
	lookup   Lookup[K, V]
	sources  []Source[K, V]
	observer telemetry.Observer
	batches  atomic.Uint64
}

// Report beschreibt das Ergebnis eines Auflösungs-Batches.
type Report struct {
	BatchID    uuid.UUID
	CacheHits  int
	SourceHits int
	Dropped    int
}

type resolveObserverKey struct{}

// WithResolveObserver returns a context that notifies observer about the
// final outcome of ResolveAll. On success the observer is invoked after the
// cleanse pass; on failure it is invoked before the error is returned to
// the caller.
func WithResolveObserver(ctx context.Context, observer func(Report, error)) context.Context {
	if observer == nil {
		return ctx
	}
	return context.WithValue(ctx, resolveObserverKey{}, observer)
}

// NewResolver erzeugt einen neuen Resolver. Ein nil-Lookup überspringt den
// schnellen Pfad.
func NewResolver[K comparable, V any](lookup Lookup[K, V], sources ...Source[K, V]) *Resolver[K, V] {
	copySources := append([]Source[K, V](nil), sources...)
	return &Resolver[K, V]{
		lookup:   lookup,
		sources:  copySources,
		observer: telemetry.NoOpObserver{},
	}
}

// Observe ersetzt den Event-Observer (Standard: NoOp).
func (r *Resolver[K, V]) Observe(observer telemetry.Observer) {
	if observer == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observer = observer
}

// ResolveAll führt einen vollständigen Auflösungs-Batch über der Queue aus.
// Cache-Treffer und Quellenergebnisse werden positionsgetreu über Insert
// eingetragen; bei Schlüsselduplikaten füllt jedes Ergebnis genau die erste
// noch offene Position. Nach erfolgreichem Durchlauf sind alle
// verbleibenden Slots gefüllt.
func (r *Resolver[K, V]) ResolveAll(ctx context.Context, q *positionalqueue.Queue[K, V]) (report Report, err error) {
	ctx, finish := telemetry.TraceResolve(ctx)
	defer func() { finish(err) }()

	observer, _ := ctx.Value(resolveObserverKey{}).(func(Report, error))

	r.mu.Lock()
	defer r.mu.Unlock()

	report.BatchID = uuid.New()
	outstanding := q.NotFilled()
	r.emit(ctx, telemetry.EventResolveStart, slog.LevelDebug, map[string]any{
		"batch_id":    report.BatchID.String(),
		"outstanding": len(outstanding),
	})

	if err = ctx.Err(); err != nil {
		return r.fail(ctx, report, observer, err)
	}

	if r.lookup != nil {
		for _, key := range outstanding {
			value, ok := r.lookup(ctx, key)
			if !ok {
				continue
			}
			if q.Insert(key, value) {
				report.CacheHits++
			}
		}
	}

	for _, source := range r.sources {
		remaining := q.NotFilled()
		if len(remaining) == 0 {
			break
		}
		if err = ctx.Err(); err != nil {
			return r.fail(ctx, report, observer, err)
		}

		var results map[K]V
		results, err = source.ResolveBatch(ctx, remaining)
		if err != nil {
			return r.fail(ctx, report, observer, err)
		}
		for key, value := range results {
			if q.Insert(key, value) {
				report.SourceHits++
			}
		}
	}

	report.Dropped = q.Cleanse()
	r.batches.Add(1)

	r.emit(ctx, telemetry.EventResolveComplete, slog.LevelInfo, map[string]any{
		"batch_id":    report.BatchID.String(),
		"cache_hits":  report.CacheHits,
		"source_hits": report.SourceHits,
		"dropped":     report.Dropped,
	})
	if observer != nil {
		observer(report, nil)
	}
	return report, nil
}

func (r *Resolver[K, V]) fail(ctx context.Context, report Report, observer func(Report, error), err error) (Report, error) {
	r.emit(ctx, telemetry.EventResolveError, slog.LevelError, map[string]any{
		"batch_id": report.BatchID.String(),
		"error":    err.Error(),
	})
	if observer != nil {
		observer(report, err)
	}
	return report, err
}

// Batches gibt die Anzahl erfolgreich abgeschlossener Batches zurück.
func (r *Resolver[K, V]) Batches() uint64 {
	return r.batches.Load()
}

// RegisterSource hängt zur Laufzeit eine weitere Quelle an.
func (r *Resolver[K, V]) RegisterSource(source Source[K, V]) error {
	if source == nil {
		return errors.New("nil source")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sources = append(r.sources, source)
	return nil
}

func (r *Resolver[K, V]) emit(ctx context.Context, typ telemetry.EventType, level slog.Level, data map[string]any) {
	r.observer.OnEvent(ctx, telemetry.Event{
		Type:      typ,
		Level:     level,
		Timestamp: time.Now(),
		Source:    "resolver",
		Data:      data,
	})
}
