// Package positionalqueue implements a positional container that correlates
// a batch of requested keys with progressively resolved values while
// preserving the original request order.
//
// A queue is built from an ordered sequence of placeholder keys (or already
// resolved values). Slots are then filled in place, either linearly through
// the cursor via Save or keyed via Insert, and a final Cleanse compacts away
// every slot that was never resolved. The relative order of filled slots
// always matches the original request order.
//
// A queue is exclusively owned by a single caller and performs no locking.
// Callers that share a queue across goroutines must impose their own mutual
// exclusion.
package positionalqueue

import (
	"errors"

	"github.com/timzifer/positional_queue/internal/queue"
)

// ErrOutOfRange is returned by cursor operations on an empty queue.
var ErrOutOfRange = errors.New("positionalqueue: cursor out of range")

// Queue holds an ordered sequence of slots plus a cursor marking the current
// working position. The cursor is a valid slot index after every mutating
// call returns, or 0 while the queue is empty.
type Queue[K comparable, V any] struct {
	slots  *queue.Store[Slot[K, V]]
	cursor int
}

// New creates a queue from the provided construction options. Slots appear
// in option application order and the cursor starts at 0.
func New[K comparable, V any](options ...Option[K, V]) *Queue[K, V] {
	q := &Queue[K, V]{slots: queue.NewStore[Slot[K, V]](0)}
	for _, opt := range options {
		opt(q)
	}
	return q
}

// Size returns the number of slots currently held by the queue.
func (q *Queue[K, V]) Size() int {
	return q.slots.Len()
}

// wrap maps any integer position into [0, Size()-1] via floored modulo, so
// negative positions wrap to the top end and positions past the end wrap to
// the bottom. An empty queue parks the cursor at 0.
func (q *Queue[K, V]) wrap(pos int) int {
	n := q.slots.Len()
	if n == 0 {
		return 0
	}
	return ((pos % n) + n) % n
}

// SetCursor seeks the cursor to pos under the wrap rule.
func (q *Queue[K, V]) SetCursor(pos int) {
	q.cursor = q.wrap(pos)
}

// Cursor returns the current cursor position without moving it.
func (q *Queue[K, V]) Cursor() int {
	return q.cursor
}

// Next advances the cursor by one under the wrap rule and returns the new
// position. Position 0 is reachable like any other position.
func (q *Queue[K, V]) Next() int {
	q.cursor = q.wrap(q.cursor + 1)
	return q.cursor
}

// Prev retreats the cursor by one under the wrap rule and returns the new
// position.
func (q *Queue[K, V]) Prev() int {
	q.cursor = q.wrap(q.cursor - 1)
	return q.cursor
}

// Reset seeks the cursor back to 0 unconditionally.
func (q *Queue[K, V]) Reset() {
	q.cursor = 0
}

// Fetch returns the slot at the cursor without moving it.
func (q *Queue[K, V]) Fetch() (Slot[K, V], error) {
	slot, ok := q.slots.At(q.cursor)
	if !ok {
		return Slot[K, V]{}, ErrOutOfRange
	}
	return slot, nil
}

// Save overwrites the slot at the cursor with a resolved value and advances
// the cursor by one step under the wrap rule. This is the linear fill path
// for callers that seek explicitly before storing each result.
func (q *Queue[K, V]) Save(value V) error {
	if !q.slots.Set(q.cursor, valueSlot[K, V](value)) {
		return ErrOutOfRange
	}
	q.Next()
	return nil
}

// Delete clears the slot at the cursor back to StateCleared. The slot stays
// present but holds neither a placeholder key nor a value; Cleanse removes
// it along with placeholders. Most callers want Remove instead.
func (q *Queue[K, V]) Delete() error {
	if !q.slots.Set(q.cursor, Slot[K, V]{}) {
		return ErrOutOfRange
	}
	return nil
}

// Remove structurally removes the slot at the cursor, shifting all later
// slots down by one. The cursor is clamped to the last valid index
// afterwards so it never dangles past the end.
func (q *Queue[K, V]) Remove() error {
	if !q.slots.RemoveAt(q.cursor) {
		return ErrOutOfRange
	}
	if last := q.slots.Len() - 1; q.cursor > last {
		if last < 0 {
			last = 0
		}
		q.cursor = last
	}
	return nil
}

// Cleanse removes every slot that is not filled, rescanning from the start
// after each removal, and returns the number of slots removed. Afterwards
// every remaining slot is filled and the relative order of filled slots is
// unchanged. Cleanse seeks the cursor while compacting and is idempotent.
func (q *Queue[K, V]) Cleanse() int {
	removed := 0
	for {
		idx, found := q.firstUnfilled()
		if !found {
			return removed
		}
		q.SetCursor(idx)
		if err := q.Remove(); err != nil {
			return removed
		}
		removed++
	}
}

func (q *Queue[K, V]) firstUnfilled() (int, bool) {
	index, found := 0, false
	q.slots.Scan(func(i int, slot Slot[K, V]) bool {
		if slot.State() != StateValue {
			index, found = i, true
			return false
		}
		return true
	})
	return index, found
}

// NotFilled returns the request keys of all placeholder slots in slot order.
func (q *Queue[K, V]) NotFilled() []K {
	var keys []K
	q.slots.Scan(func(_ int, slot Slot[K, V]) bool {
		if key, ok := slot.Key(); ok {
			keys = append(keys, key)
		}
		return true
	})
	return keys
}

// Filled returns the values of all filled slots in slot order.
func (q *Queue[K, V]) Filled() []V {
	var values []V
	q.slots.Scan(func(_ int, slot Slot[K, V]) bool {
		if value, ok := slot.Value(); ok {
			values = append(values, value)
		}
		return true
	})
	return values
}

// Insert fills the first placeholder slot whose key equals key and restores
// the cursor to its pre-call position. It reports whether a matching
// placeholder was found; on a miss the queue is left untouched. Keys are
// compared by value, so duplicate keys are consumed one occurrence per call.
func (q *Queue[K, V]) Insert(key K, value V) bool {
	target, found := 0, false
	q.slots.Scan(func(i int, slot Slot[K, V]) bool {
		if k, ok := slot.Key(); ok && k == key {
			target, found = i, true
			return false
		}
		return true
	})
	if !found {
		return false
	}

	origin := q.cursor
	q.SetCursor(target)
	_ = q.Save(value)
	q.SetCursor(origin)
	return true
}

// Snapshot returns a copy of all slots for inspection/testing.
func (q *Queue[K, V]) Snapshot() []Slot[K, V] {
	return q.slots.Snapshot()
}
