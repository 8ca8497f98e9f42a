package positionalqueue

// State classifies a slot. Classification is purely structural: a slot is
// filled exactly when it holds StateValue, never based on the stored data
// itself.
type State int

const (
	// StateCleared marks a slot that was emptied via Delete. It holds
	// neither a request key nor a resolved value.
	StateCleared State = iota
	// StatePlaceholder marks an unfilled slot carrying the original request key.
	StatePlaceholder
	// StateValue marks a filled slot carrying a resolved value.
	StateValue
)

// Slot is one position of the queue: a placeholder (unfilled), a value
// (filled) or a cleared position.
type Slot[K comparable, V any] struct {
	state State
	key   K
	value V
}

func placeholderSlot[K comparable, V any](key K) Slot[K, V] {
	return Slot[K, V]{state: StatePlaceholder, key: key}
}

func valueSlot[K comparable, V any](value V) Slot[K, V] {
	return Slot[K, V]{state: StateValue, value: value}
}

// State returns the slot classification.
func (s Slot[K, V]) State() State {
	return s.state
}

// Key returns the request key of a placeholder slot.
func (s Slot[K, V]) Key() (K, bool) {
	var zero K
	if s.state != StatePlaceholder {
		return zero, false
	}
	return s.key, true
}

// Value returns the resolved value of a filled slot.
func (s Slot[K, V]) Value() (V, bool) {
	var zero V
	if s.state != StateValue {
		return zero, false
	}
	return s.value, true
}
