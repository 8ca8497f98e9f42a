package positionalqueue

// Option configures the initial slot sequence of a queue.
type Option[K comparable, V any] func(*Queue[K, V])

// WithPlaceholders appends one unfilled slot per request key, in order.
func WithPlaceholders[K comparable, V any](keys ...K) Option[K, V] {
	return func(q *Queue[K, V]) {
		for _, key := range keys {
			q.slots.Append(placeholderSlot[K, V](key))
		}
	}
}

// WithValues appends one already filled slot per value, in order. This
// covers batches where some positions are resolved before the queue is
// built.
func WithValues[K comparable, V any](values ...V) Option[K, V] {
	return func(q *Queue[K, V]) {
		for _, value := range values {
			q.slots.Append(valueSlot[K, V](value))
		}
	}
}
