package queue

type Store[T any] struct {
	items []T
}

func NewStore[T any](capacity int) *Store[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Store[T]{items: make([]T, 0, capacity)}
}

func (s *Store[T]) Append(value T) {
	s.items = append(s.items, value)
}

func (s *Store[T]) Len() int {
	return len(s.items)
}

func (s *Store[T]) At(i int) (zero T, _ bool) {
	if i < 0 || i >= len(s.items) {
		return zero, false
	}
	return s.items[i], true
}

func (s *Store[T]) Set(i int, value T) bool {
	if i < 0 || i >= len(s.items) {
		return false
	}
	s.items[i] = value
	return true
}

// RemoveAt removes the element at i and shifts all later elements down by
// one.
func (s *Store[T]) RemoveAt(i int) bool {
	if i < 0 || i >= len(s.items) {
		return false
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return true
}

// Scan visits elements in order until fn returns false.
func (s *Store[T]) Scan(fn func(i int, value T) bool) {
	for i, v := range s.items {
		if !fn(i, v) {
			return
		}
	}
}

// Snapshot returns a copy of the stored elements.
func (s *Store[T]) Snapshot() []T {
	if len(s.items) == 0 {
		return nil
	}
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}
