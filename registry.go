package tollgate

import "github.com/tollgate/tollgate/pkg/domain"

// registry is the shared per-event hook storage used by all three hook
// kinds. Entries for an event materialize lazily on first append; reading an
// unknown event yields a nil (empty) sequence. Single-entry removal is
// deliberately unsupported; the only destructive operation is clear.
//
// registry carries no locking of its own. Hooks guards all access with its
// own mutex so that a snapshot taken for execution never races a concurrent
// attach.
type registry[T any] struct {
	entries map[domain.Event][]T
}

func newRegistry[T any]() *registry[T] {
	return &registry[T]{entries: make(map[domain.Event][]T)}
}

// get returns the ordered sequence registered for event. The returned slice
// is the live backing store; callers must copy before releasing the lock.
func (r *registry[T]) get(event domain.Event) []T {
	return r.entries[event]
}

// add appends entry to the event's sequence, preserving insertion order.
func (r *registry[T]) add(event domain.Event, entry T) {
	r.entries[event] = append(r.entries[event], entry)
}

// clear resets the whole mapping back to its lazy empty state.
func (r *registry[T]) clear() {
	r.entries = make(map[domain.Event][]T)
}

// snapshot returns a deep copy of the mapping, suitable for replay through
// the bulk attachers.
func (r *registry[T]) snapshot() map[domain.Event][]T {
	out := make(map[domain.Event][]T, len(r.entries))
	for event, seq := range r.entries {
		cp := make([]T, len(seq))
		copy(cp, seq)
		out[event] = cp
	}
	return out
}
