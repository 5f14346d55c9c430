// Package store holds the in-memory collections backing the admin API.
//
// Each Store owns the authoritative, newest-first list of one resource kind.
// The data is volatile and process-local by design; callers only ever see
// snapshot copies, never the live slice.
package store

import (
	"sync"
	"time"

	"github.com/shashiranjanraj/vendora/pkg/event"
	"github.com/shashiranjanraj/vendora/pkg/metrics"
)

// Record is any entity a Store can hold. Identified must return a copy of
// the record carrying the store-assigned id and creation timestamp; the
// store never trusts identity fields from the payload.
type Record[T any] interface {
	RecordID() string
	Identified(id, createdAt string) T
}

// Store is a mutex-guarded, newest-first collection of one resource kind.
// net/http serves requests concurrently, so every operation takes the lock.
type Store[T Record[T]] struct {
	mu    sync.RWMutex
	kind  string
	ids   *IDGenerator
	items []T
	now   func() time.Time
}

// New creates an empty store. kind names the resource in events and metrics
// ("product", "order"); idPrefix brands generated ids ("prod_", "order_").
func New[T Record[T]](kind, idPrefix string) *Store[T] {
	return &Store[T]{
		kind: kind,
		ids:  NewIDGenerator(idPrefix),
		now:  time.Now,
	}
}

// List returns a snapshot of the full collection, newest first.
func (s *Store[T]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the current collection size.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Create assigns a fresh id and UTC creation timestamp, prepends the record
// and returns the stored copy. Shape validation is the endpoint's job; the
// store accepts any well-formed payload.
func (s *Store[T]) Create(payload T) T {
	rec := payload.Identified(s.ids.Next(), s.now().UTC().Format(time.RFC3339))

	s.mu.Lock()
	s.items = append([]T{rec}, s.items...)
	size := len(s.items)
	s.mu.Unlock()

	metrics.RecordStoreOp(s.kind, "create", size)
	event.Fire(s.kind+".created", rec)
	return rec
}

// DeleteByID removes the first record with the given id and reports whether
// anything was removed. Deleting an absent id is not an error.
func (s *Store[T]) DeleteByID(id string) bool {
	s.mu.Lock()
	removed := false
	var gone T
	for i, it := range s.items {
		if it.RecordID() == id {
			gone = it
			s.items = append(s.items[:i], s.items[i+1:]...)
			removed = true
			break
		}
	}
	size := len(s.items)
	s.mu.Unlock()

	metrics.RecordStoreOp(s.kind, "delete", size)
	if removed {
		event.Fire(s.kind+".deleted", gone)
	}
	return removed
}
