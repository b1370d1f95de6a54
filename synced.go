package stablebimap

import "sync"

// Synced guards a Map with a sync.RWMutex for use from several goroutines.
// Lookups share the read lock, everything else takes the write lock.
type Synced[L, R comparable] struct {
	mtx        sync.RWMutex
	underlying *Map[L, R]
}

// NewSynced wraps m, or a new empty map if m is nil. m must not be used
// directly afterwards.
func NewSynced[L, R comparable](m *Map[L, R]) *Synced[L, R] {
	if m == nil {
		m = new(Map[L, R])
	}

	return &Synced[L, R]{underlying: m}
}

// Insert calls Map.Insert under the write lock
func (s *Synced[L, R]) Insert(l L, r R) (EvictionResult[L, R], error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.underlying.Insert(l, r)
}

// TryInsert calls Map.TryInsert under the write lock
func (s *Synced[L, R]) TryInsert(l L, r R) (bool, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.underlying.TryInsert(l, r)
}

// GetByLeft returns the right value associated with l
func (s *Synced[L, R]) GetByLeft(l L) (R, bool) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.underlying.GetByLeft(l)
}

// GetByRight returns the left value associated with r
func (s *Synced[L, R]) GetByRight(r R) (L, bool) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.underlying.GetByRight(r)
}

// ContainsLeft reports whether l is associated with a right value
func (s *Synced[L, R]) ContainsLeft(l L) bool {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.underlying.ContainsLeft(l)
}

// ContainsRight reports whether r is associated with a left value
func (s *Synced[L, R]) ContainsRight(r R) bool {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.underlying.ContainsRight(r)
}

// RemoveByLeft removes the entry holding l
func (s *Synced[L, R]) RemoveByLeft(l L) (Entry[L, R], bool) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.underlying.RemoveByLeft(l)
}

// RemoveByRight removes the entry holding r
func (s *Synced[L, R]) RemoveByRight(r R) (Entry[L, R], bool) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.underlying.RemoveByRight(r)
}

// Len returns the number of entries
func (s *Synced[L, R]) Len() int {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.underlying.Len()
}

// Clear removes all entries
func (s *Synced[L, R]) Clear() {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.underlying.Clear()
}

// Entries returns a snapshot of all entries
func (s *Synced[L, R]) Entries() []Entry[L, R] {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.underlying.Entries()
}

// Range calls fn for every entry under the read lock until fn returns false.
// fn must not call back into s.
func (s *Synced[L, R]) Range(fn func(l L, r R) bool) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	for l, r := range s.underlying.All() {
		if !fn(l, r) {
			return
		}
	}
}

// Update runs fn with exclusive access to the underlying map, for sequences
// of operations that must appear atomic to other goroutines.
func (s *Synced[L, R]) Update(fn func(m *Map[L, R])) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	fn(s.underlying)
}
