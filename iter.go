package stablebimap

import "iter"

// All returns an iterator over all entries.
//
// Entries are yielded in arena order: insertion order, except that removing
// an entry moves the last entry into its place. The order is stable as long
// as the map is not modified. A loop body may modify the map only if it
// stops the loop right after; continuing panics with
// ErrMutatedDuringIteration and leaves the map consistent. Starting a new
// iteration after a modification is fine.
func (m *Map[L, R]) All() iter.Seq2[L, R] {
	return func(yield func(L, R) bool) {
		generation := m.generation

		for i := 0; i < len(m.entries); i++ {
			s := &m.entries[i]
			if !yield(s.left, s.right) {
				return
			}

			if m.generation != generation {
				panic(ErrMutatedDuringIteration)
			}
		}
	}
}

// Lefts returns an iterator over the left values, in the order of All.
func (m *Map[L, R]) Lefts() iter.Seq[L] {
	return func(yield func(L) bool) {
		for l := range m.All() {
			if !yield(l) {
				return
			}
		}
	}
}

// Rights returns an iterator over the right values, in the order of All.
func (m *Map[L, R]) Rights() iter.Seq[R] {
	return func(yield func(R) bool) {
		for _, r := range m.All() {
			if !yield(r) {
				return
			}
		}
	}
}

// Entries returns a snapshot of all entries, in the order of All.
func (m *Map[L, R]) Entries() []Entry[L, R] {
	out := make([]Entry[L, R], 0, len(m.entries))
	for i := range m.entries {
		out = append(out, m.entries[i].entry())
	}

	return out
}
