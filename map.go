package stablebimap

import "hash/maphash"

// Map is a one-to-one association between left values of type L and right
// values of type R, queryable from either side in O(1) amortized time.
//
// Every entry lives once in an arena; two swiss tables index it by left and
// by right value. Every public operation leaves the two indices exact
// inverses of each other: an operation either applies to both or, when it
// returns an error, to neither.
//
// The zero Map is empty and ready to use with default hashers and
// DefaultCapacity. A Map is NOT goroutine-safe, see Synced.
type Map[L, R comparable] struct {
	entries []entrySlot[L, R]

	left  index
	right index

	hashLeft  HashFunc[L]
	hashRight HashFunc[R]

	// fixed maps never grow; they behave like the stable tables they are
	// built on and report ErrTableFull instead.
	fixed bool

	// generation changes with every mutation, iterators use it to detect
	// modification.
	generation uint64
}

type Option[L, R comparable] func(m *Map[L, R])

// Override default hash function of left values.
func WithLeftHashFunc[L, R comparable](f HashFunc[L]) Option[L, R] {
	return func(m *Map[L, R]) {
		m.hashLeft = f
	}
}

// Override default hash function of right values.
func WithRightHashFunc[L, R comparable](f HashFunc[R]) Option[L, R] {
	return func(m *Map[L, R]) {
		m.hashRight = f
	}
}

// WithFixedCapacity makes the map retain the capacity it was created with.
// Insertions of new entries past the effective capacity fail with
// ErrTableFull; replacing entries keeps working.
func WithFixedCapacity[L, R comparable]() Option[L, R] {
	return func(m *Map[L, R]) {
		m.fixed = true
	}
}

// Returns a new map with room for capacity slots per index, rounded up to a
// power of two. A capacity <= 0 selects DefaultCapacity.
func New[L, R comparable](capacity int, opts ...Option[L, R]) *Map[L, R] {
	var m Map[L, R]
	m.init(capacity, opts...)

	return &m
}

// NewWithHashers returns a new map hashing left values with hl and right
// values with hr.
func NewWithHashers[L, R comparable](capacity int, hl HashFunc[L], hr HashFunc[R], opts ...Option[L, R]) *Map[L, R] {
	opts = append([]Option[L, R]{WithLeftHashFunc[L, R](hl), WithRightHashFunc[L, R](hr)}, opts...)

	return New(capacity, opts...)
}

func (m *Map[L, R]) init(capacity int, opts ...Option[L, R]) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	m.left.init(uintptr(capacity))
	m.right.init(uintptr(capacity))
	m.entries = make([]entrySlot[L, R], 0, m.left.capacityEffective)

	for _, opt := range opts {
		opt(m)
	}

	if m.hashLeft == nil {
		m.hashLeft = MakeDefaultHashFunc[L](maphash.MakeSeed())
	}
	if m.hashRight == nil {
		m.hashRight = MakeDefaultHashFunc[R](maphash.MakeSeed())
	}
}

func (m *Map[L, R]) lazyInit() {
	if len(m.left.groups) == 0 {
		m.init(DefaultCapacity)
	}
}

func (m *Map[L, R]) findLeft(l L, hash uint64) (position, bool) {
	return m.left.find(hash, func(h handle) bool {
		return m.entries[h].left == l
	})
}

func (m *Map[L, R]) findRight(r R, hash uint64) (position, bool) {
	return m.right.find(hash, func(h handle) bool {
		return m.entries[h].right == r
	})
}

// Len returns the number of entries.
func (m *Map[L, R]) Len() int {
	return len(m.entries)
}

func (m *Map[L, R]) IsEmpty() bool {
	return len(m.entries) == 0
}

// EffectiveCapacity returns how many entries fit before the map has to grow,
// or, for fixed maps, before insertions fail.
func (m *Map[L, R]) EffectiveCapacity() int {
	return int(m.left.capacityEffective)
}

// GetByLeft returns the right value associated with l.
func (m *Map[L, R]) GetByLeft(l L) (R, bool) {
	if len(m.entries) == 0 {
		var zero R
		return zero, false
	}

	pos, ok := m.findLeft(l, m.hashLeft(l))
	if !ok {
		var zero R
		return zero, false
	}

	return m.entries[m.left.handleAt(pos)].right, true
}

// GetByRight returns the left value associated with r.
func (m *Map[L, R]) GetByRight(r R) (L, bool) {
	if len(m.entries) == 0 {
		var zero L
		return zero, false
	}

	pos, ok := m.findRight(r, m.hashRight(r))
	if !ok {
		var zero L
		return zero, false
	}

	return m.entries[m.right.handleAt(pos)].left, true
}

func (m *Map[L, R]) ContainsLeft(l L) bool {
	_, ok := m.GetByLeft(l)
	return ok
}

func (m *Map[L, R]) ContainsRight(r R) bool {
	_, ok := m.GetByRight(r)
	return ok
}

// RemoveByLeft removes the entry holding l and returns it.
func (m *Map[L, R]) RemoveByLeft(l L) (Entry[L, R], bool) {
	if len(m.entries) == 0 {
		return Entry[L, R]{}, false
	}

	pos, ok := m.findLeft(l, m.hashLeft(l))
	if !ok {
		return Entry[L, R]{}, false
	}

	h := m.left.handleAt(pos)

	return m.remove(h, pos, m.right.locate(m.entries[h].rightHash, h)), true
}

// RemoveByRight removes the entry holding r and returns it.
func (m *Map[L, R]) RemoveByRight(r R) (Entry[L, R], bool) {
	if len(m.entries) == 0 {
		return Entry[L, R]{}, false
	}

	pos, ok := m.findRight(r, m.hashRight(r))
	if !ok {
		return Entry[L, R]{}, false
	}

	h := m.right.handleAt(pos)

	return m.remove(h, m.left.locate(m.entries[h].leftHash, h), pos), true
}

// remove drops entry h given its slots in both indices.
func (m *Map[L, R]) remove(h handle, lpos, rpos position) Entry[L, R] {
	removed := m.entries[h].entry()

	m.left.erase(lpos)
	m.right.erase(rpos)
	m.removeSlot(h)
	m.generation++

	return removed
}

// Clear removes all entries and keeps the allocated capacity.
func (m *Map[L, R]) Clear() {
	m.left.reset()
	m.right.reset()

	clear(m.entries)
	m.entries = m.entries[:0]
	m.generation++
}

// Reserve makes sure n more entries can be inserted without growing.
// For fixed maps it only reports whether they fit.
func (m *Map[L, R]) Reserve(n int) error {
	m.lazyInit()

	if n <= 0 {
		return nil
	}

	return m.ensureRoom(uintptr(n))
}

// Compact reclaims the tombstones left in both indices by removals.
func (m *Map[L, R]) Compact() {
	if m.left.tombstones > 0 {
		m.left.compact(m.leftHashOf)
	}
	if m.right.tombstones > 0 {
		m.right.compact(m.rightHashOf)
	}
}

// Clone returns an independent copy sharing the hash functions.
func (m *Map[L, R]) Clone() *Map[L, R] {
	out := &Map[L, R]{
		left:      m.left.clone(),
		right:     m.right.clone(),
		hashLeft:  m.hashLeft,
		hashRight: m.hashRight,
		fixed:     m.fixed,
	}

	// Carry the generation so copying a clone back over m still invalidates
	// iterators running on m.
	out.generation = m.generation
	out.entries = make([]entrySlot[L, R], len(m.entries), cap(m.entries))
	copy(out.entries, m.entries)

	return out
}

// Invert returns an independent copy with both sides swapped.
func (m *Map[L, R]) Invert() *Map[R, L] {
	out := &Map[R, L]{
		left:      m.right.clone(),
		right:     m.left.clone(),
		hashLeft:  m.hashRight,
		hashRight: m.hashLeft,
		fixed:     m.fixed,
	}

	out.entries = make([]entrySlot[R, L], len(m.entries), cap(m.entries))
	for i := range m.entries {
		s := &m.entries[i]
		out.entries[i] = entrySlot[R, L]{
			left:      s.right,
			right:     s.left,
			leftHash:  s.rightHash,
			rightHash: s.leftHash,
		}
	}

	return out
}
