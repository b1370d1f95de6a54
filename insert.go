package stablebimap

// Insert associates l with r.
//
// Entries already holding l or r are evicted first and reported in the
// result: (l, r') when l was mapped to another right value and (l', r) when
// r was mapped to another left value. When both happen, both entries are
// evicted and the map shrinks by one. Inserting a pair that is already
// present reports Unchanged and leaves the map, including the stored
// instances of l and r, untouched.
//
// The only error is ErrTableFull, in which case nothing changed.
func (m *Map[L, R]) Insert(l L, r R) (EvictionResult[L, R], error) {
	m.lazyInit()

	hl, hr := m.hashLeft(l), m.hashRight(r)
	lpos, lok := m.findLeft(l, hl)
	rpos, rok := m.findRight(r, hr)

	switch {
	case lok && rok:
		a, b := m.left.handleAt(lpos), m.right.handleAt(rpos)
		if a == b {
			return EvictionResult[L, R]{Status: Unchanged}, nil
		}

		return m.replaceBoth(a, b, rpos), nil
	case lok:
		return m.replaceRight(m.left.handleAt(lpos), r, hr)
	case rok:
		return m.replaceLeft(m.right.handleAt(rpos), l, hl)
	}

	if err := m.insertNew(l, r, hl, hr); err != nil {
		return EvictionResult[L, R]{}, err
	}

	return EvictionResult[L, R]{Status: Inserted}, nil
}

// TryInsert associates l with r only if neither is present yet. It never
// evicts and reports whether the pair was inserted.
func (m *Map[L, R]) TryInsert(l L, r R) (bool, error) {
	m.lazyInit()

	hl, hr := m.hashLeft(l), m.hashRight(r)
	if _, ok := m.findLeft(l, hl); ok {
		return false, nil
	}
	if _, ok := m.findRight(r, hr); ok {
		return false, nil
	}

	if err := m.insertNew(l, r, hl, hr); err != nil {
		return false, err
	}

	return true, nil
}

// insertNew adds an entry whose values are both absent.
func (m *Map[L, R]) insertNew(l L, r R, hl, hr uint64) error {
	if err := m.ensureRoom(1); err != nil {
		return err
	}

	var (
		lpos, rpos position
		lok, rok   bool
	)

	for {
		lpos, lok = m.left.reserve(hl, false)
		rpos, rok = m.right.reserve(hr, false)
		if lok && rok {
			break
		}

		if err := m.makeRoom(); err != nil {
			return err
		}
	}

	// The arena append is the last step that may allocate; the index writes
	// below cannot fail.
	h := handle(len(m.entries))
	m.entries = append(m.entries, entrySlot[L, R]{
		left:      l,
		right:     r,
		leftHash:  hl,
		rightHash: hr,
	})

	m.left.place(lpos, hl, h)
	m.right.place(rpos, hr, h)
	m.generation++

	return nil
}

// replaceRight evicts (l, r') of entry a and makes it (l, r).
func (m *Map[L, R]) replaceRight(a handle, r R, hr uint64) (EvictionResult[L, R], error) {
	rpos, err := m.reserveReplacement(&m.right, hr)
	if err != nil {
		return EvictionResult[L, R]{}, err
	}

	s := &m.entries[a]
	evicted := s.entry()

	m.right.erase(m.right.locate(s.rightHash, a))
	m.right.place(rpos, hr, a)
	s.right, s.rightHash = r, hr
	m.generation++

	return EvictionResult[L, R]{Status: Replaced, byLeft: evicted, hasByLeft: true}, nil
}

// replaceLeft evicts (l', r) of entry b and makes it (l, r).
func (m *Map[L, R]) replaceLeft(b handle, l L, hl uint64) (EvictionResult[L, R], error) {
	lpos, err := m.reserveReplacement(&m.left, hl)
	if err != nil {
		return EvictionResult[L, R]{}, err
	}

	s := &m.entries[b]
	evicted := s.entry()

	m.left.erase(m.left.locate(s.leftHash, b))
	m.left.place(lpos, hl, b)
	s.left, s.leftHash = l, hl
	m.generation++

	return EvictionResult[L, R]{Status: Replaced, byRight: evicted, hasByRight: true}, nil
}

// replaceBoth evicts (l, r') of entry a and (l', r) of entry b, where rpos
// is the right slot of r. Entry a becomes (l, r) and entry b is dropped.
// Nothing here allocates or calls a HashFunc.
func (m *Map[L, R]) replaceBoth(a, b handle, rpos position) EvictionResult[L, R] {
	ea, eb := m.entries[a], m.entries[b]

	m.right.erase(m.right.locate(ea.rightHash, a))
	m.right.relink(rpos, a)
	m.left.erase(m.left.locate(eb.leftHash, b))

	m.entries[a].right, m.entries[a].rightHash = eb.right, eb.rightHash
	m.removeSlot(b)
	m.generation++

	return EvictionResult[L, R]{
		Status:     ReplacedBoth,
		byLeft:     ea.entry(),
		byRight:    eb.entry(),
		hasByLeft:  true,
		hasByRight: true,
	}
}

// reserveReplacement reserves a slot in ix for a key that replaces another
// key of the same index.
func (m *Map[L, R]) reserveReplacement(ix *index, hash uint64) (position, error) {
	for {
		if pos, ok := ix.reserve(hash, true); ok {
			return pos, nil
		}

		if err := m.makeRoom(); err != nil {
			return position{}, err
		}
	}
}

// ensureRoom grows the indices so n more entries fit.
func (m *Map[L, R]) ensureRoom(n uintptr) error {
	need := uintptr(len(m.entries)) + n
	if need <= m.left.capacityEffective {
		return nil
	}

	if m.fixed {
		return ErrTableFull
	}

	return m.grow(need)
}

// makeRoom runs when a reservation failed because a probe sequence would
// lose its terminating empty slot. Tombstones are reclaimed in place when
// they are a fair share of the table or the map is fixed, otherwise both
// indices double.
func (m *Map[L, R]) makeRoom() error {
	tombstones := max(m.left.tombstones, m.right.tombstones)

	if m.fixed || tombstones >= m.left.capacityEffective/4 {
		if tombstones == 0 {
			return ErrTableFull
		}

		m.Compact()

		return nil
	}

	return m.grow(m.left.capacityEffective + 1)
}

// grow rebuilds both indices with room for need entries. The new indices
// are fully built before they replace the old ones.
func (m *Map[L, R]) grow(need uintptr) error {
	capacity := m.left.capacity
	for capacity*7/8 < need {
		if capacity >= MaxCapacity {
			return ErrTableFull
		}

		capacity *= 2
	}

	left := rebuild(capacity, len(m.entries), m.leftHashOf)
	right := rebuild(capacity, len(m.entries), m.rightHashOf)
	m.left, m.right = left, right

	return nil
}
