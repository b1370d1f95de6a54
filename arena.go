package stablebimap

// entrySlot is the single place an entry's values live. Both indices refer
// to it by handle. The digests are cached so the indices can be rebuilt or
// relinked without calling a HashFunc.
type entrySlot[L, R comparable] struct {
	left  L
	right R

	leftHash  uint64
	rightHash uint64
}

func (s *entrySlot[L, R]) entry() Entry[L, R] {
	return Entry[L, R]{Left: s.left, Right: s.right}
}

func (m *Map[L, R]) leftHashOf(h handle) uint64 {
	return m.entries[h].leftHash
}

func (m *Map[L, R]) rightHashOf(h handle) uint64 {
	return m.entries[h].rightHash
}

// removeSlot drops an entry that no index refers to anymore. The last entry
// is moved into the hole and both indices are relinked to it.
func (m *Map[L, R]) removeSlot(h handle) {
	last := handle(len(m.entries) - 1)

	if h != last {
		moved := m.entries[last]
		m.left.relink(m.left.locate(moved.leftHash, last), h)
		m.right.relink(m.right.locate(moved.rightHash, last), h)
		m.entries[h] = moved
	}

	m.entries[last] = entrySlot[L, R]{}
	m.entries = m.entries[:last]
}
