package stablebimap

// index is a swiss table of arena handles, one per side of the map.
//
// It never stores keys. Key equality is answered by the caller through a
// match function, and the digest of every stored handle is cached in the
// arena, so rehashing never needs the user's HashFunc.
//
// Mutations are split in two: reserve/find only probe, while place, erase and
// relink only write. The map does all probing for an operation first, so a
// panic in user code can never leave one index half updated.
type index struct {
	groups []group

	capacity          uintptr
	numGroupsMask     uintptr
	capacityEffective uintptr
	size              uintptr
	tombstones        uintptr
}

// position addresses a single slot of an index.
type position struct {
	group uintptr
	slot  uintptr
}

func (ix *index) init(capacity uintptr) {
	normalizedCapacity := normalizeCapacity(capacity)
	numGroups := normalizedCapacity / groupSize

	ix.groups = make([]group, numGroups)
	ix.capacity = normalizedCapacity
	ix.numGroupsMask = numGroups - 1
	ix.capacityEffective = normalizedCapacity * 7 / 8

	ix.reset()
}

func (ix *index) reset() {
	for i := range ix.groups {
		copy(ix.groups[i].ctrls[:], emptyCtrls[:])
	}

	ix.size = 0
	ix.tombstones = 0
}

// find returns the slot holding the handle for which match reports true.
func (ix *index) find(hash uint64, match func(handle) bool) (position, bool) {
	if len(ix.groups) == 0 {
		return position{}, false
	}

	h1, h2 := HashSplit(hash)
	mask := ix.numGroupsMask
	start := (h1 / groupSize) & mask

	for p, offset := uintptr(0), start; p <= mask; p++ {
		g := &ix.groups[offset]
		ctrl := ctrlWord(&g.ctrls)

		// SIMD-like match
		matches := matchH2(ctrl, h2)
		for matches != 0 {
			idx := matches.first()
			if match(g.handles[idx]) {
				return position{group: offset, slot: idx}, true
			}

			matches = matches.removeFirst()
		}

		// Termination
		if matchEmpty(ctrl) != 0 {
			return position{}, false
		}

		// Quadratic probe math
		offset = (start + (p+1)*(p+2)/2) & mask
	}

	return position{}, false
}

// locate returns the slot of a handle known to be stored under hash.
func (ix *index) locate(hash uint64, h handle) position {
	pos, ok := ix.find(hash, func(x handle) bool { return x == h })
	if !ok {
		panic("stablebimap: index lost track of an entry")
	}

	return pos
}

// reserve picks the slot a new key with the given hash would occupy. The key
// must be absent. freeing tells that the caller erases one slot of this index
// in the same operation.
//
// Reusing a tombstone is always allowed. Claiming an empty slot is allowed
// while size+tombstones stays within the effective capacity, which keeps
// every probe sequence terminated by an empty slot. When reserve fails the
// index needs compaction or growth first.
func (ix *index) reserve(hash uint64, freeing bool) (position, bool) {
	if len(ix.groups) == 0 {
		return position{}, false
	}

	limit := ix.capacityEffective
	if freeing {
		limit++
	}

	h1, _ := HashSplit(hash)
	mask := ix.numGroupsMask
	start := (h1 / groupSize) & mask

	for p, offset := uintptr(0), start; p <= mask; p++ {
		g := &ix.groups[offset]
		matchMask := matchEmptyOrDeleted(ctrlWord(&g.ctrls))
		if matchMask != 0 {
			idx := matchMask.first()
			if g.ctrls[idx] == slotEmpty && ix.size+ix.tombstones >= limit {
				return position{}, false
			}

			return position{group: offset, slot: idx}, true
		}

		offset = (start + (p+1)*(p+2)/2) & mask
	}

	return position{}, false
}

func (ix *index) handleAt(pos position) handle {
	return ix.groups[pos.group].handles[pos.slot]
}

// place stores a handle in a slot returned by reserve.
func (ix *index) place(pos position, hash uint64, h handle) {
	_, h2 := HashSplit(hash)
	g := &ix.groups[pos.group]

	if g.ctrls[pos.slot] == slotDeleted {
		ix.tombstones--
	}

	g.ctrls[pos.slot] = h2
	g.handles[pos.slot] = h
	ix.size++
}

// relink points an occupied slot to another handle.
func (ix *index) relink(pos position, h handle) {
	ix.groups[pos.group].handles[pos.slot] = h
}

func (ix *index) erase(pos position) {
	g := &ix.groups[pos.group]

	// A group that still has an empty slot never made a probe continue past
	// it, so the slot can go straight back to empty.
	if matchEmpty(ctrlWord(&g.ctrls)) != 0 {
		g.ctrls[pos.slot] = slotEmpty
	} else {
		// Mark as Deleted (0xFE) to preserve the probe chain
		g.ctrls[pos.slot] = slotDeleted
		ix.tombstones++
	}

	ix.size--
}

// clone returns a deep copy of the index.
func (ix *index) clone() index {
	out := *ix
	out.groups = make([]group, len(ix.groups))
	copy(out.groups, ix.groups)

	return out
}

// rebuild returns a new index of the given capacity holding handles
// [0, n), each stored under hashOf(handle).
func rebuild(capacity uintptr, n int, hashOf func(handle) uint64) index {
	var ix index
	ix.init(capacity)

	for i := range n {
		h := handle(i)
		hash := hashOf(h)

		pos, ok := ix.reserve(hash, false)
		if !ok {
			panic("stablebimap: rebuilt index is too small")
		}

		ix.place(pos, hash, h)
	}

	return ix
}

// compact drops every tombstone in place, without allocating.
func (ix *index) compact(hashOf func(handle) uint64) {
	// We want to drop all of the deletes in place. We first walk over the
	// control bytes and mark every DELETED slot as EMPTY and every FULL slot
	// as DELETED. Marking the DELETED slots as EMPTY has effectively dropped
	// the tombstones, but we fouled up the probe invariant. Marking the FULL
	// slots as DELETED gives us a marker to locate the previously FULL slots.
	for i := range ix.groups {
		g := &ix.groups[i]
		storeCtrlWord(&g.ctrls, invertCtrls(ctrlWord(&g.ctrls)))
	}

	for idx := range ix.groups {
		g := &ix.groups[idx]
		for j := uintptr(0); j < groupSize; j++ {
			// Only slots marked Deleted above (previously Full)
			if g.ctrls[j] != slotDeleted {
				continue
			}

			var (
				h        = g.handles[j]
				h1, h2   = HashSplit(hashOf(h))
				currGIdx = (h1 / groupSize) & ix.numGroupsMask

				targetGroup *group
				targetSlot  uintptr
			)

			for p := uintptr(0); ; {
				tg := &ix.groups[currGIdx]
				m := matchEmptyOrDeleted(ctrlWord(&tg.ctrls))
				if m != 0 {
					targetGroup = tg
					targetSlot = m.first()
					break
				}

				p++
				currGIdx = (currGIdx + p) & ix.numGroupsMask
			}

			switch {
			case targetGroup == g && targetSlot == j:
				// Already home
				g.ctrls[j] = h2
			case targetGroup.ctrls[targetSlot] == slotEmpty:
				targetGroup.ctrls[targetSlot] = h2
				targetGroup.handles[targetSlot] = h
				g.ctrls[j] = slotEmpty
			default:
				// The target holds a handle still waiting to be moved:
				// swap and process the swapped-in handle next.
				targetGroup.ctrls[targetSlot] = h2
				g.handles[j], targetGroup.handles[targetSlot] = targetGroup.handles[targetSlot], g.handles[j]
				j--
			}
		}
	}

	ix.tombstones = 0
}
