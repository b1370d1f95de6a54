package stablebimap

const groupSize = 8

// handle is the position of an entry in the arena.
type handle uint32

type group struct {
	// 8 bytes of metadata (h2 or control states), loaded as one uint64.
	ctrls [groupSize]uint8

	// Arena handles, not keys: both indices resolve keys through the arena,
	// so every L and R value is stored exactly once.
	// A group is 8 + 8*4 = 40 bytes and fits in a single cache line.
	handles [groupSize]handle
}

var emptyCtrls = [groupSize]uint8{
	slotEmpty,
	slotEmpty,
	slotEmpty,
	slotEmpty,

	slotEmpty,
	slotEmpty,
	slotEmpty,
	slotEmpty,
}
