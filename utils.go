package stablebimap

import (
	"math/bits"
	"unsafe"
)

const (
	// DefaultCapacity is the number of slots a map starts with when none is
	// given, including the zero Map.
	DefaultCapacity = 32

	// MaxCapacity is the largest number of slots an index can have.
	MaxCapacity = 1 << 31
)

// Returns the next power of 2 for the given value `v`.
func NextPowerOf2(v uint32) uint32 {
	return uint32(1) << min(bits.Len32(v-1), 31)
}

// normalizeCapacity rounds a requested number of slots to a power of two
// holding at least one group.
func normalizeCapacity(capacity uintptr) uintptr {
	capacity = min(max(capacity, groupSize), MaxCapacity)
	return uintptr(NextPowerOf2(uint32(capacity)))
}

// Estimates capacity (number of slots) from the given memory size in bytes.
//
// A group of slots costs one group in each index plus the arena space of the
// 7 entries it can effectively hold.
func CapacityFromSize[L, R comparable](size uintptr) int {
	groupCost := 2*unsafe.Sizeof(group{}) + (groupSize*7/8)*unsafe.Sizeof(entrySlot[L, R]{})
	numGroups := size / groupCost

	return int(numGroups * groupSize)
}
