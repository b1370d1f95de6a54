package stablebimap

import (
	"math/bits"
	"unsafe"
)

const (
	slotEmpty   = 0x80
	slotDeleted = 0xFE

	bitsetLSB = 0x0101010101010101
	bitsetMSB = 0x8080808080808080
)

// bitset represents a set of slots within a group.
//
// The underlying representation uses one byte per slot, where each byte is
// either 0x80 if the slot is part of the set or 0x00 otherwise. This makes it
// convenient to calculate for an entire group at once (e.g. see matchEmpty).
type bitset uint64

// first returns the relative index of the first slot in the set.
// Returns groupSize if the bitset is empty.
func (b bitset) first() uintptr {
	return uintptr(bits.TrailingZeros64(uint64(b)) >> 3)
}

// removeFirst resets the lowest slot of the set.
func (b bitset) removeFirst() bitset {
	return b & ^(bitset(slotEmpty) << (bits.TrailingZeros64(uint64(b)) & ^7))
}

// ctrlWord loads the 8 control bytes of a group as a single word.
//
//go:inline
func ctrlWord(ctrls *[groupSize]uint8) uint64 {
	return *(*uint64)(unsafe.Pointer(ctrls))
}

//go:inline
func storeCtrlWord(ctrls *[groupSize]uint8, word uint64) {
	*(*uint64)(unsafe.Pointer(ctrls)) = word
}

//go:inline
func matchH2(group uint64, h2 uint8) bitset {
	v := group ^ (bitsetLSB * uint64(h2))
	return bitset(((v - bitsetLSB) &^ v) & bitsetMSB)
}

// matchEmpty: MSB set and bit 1 clear.
// (0x80 is 10000000, 0xFE is 11111110)
//
//go:inline
func matchEmpty(group uint64) bitset {
	return bitset((group &^ (group << 6)) & bitsetMSB)
}

// matchEmptyOrDeleted: MSB set. Full slots hold a 7-bit h2.
//
//go:inline
func matchEmptyOrDeleted(group uint64) bitset {
	return bitset(group & bitsetMSB)
}

//go:inline
func matchFull(group uint64) bitset {
	return bitset(^group & bitsetMSB)
}

// invertCtrls prepares a group for in-place rehashing:
// Full (0x00-0x7F) -> Deleted (0xFE)
// Deleted (0xFE) -> Empty (0x80)
// Empty (0x80) -> Empty (0x80)
//
//go:inline
func invertCtrls(ctrl uint64) uint64 {
	isFull := ^ctrl & bitsetMSB

	// Spread 0x80 -> 0xFE for full slots (bits 7-1 set, bit 0 clear)
	fullResult := isFull | (isFull >> 1) | (isFull >> 2) | (isFull >> 3) |
		(isFull >> 4) | (isFull >> 5) | (isFull >> 6)

	return fullResult | (ctrl & bitsetMSB)
}
