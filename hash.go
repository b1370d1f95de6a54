package stablebimap

import (
	"encoding/binary"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// HashFunc maps a key to a 64-bit digest.
//
// A HashFunc must be deterministic for the lifetime of a map and consistent
// with ==: equal keys must produce equal digests. The map does not detect a
// misbehaving HashFunc.
type HashFunc[K comparable] func(K) uint64

// MakeDefaultHashFunc returns the hash used by Go's builtin map for
// comparable keys, keyed by seed. Digests are only stable within a process.
func MakeDefaultHashFunc[K comparable](seed maphash.Seed) HashFunc[K] {
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

// XXHashString hashes string keys with xxHash64.
// Unlike the default hash, digests are stable across processes.
func XXHashString[K ~string](k K) uint64 {
	return xxhash.Sum64String(string(k))
}

type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// XXHashInteger hashes integer keys with xxHash64 over their little-endian
// 64-bit representation.
func XXHashInteger[K integer](k K) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(k))

	return xxhash.Sum64(buf[:])
}

// MakeXXHashFunc builds an xxHash64 HashFunc for composite keys. write must
// feed every field that takes part in == into the digest, and nothing else.
func MakeXXHashFunc[K comparable](write func(d *xxhash.Digest, k K)) HashFunc[K] {
	return func(k K) uint64 {
		var d xxhash.Digest
		d.Reset()
		write(&d, k)

		return d.Sum64()
	}
}

// HashSplit splits a digest into the probe start (h1) and the 7 bits kept in
// the control byte (h2).
func HashSplit(hash uint64) (uintptr, uint8) {
	h1 := uintptr(hash >> 7)
	h2 := uint8(hash & 0x7F)

	return h1, h2
}
