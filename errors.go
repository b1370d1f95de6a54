package stablebimap

import "errors"

var (
	// ErrTableFull is returned when an insertion needs a free slot and the map
	// cannot provide one: a fixed-capacity map reached its effective capacity,
	// or a growable map reached MaxCapacity. The map is left unchanged.
	ErrTableFull = errors.New("stablebimap: table is full")

	// ErrMutatedDuringIteration is the panic value raised by iterators when the
	// map was modified between two yielded entries.
	ErrMutatedDuringIteration = errors.New("stablebimap: map mutated during iteration")
)
