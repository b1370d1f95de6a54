package stablebimap

import (
	"strconv"
	"testing"
)

var sizes = []int{
	// 8192,
	1 << 16,
	1 << 20,
}

func BenchmarkGetByLeft_Hit(b *testing.B) {
	b.Run("variant=stdMaps", func(b *testing.B) {
		b.Run("K=string", benchSimulateLoad(benchmarkStdMapsGetHit[string], genKeys[string]))
		b.Run("K=uint64", benchSimulateLoad(benchmarkStdMapsGetHit[uint64], genKeys[uint64]))
	})

	b.Run("variant=stableBimap", func(b *testing.B) {
		b.Run("K=string", benchSimulateLoad(benchmarkStableBimapGetHit[string], genKeys[string]))
		b.Run("K=uint64", benchSimulateLoad(benchmarkStableBimapGetHit[uint64], genKeys[uint64]))
	})
}

func BenchmarkGetByRight_Miss(b *testing.B) {
	b.Run("variant=stdMaps", func(b *testing.B) {
		b.Run("K=uint64", benchSimulateLoad(benchmarkStdMapsGetMiss[uint64], genKeys[uint64]))
	})

	b.Run("variant=stableBimap", func(b *testing.B) {
		b.Run("K=uint64", benchSimulateLoad(benchmarkStableBimapGetMiss[uint64], genKeys[uint64]))
	})
}

func BenchmarkInsert_Replace(b *testing.B) {
	b.Run("variant=stdMaps", func(b *testing.B) {
		b.Run("K=uint64", benchSimulateLoad(benchmarkStdMapsReplace[uint64], genKeys[uint64]))
	})

	b.Run("variant=stableBimap", func(b *testing.B) {
		b.Run("K=uint64", benchSimulateLoad(benchmarkStableBimapReplace[uint64], genKeys[uint64]))
	})
}

// stdMaps is the usual hand-written pair of builtin maps.
type stdMaps[K comparable] struct {
	forward  map[K]K
	backward map[K]K
}

func newStdMaps[K comparable](capacity int) *stdMaps[K] {
	return &stdMaps[K]{
		forward:  make(map[K]K, capacity),
		backward: make(map[K]K, capacity),
	}
}

func (m *stdMaps[K]) insert(l, r K) {
	if old, ok := m.forward[l]; ok {
		delete(m.backward, old)
	}
	if old, ok := m.backward[r]; ok {
		delete(m.forward, old)
	}

	m.forward[l] = r
	m.backward[r] = l
}

func fill[K comparable](capacity int, genKeys func(start, end int) []K) (lefts, rights []K) {
	n := capacity * 7 / 8
	return genKeys(0, n), genKeys(n, 2*n)
}

func benchmarkStdMapsGetHit[K comparable](
	b *testing.B,
	capacity int,
	genKeys func(start, end int) []K,
) {
	m := newStdMaps[K](capacity)
	lefts, rights := fill(capacity, genKeys)
	for i := range lefts {
		m.insert(lefts[i], rights[i])
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.forward[lefts[i%len(lefts)]]
	}
}

func benchmarkStableBimapGetHit[K comparable](
	b *testing.B,
	capacity int,
	genKeys func(start, end int) []K,
) {
	m := New[K, K](capacity)
	lefts, rights := fill(capacity, genKeys)
	for i := range lefts {
		if _, err := m.Insert(lefts[i], rights[i]); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.GetByLeft(lefts[i%len(lefts)])
	}
}

func benchmarkStdMapsGetMiss[K comparable](
	b *testing.B,
	capacity int,
	genKeys func(start, end int) []K,
) {
	m := newStdMaps[K](capacity)
	lefts, rights := fill(capacity, genKeys)
	for i := range lefts {
		m.insert(lefts[i], rights[i])
	}
	misses := genKeys(-capacity, 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.backward[misses[i%len(misses)]]
	}
}

func benchmarkStableBimapGetMiss[K comparable](
	b *testing.B,
	capacity int,
	genKeys func(start, end int) []K,
) {
	m := New[K, K](capacity)
	lefts, rights := fill(capacity, genKeys)
	for i := range lefts {
		if _, err := m.Insert(lefts[i], rights[i]); err != nil {
			b.Fatal(err)
		}
	}
	misses := genKeys(-capacity, 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.GetByRight(misses[i%len(misses)])
	}
}

// Replace benchmarks rotate the right values, so every insertion evicts one
// entry by its left value.
func benchmarkStdMapsReplace[K comparable](
	b *testing.B,
	capacity int,
	genKeys func(start, end int) []K,
) {
	m := newStdMaps[K](capacity)
	lefts, rights := fill(capacity, genKeys)
	spare := genKeys(-len(lefts), 0)
	for i := range lefts {
		m.insert(lefts[i], rights[i])
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		j := i % len(lefts)
		if (i/len(lefts))%2 == 0 {
			m.insert(lefts[j], spare[j])
		} else {
			m.insert(lefts[j], rights[j])
		}
	}
}

func benchmarkStableBimapReplace[K comparable](
	b *testing.B,
	capacity int,
	genKeys func(start, end int) []K,
) {
	m := New[K, K](capacity)
	lefts, rights := fill(capacity, genKeys)
	spare := genKeys(-len(lefts), 0)
	for i := range lefts {
		if _, err := m.Insert(lefts[i], rights[i]); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		j := i % len(lefts)
		if (i/len(lefts))%2 == 0 {
			_, _ = m.Insert(lefts[j], spare[j])
		} else {
			_, _ = m.Insert(lefts[j], rights[j])
		}
	}
}

func genKeys[K comparable](start, end int) []K {
	var k K
	switch any(k).(type) {
	case uint32:
		keys := make([]uint32, end-start)
		for i := range keys {
			keys[i] = uint32(start + i)
		}
		return unsafeConvertSlice[K](keys)
	case uint64:
		keys := make([]uint64, end-start)
		for i := range keys {
			keys[i] = uint64(start + i)
		}
		return unsafeConvertSlice[K](keys)
	case string:
		keys := make([]string, end-start)
		for i := range keys {
			keys[i] = strconv.Itoa(start + i)
		}
		return unsafeConvertSlice[K](keys)
	default:
		panic("not reached")
	}
}

func benchSimulateLoad[K comparable](
	benchFunc func(b *testing.B, capacity int, keysFunc func(start, end int) []K),
	keysFunc func(start, end int) []K,
) func(b *testing.B) {
	return func(b *testing.B) {
		for _, size := range sizes {
			b.Run("capacity="+strconv.Itoa(size), func(b *testing.B) {
				benchFunc(b, size, keysFunc)
			})
		}
	}
}
