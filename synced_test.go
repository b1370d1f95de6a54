package stablebimap

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynced_Concurrent(t *testing.T) {
	s := NewSynced[int, int](nil)

	const workers, perWorker = 8, 200

	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range perWorker {
				l := w*perWorker + i
				_, err := s.Insert(l, -l)
				assert.NoError(t, err)

				r, ok := s.GetByLeft(l)
				assert.True(t, ok)
				assert.Equal(t, -l, r)

				if i%2 == 0 {
					_, ok = s.RemoveByRight(-l)
					assert.True(t, ok)
				}
			}
		}()
	}

	// Readers iterate while writers run.
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for range 50 {
				s.Range(func(l, r int) bool {
					assert.Equal(t, -l, r)
					return true
				})
				_ = s.Len()
			}
		}()
	}

	wg.Wait()

	require.Equal(t, workers*perWorker/2, s.Len())
	for _, e := range s.Entries() {
		assert.True(t, s.ContainsLeft(e.Left))
		assert.True(t, s.ContainsRight(e.Right))
		assert.Equal(t, 1, e.Left%2)
	}

	s.Update(func(m *Map[int, int]) {
		requireConsistent(t, m)
	})
}

func TestSynced_Update(t *testing.T) {
	s := NewSynced(New[string, int](16))

	ok, err := s.TryInsert("a", 1)
	require.NoError(t, err)
	require.True(t, ok)

	s.Update(func(m *Map[string, int]) {
		if r, ok := m.GetByLeft("a"); ok {
			m.RemoveByLeft("a")
			_, err := m.Insert("b", r+1)
			require.NoError(t, err)
		}
	})

	l, ok := s.GetByRight(2)
	require.True(t, ok)
	assert.Equal(t, "b", l)

	s.Clear()
	assert.Zero(t, s.Len())
}
