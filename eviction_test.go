package stablebimap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_String(t *testing.T) {
	tests := map[Status]string{
		Inserted:     "inserted",
		Unchanged:    "unchanged",
		Replaced:     "replaced",
		ReplacedBoth: "replaced-both",
		Status(42):   "unknown",
	}

	for status, want := range tests {
		assert.Equal(t, want, status.String())
	}
}

func TestEvictionResult(t *testing.T) {
	var none EvictionResult[int, int]
	assert.Zero(t, none.Len())
	assert.Nil(t, none.Evicted())

	_, ok := none.EvictedByLeft()
	assert.False(t, ok)

	right := EvictionResult[int, int]{Status: Replaced, byRight: Entry[int, int]{1, 2}, hasByRight: true}
	assert.Equal(t, 1, right.Len())
	assert.Equal(t, []Entry[int, int]{{1, 2}}, right.Evicted())

	both := EvictionResult[int, int]{
		Status:     ReplacedBoth,
		byLeft:     Entry[int, int]{1, 3},
		byRight:    Entry[int, int]{2, 2},
		hasByLeft:  true,
		hasByRight: true,
	}
	assert.Equal(t, 2, both.Len())
	assert.Equal(t, []Entry[int, int]{{1, 3}, {2, 2}}, both.Evicted())
}
