package stablebimap

// Entry is a pair of associated values.
type Entry[L, R comparable] struct {
	Left  L `json:"left"`
	Right R `json:"right"`
}

// Status tells what an insertion did to the map.
type Status uint8

const (
	// Inserted means neither value was present; nothing was evicted.
	Inserted Status = iota
	// Unchanged means the exact pair was already present.
	Unchanged
	// Replaced means one stale entry was evicted.
	Replaced
	// ReplacedBoth means two stale entries were evicted, one holding the left
	// value and one holding the right value. The map shrank by one.
	ReplacedBoth
)

func (s Status) String() string {
	switch s {
	case Inserted:
		return "inserted"
	case Unchanged:
		return "unchanged"
	case Replaced:
		return "replaced"
	case ReplacedBoth:
		return "replaced-both"
	default:
		return "unknown"
	}
}

// EvictionResult reports the outcome of Map.Insert and the entries it
// evicted, so callers can release resources tied to them.
type EvictionResult[L, R comparable] struct {
	Status Status

	byLeft  Entry[L, R]
	byRight Entry[L, R]

	hasByLeft  bool
	hasByRight bool
}

// EvictedByLeft returns the entry evicted because it held the inserted left
// value, i.e. (l, r') with r' != r.
func (er EvictionResult[L, R]) EvictedByLeft() (Entry[L, R], bool) {
	return er.byLeft, er.hasByLeft
}

// EvictedByRight returns the entry evicted because it held the inserted right
// value, i.e. (l', r) with l' != l.
func (er EvictionResult[L, R]) EvictedByRight() (Entry[L, R], bool) {
	return er.byRight, er.hasByRight
}

// Len returns the number of evicted entries: 0, 1 or 2.
func (er EvictionResult[L, R]) Len() int {
	n := 0
	if er.hasByLeft {
		n++
	}
	if er.hasByRight {
		n++
	}

	return n
}

// Evicted returns the evicted entries, the one holding the left value first.
func (er EvictionResult[L, R]) Evicted() []Entry[L, R] {
	if er.Len() == 0 {
		return nil
	}

	out := make([]Entry[L, R], 0, 2)
	if er.hasByLeft {
		out = append(out, er.byLeft)
	}
	if er.hasByRight {
		out = append(out, er.byRight)
	}

	return out
}
