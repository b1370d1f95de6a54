package stablebimap

// Stats describes the occupancy of a map's two indices.
type Stats struct {
	Size              int
	Capacity          int
	EffectiveCapacity int

	// Tombstones left behind by removals, per index.
	LeftTombstones  int
	RightTombstones int

	TombstonesCapacityRatio float32
	TombstonesSizeRatio     float32
}

func (m *Map[L, R]) Stats() Stats {
	stats := Stats{
		Size:              len(m.entries),
		Capacity:          int(m.left.capacity),
		EffectiveCapacity: int(m.left.capacityEffective),
		LeftTombstones:    int(m.left.tombstones),
		RightTombstones:   int(m.right.tombstones),
	}

	tombstones := float32(stats.LeftTombstones + stats.RightTombstones)
	if stats.Capacity > 0 {
		stats.TombstonesCapacityRatio = tombstones / float32(2*stats.Capacity)
	}
	if stats.Size > 0 {
		stats.TombstonesSizeRatio = tombstones / float32(2*stats.Size)
	}

	return stats
}
