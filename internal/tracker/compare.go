package tracker

import (
	"cmp"
	"slices"
)

// ComparisonEntry is one run within a size group.
type ComparisonEntry struct {
	Result BenchmarkResult
	// Speedup is this run's time divided by the fastest run's time; 1.0 for
	// the fastest run itself.
	Speedup float64
}

// SizeGroup holds every run recorded for one array size.
type SizeGroup struct {
	ArraySize int
	Fastest   BenchmarkResult
	Entries   []ComparisonEntry
}

// Comparison groups runs by array size, ascending. Sizes with a single run
// are omitted. Ties for fastest go to the earliest run.
func (t *Tracker) Comparison() []SizeGroup {
	bySize := make(map[int][]BenchmarkResult)
	for _, r := range t.results {
		bySize[r.ArraySize] = append(bySize[r.ArraySize], r)
	}

	groups := make([]SizeGroup, 0, len(bySize))
	for size, runs := range bySize {
		if len(runs) < 2 {
			continue
		}

		fastest := 0
		for i, r := range runs {
			if r.ExecutionTime < runs[fastest].ExecutionTime {
				fastest = i
			}
		}

		g := SizeGroup{ArraySize: size, Fastest: runs[fastest]}
		for i, r := range runs {
			speedup := 1.0
			if i != fastest && runs[fastest].ExecutionTime > 0 {
				speedup = float64(r.ExecutionTime) / float64(runs[fastest].ExecutionTime)
			}
			g.Entries = append(g.Entries, ComparisonEntry{Result: r, Speedup: speedup})
		}
		groups = append(groups, g)
	}

	slices.SortFunc(groups, func(a, b SizeGroup) int { return cmp.Compare(a.ArraySize, b.ArraySize) })
	return groups
}
