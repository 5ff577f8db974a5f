package kadane

import "fmt"

// Metrics is an immutable snapshot of the operation counts of one run.
type Metrics struct {
	Comparisons       uint64
	ArrayAccesses     uint64
	MemoryAllocations uint64
	Assignments       uint64
}

func (m Metrics) String() string {
	return fmt.Sprintf("Metrics[comparisons=%d, arrayAccesses=%d, memoryAllocations=%d, assignments=%d]",
		m.Comparisons, m.ArrayAccesses, m.MemoryAllocations, m.Assignments)
}

// Counter accumulates operation counts during exactly one algorithm run.
// It is not safe for concurrent use.
type Counter struct {
	comparisons       uint64
	arrayAccesses     uint64
	memoryAllocations uint64
	assignments       uint64
}

// NewCounter returns a zeroed counter.
func NewCounter() *Counter { return &Counter{} }

// Inc* methods count one operation of the named kind.
func (c *Counter) IncComparisons()       { c.comparisons++ }
func (c *Counter) IncArrayAccesses()     { c.arrayAccesses++ }
func (c *Counter) IncMemoryAllocations() { c.memoryAllocations++ }
func (c *Counter) IncAssignments()       { c.assignments++ }

// Reset zeroes all counters so the instance can be reused.
func (c *Counter) Reset() {
	*c = Counter{}
}

// Snapshot copies the current counts. Later increments do not affect the
// returned value.
func (c *Counter) Snapshot() Metrics {
	return Metrics{
		Comparisons:       c.comparisons,
		ArrayAccesses:     c.arrayAccesses,
		MemoryAllocations: c.memoryAllocations,
		Assignments:       c.assignments,
	}
}
