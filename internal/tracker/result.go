package tracker

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/kadanebench/internal/kadane"
)

// TimestampLayout is the ISO-8601 local date-time form used in CSV rows.
const TimestampLayout = "2006-01-02T15:04:05.999999999"

// CSVHeader lists the export columns in order.
var CSVHeader = []string{
	"Algorithm", "ArraySize", "ExecutionTimeMs", "ExecutionTimeMicros",
	"Comparisons", "ArrayAccesses", "MemoryAllocations", "Assignments",
	"Result", "Timestamp",
}

// BenchmarkResult is one recorded, timed algorithm run.
type BenchmarkResult struct {
	ID            uuid.UUID
	Algorithm     string
	ArraySize     int
	ExecutionTime time.Duration
	Metrics       kadane.Metrics
	Result        int64
	Timestamp     time.Time
}

// Millis returns the execution time in fractional milliseconds.
func (r BenchmarkResult) Millis() float64 {
	return float64(r.ExecutionTime.Nanoseconds()) / 1_000_000.0
}

// Micros returns the execution time in fractional microseconds.
func (r BenchmarkResult) Micros() float64 {
	return float64(r.ExecutionTime.Nanoseconds()) / 1_000.0
}

func (r BenchmarkResult) String() string {
	return fmt.Sprintf("%s (size=%d): %d result, %.3f ms, %s",
		r.Algorithm, r.ArraySize, r.Result, r.Millis(), r.Metrics)
}

// CSVRecord renders the result as one row matching CSVHeader.
func (r BenchmarkResult) CSVRecord() []string {
	return []string{
		r.Algorithm,
		strconv.Itoa(r.ArraySize),
		strconv.FormatFloat(r.Millis(), 'f', 3, 64),
		strconv.FormatFloat(r.Micros(), 'f', 3, 64),
		strconv.FormatUint(r.Metrics.Comparisons, 10),
		strconv.FormatUint(r.Metrics.ArrayAccesses, 10),
		strconv.FormatUint(r.Metrics.MemoryAllocations, 10),
		strconv.FormatUint(r.Metrics.Assignments, 10),
		strconv.FormatInt(r.Result, 10),
		r.Timestamp.Format(TimestampLayout),
	}
}
