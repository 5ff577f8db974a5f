package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/kadanebench/internal/kadane"
	"git.home.luguber.info/inful/kadanebench/internal/tracker"
)

func sampleRun(algorithm string, size int, result int64) tracker.BenchmarkResult {
	return tracker.BenchmarkResult{
		ID:            uuid.New(),
		Algorithm:     algorithm,
		ArraySize:     size,
		ExecutionTime: 1234 * time.Nanosecond,
		Metrics:       kadane.Metrics{Comparisons: uint64(3*size - 2), ArrayAccesses: uint64(size + 1), MemoryAllocations: 2, Assignments: 42},
		Result:        result,
		Timestamp:     time.Unix(1_700_000_000, 123),
	}
}

func TestSQLiteStoreAppendAndQuery(t *testing.T) {
	s, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	ctx := t.Context()
	first := sampleRun("Standard", 100, -3)
	require.NoError(t, s.Append(ctx, "session-a", first))
	require.NoError(t, s.Append(ctx, "session-a", sampleRun("Optimized", 100, -3)))
	require.NoError(t, s.Append(ctx, "session-b", sampleRun("Standard", 1000, 77)))

	recent, err := s.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, 1000, recent[0].ArraySize)
	assert.Equal(t, "session-b", recent[0].SessionID)
	assert.Equal(t, "Optimized", recent[1].Algorithm)

	std, err := s.ByAlgorithm(ctx, "Standard")
	require.NoError(t, err)
	require.Len(t, std, 2)
	assert.Equal(t, first.ID, std[0].ID)
	assert.Equal(t, first.Metrics, std[0].Metrics)
	assert.Equal(t, first.ExecutionTime, std[0].ExecutionTime)
	assert.True(t, first.Timestamp.Equal(std[0].Timestamp))
	assert.Equal(t, int64(-3), std[0].Result)

	sess, err := s.BySession(ctx, "session-a")
	require.NoError(t, err)
	assert.Len(t, sess, 2)
}

func TestSQLiteStoreRejectsDuplicateID(t *testing.T) {
	s, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	r := sampleRun("Standard", 10, 1)
	require.NoError(t, s.Append(t.Context(), "s", r))
	assert.Error(t, s.Append(t.Context(), "s", r))
}

func TestSQLiteStorePersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	s, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Append(t.Context(), "s1", sampleRun("Standard", 5, 9)))
	require.NoError(t, s.Close())

	s, err = NewSQLiteStore(path)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	runs, err := s.Recent(t.Context(), 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, int64(9), runs[0].Result)
}

func TestSQLiteStoreAsTrackerSink(t *testing.T) {
	s, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	tr := tracker.New(tracker.WithSink(s))
	tr.Add("Optimized", 3, time.Microsecond, kadane.Metrics{Comparisons: 7}, 6)

	runs, err := s.BySession(t.Context(), tr.SessionID())
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, uint64(7), runs[0].Metrics.Comparisons)
}
