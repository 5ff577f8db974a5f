// Package store persists benchmark runs across harness sessions in SQLite.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"git.home.luguber.info/inful/kadanebench/internal/kadane"
	"git.home.luguber.info/inful/kadanebench/internal/tracker"
)

// Run is a persisted benchmark run.
type Run struct {
	SessionID string
	tracker.BenchmarkResult
}

// SQLiteStore implements tracker.Sink using SQLite.
type SQLiteStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewSQLiteStore opens (and if needed creates) a run history database.
// Use ":memory:" for an in-memory database, or a file path for persistent storage.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// :memory: databases are per-connection.
	db.SetMaxOpenConns(1)

	store := &SQLiteStore{db: db}
	if err := store.initialize(); err != nil {
		_ = db.Close() // Best effort cleanup on initialization error
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		session_id TEXT NOT NULL,
		algorithm TEXT NOT NULL,
		array_size INTEGER NOT NULL,
		execution_nanos INTEGER NOT NULL,
		comparisons INTEGER NOT NULL,
		array_accesses INTEGER NOT NULL,
		memory_allocations INTEGER NOT NULL,
		assignments INTEGER NOT NULL,
		result INTEGER NOT NULL,
		recorded_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_runs_session ON runs(session_id);
	CREATE INDEX IF NOT EXISTS idx_runs_algorithm ON runs(algorithm);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Append stores one run.
func (s *SQLiteStore) Append(ctx context.Context, sessionID string, r tracker.BenchmarkResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, session_id, algorithm, array_size, execution_nanos,
			comparisons, array_accesses, memory_allocations, assignments, result, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID.String(), sessionID, r.Algorithm, r.ArraySize, r.ExecutionTime.Nanoseconds(),
		int64(r.Metrics.Comparisons), int64(r.Metrics.ArrayAccesses),
		int64(r.Metrics.MemoryAllocations), int64(r.Metrics.Assignments),
		r.Result, r.Timestamp.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

const selectRuns = `SELECT id, session_id, algorithm, array_size, execution_nanos,
	comparisons, array_accesses, memory_allocations, assignments, result, recorded_at FROM runs`

// Recent returns up to limit runs, newest first.
func (s *SQLiteStore) Recent(ctx context.Context, limit int) ([]Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, selectRuns+" ORDER BY seq DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// ByAlgorithm returns every run of one algorithm in insertion order.
func (s *SQLiteStore) ByAlgorithm(ctx context.Context, algorithm string) ([]Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, selectRuns+" WHERE algorithm = ? ORDER BY seq", algorithm)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// BySession returns every run recorded under sessionID in insertion order.
func (s *SQLiteStore) BySession(ctx context.Context, sessionID string) ([]Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, selectRuns+" WHERE session_id = ? ORDER BY seq", sessionID)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	var runs []Run
	for rows.Next() {
		var (
			run                                  Run
			id                                   string
			nanos, recorded                      int64
			comparisons, accesses, allocs, assns int64
		)
		err := rows.Scan(&id, &run.SessionID, &run.Algorithm, &run.ArraySize, &nanos,
			&comparisons, &accesses, &allocs, &assns, &run.Result, &recorded)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}

		run.ID, err = uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("parse run id %q: %w", id, err)
		}
		run.ExecutionTime = time.Duration(nanos)
		run.Timestamp = time.Unix(0, recorded)
		run.Metrics = kadane.Metrics{
			Comparisons:       uint64(comparisons),
			ArrayAccesses:     uint64(accesses),
			MemoryAllocations: uint64(allocs),
			Assignments:       uint64(assns),
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return runs, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}
