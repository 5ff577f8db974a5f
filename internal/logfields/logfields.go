package logfields

import (
	"log/slog"
	"time"
)

// Canonical log field name constants to avoid drift across packages.
const (
	KeyAlgorithm  = "algorithm"
	KeyArraySize  = "array_size"
	KeyDurationMS = "duration_ms"
	KeyRunID      = "run_id"
	KeySessionID  = "session_id"
	KeyCommand    = "command"
	KeyPath       = "path"
	KeyCount      = "count"
	KeyMaxSum     = "max_sum"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Algorithm(name string) slog.Attr { return slog.String(KeyAlgorithm, name) }
func ArraySize(n int) slog.Attr       { return slog.Int(KeyArraySize, n) }
func RunID(id string) slog.Attr       { return slog.String(KeyRunID, id) }
func SessionID(id string) slog.Attr   { return slog.String(KeySessionID, id) }
func Command(c string) slog.Attr      { return slog.String(KeyCommand, c) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func MaxSum(s int64) slog.Attr        { return slog.Int64(KeyMaxSum, s) }

// DurationMS renders d as fractional milliseconds.
func DurationMS(d time.Duration) slog.Attr {
	return slog.Float64(KeyDurationMS, float64(d)/float64(time.Millisecond))
}

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
