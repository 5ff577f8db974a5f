package logfields

import (
	"errors"
	"log/slog"
	"testing"
	"time"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"Algorithm", KeyAlgorithm, "Standard", Algorithm("Standard")},
		{"RunID", KeyRunID, "r1", RunID("r1")},
		{"SessionID", KeySessionID, "s1", SessionID("s1")},
		{"Command", KeyCommand, "sweep", Command("sweep")},
		{"Path", KeyPath, "/tmp/x.csv", Path("/tmp/x.csv")},
		{"ArraySize", KeyArraySize, "100", ArraySize(100)},
		{"Count", KeyCount, "3", Count(3)},
		{"MaxSum", KeyMaxSum, "-7", MaxSum(-7)},
		{"Error", KeyError, "boom", Error(errors.New("boom"))},
		{"NilError", KeyError, "", Error(nil)},
	}

	for _, tc := range cases {
		if tc.attr.Key != tc.attrKey {
			// Key drift would break log ingestion schemas.
			t.Fatalf("%s: expected key %s, got %s", tc.name, tc.attrKey, tc.attr.Key)
		}
		if got := tc.attr.Value.String(); got != tc.attrVal {
			t.Fatalf("%s: expected value %s, got %v", tc.name, tc.attrVal, got)
		}
	}
}

func TestDurationMS(t *testing.T) {
	a := DurationMS(1500 * time.Microsecond)
	if a.Key != KeyDurationMS {
		t.Fatalf("key = %s", a.Key)
	}
	if got := a.Value.Float64(); got != 1.5 {
		t.Fatalf("value = %v, want 1.5", got)
	}
}
