package harness

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/kadanebench/internal/config"
	"git.home.luguber.info/inful/kadanebench/internal/errors"
	"git.home.luguber.info/inful/kadanebench/internal/kadane"
	"git.home.luguber.info/inful/kadanebench/internal/store"
	"git.home.luguber.info/inful/kadanebench/internal/tracker"
)

var sessionStart = time.Date(2025, 6, 1, 12, 30, 0, 0, time.Local)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.ResultsDir = filepath.Join(t.TempDir(), "results")
	cfg.Random.MaxSize = 50
	cfg.Comparison.Sizes = []int{10, 20}
	cfg.Sweep.Sizes = []int{5, 10}
	cfg.Sweep.Ranges = []config.ValueRange{{Min: -5, Max: 5}, {Min: -10, Max: 10}}
	return cfg
}

func newTestRunner(t *testing.T, input string, opts ...Option) (*Runner, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	tr := tracker.New(tracker.WithClock(func() time.Time { return sessionStart }))
	opts = append([]Option{WithRand(NewRand(42))}, opts...)
	return NewRunner(strings.NewReader(input), &out, testConfig(t), tr, opts...), &out
}

func TestRunMenu(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string
		absent   []string
	}{
		{
			name:     "exit immediately",
			input:    "10\n",
			contains: []string{"Choose an option:", "10. Exit", "Enter your choice (1-10): "},
			absent:   []string{"Press Enter to continue..."},
		},
		{
			name:     "end of input exits",
			input:    "",
			contains: []string{"Choose an option:"},
		},
		{
			name:     "invalid choice",
			input:    "abc\n\n10\n",
			contains: []string{"Invalid choice. Please try again.", "Press Enter to continue..."},
		},
		{
			name:     "out of range choice",
			input:    "42\n\n10\n",
			contains: []string{"Invalid choice. Please try again."},
		},
		{
			name:     "custom array",
			input:    "1\n-2 1 -3 4 -1 2 1 -5 4\n\n10\n",
			contains: []string{"Result: Max Sum: 6, Range: [3, 6]", "Subarray: [4, -1, 2, 1]"},
		},
		{
			name:     "custom array with malformed value",
			input:    "1\n1 x 3\n\n10\n",
			contains: []string{"Invalid input. Please enter valid integers."},
			absent:   []string{"Result:"},
		},
		{
			name:     "custom array out of int32 range",
			input:    "1\n1 3000000000\n\n10\n",
			contains: []string{"Invalid input. Please enter valid integers."},
		},
		{
			name:     "custom array empty line",
			input:    "1\n\n\n10\n",
			contains: []string{"Error processing Custom Array: Input array cannot be empty"},
		},
		{
			name:     "custom array longer than the default scanner buffer",
			input:    "1\n" + strings.Repeat("123456 ", 12000) + "\n\n4\n\n10\n",
			contains: []string{"Result: Max Sum: 1481472000, Range: [0, 11999]", "Test case 10: Extreme values"},
			absent:   []string{"Subarray:"},
		},
		{
			name:     "custom array on last line without newline",
			input:    "1\n5 -1 3",
			contains: []string{"Result: Max Sum: 7, Range: [0, 2]"},
		},
		{
			name:     "random array size too large",
			input:    "2\n51\n\n10\n",
			contains: []string{"Size must be between 1 and 50."},
		},
		{
			name:     "random array wrong bound count",
			input:    "2\n5\n1 2 3\n\n10\n",
			contains: []string{"Please enter exactly two numbers for min and max."},
		},
		{
			name:     "random array inverted bounds",
			input:    "2\n5\n3 3\n\n10\n",
			contains: []string{"Min must be less than max."},
		},
		{
			name:     "random array",
			input:    "2\n30\n-3 3\n\n10\n",
			contains: []string{"Generated array: [", "... (showing first 20 elements)", "Result: Max Sum: "},
			absent:   []string{"Subarray:"},
		},
		{
			name:     "view without results",
			input:    "6\n\n10\n",
			contains: []string{"--- Benchmark Results ---", msgNoResults},
		},
		{
			name:     "history disabled",
			input:    "9\n\n10\n",
			contains: []string{"Run history is disabled."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, out := newTestRunner(t, tt.input)
			require.NoError(t, r.Run(context.Background()))

			s := out.String()
			for _, want := range tt.contains {
				assert.Contains(t, s, want)
			}
			for _, unwanted := range tt.absent {
				assert.NotContains(t, s, unwanted)
			}
		})
	}
}

func TestRunSurvivesOverlongLine(t *testing.T) {
	r, out := newTestRunner(t, "1\n"+strings.Repeat("1 ", 40)+"\n\n"+strings.Repeat("9", 40)+"\n\n4\n\n10\n")
	r.maxLine = 32

	require.NoError(t, r.Run(context.Background()))

	s := out.String()
	assert.Equal(t, 2, strings.Count(s, "Input line exceeds maximum length of 32 bytes."))
	assert.NotContains(t, s, "Error processing Custom Array")
	assert.Contains(t, s, "Test case 10: Extreme values")
}

func TestReadLine(t *testing.T) {
	long := strings.Repeat("7", 10000)
	r, _ := newTestRunner(t, "a\r\nbb\n"+strings.Repeat("x", 40)+"\n"+long+"\nlast")
	r.maxLine = 32

	line, err := r.readLine()
	require.NoError(t, err)
	assert.Equal(t, "a", line)

	line, err = r.readLine()
	require.NoError(t, err)
	assert.Equal(t, "bb", line)

	_, err = r.readLine()
	require.Error(t, err)
	assert.True(t, errors.IsCategory(err, errors.CategoryInput))

	r.maxLine = maxLineBytes
	line, err = r.readLine()
	require.NoError(t, err)
	assert.Equal(t, long, line)

	line, err = r.readLine()
	require.NoError(t, err)
	assert.Equal(t, "last", line)

	_, err = r.readLine()
	assert.ErrorIs(t, err, io.EOF)
}

func TestRandomArrayBoundsArePlainDigits(t *testing.T) {
	r, out := newTestRunner(t, "2\n10001\n\n10\n")
	r.cfg.Random.MaxSize = 10000

	require.NoError(t, r.Run(context.Background()))

	s := out.String()
	assert.Contains(t, s, "Enter array size (1-10000): ")
	assert.Contains(t, s, "Size must be between 1 and 10000.")
}

func TestRunStopsOnCanceledContext(t *testing.T) {
	r, out := newTestRunner(t, "6\n\n10\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, r.Run(ctx))
	assert.NotContains(t, out.String(), "Choose an option:")
}

func TestEdgeCases(t *testing.T) {
	r, out := newTestRunner(t, "")
	r.EdgeCases()

	s := out.String()
	assert.Contains(t, s, "--- Edge Case Tests ---")
	assert.Contains(t, s, "Test case 1: Single positive element")
	assert.Contains(t, s, "Test case 10: Extreme values")
	assert.Contains(t, s, "Max Sum: 4294967293, Range: [0, 2]")
	assert.Contains(t, s, "Max Sum: 2147483647, Range: [1, 1]")
	assert.Contains(t, s, "Subarray: [3, 0, -1, 2]")
	assert.NotContains(t, s, "Error processing")
	assert.Zero(t, r.Tracker().Len(), "edge cases are not benchmark runs")
}

func TestRunArrayRejectsOversizedInput(t *testing.T) {
	r, out := newTestRunner(t, "")
	_, err := r.RunArray(make([]int32, kadane.MaxInputSize+1), "Huge")
	require.Error(t, err)
	assert.Contains(t, out.String(), "Error processing Huge: Array size exceeds maximum limit of 1,000,000 elements")
}

func TestComparison(t *testing.T) {
	r, out := newTestRunner(t, "")
	r.Tracker().Add("Stale", 3, time.Millisecond, kadane.Metrics{}, 1)

	r.Comparison()

	s := out.String()
	assert.Contains(t, s, "Array size: 10")
	assert.Contains(t, s, "Array size: 20")
	assert.Contains(t, s, "Standard Algorithm: ")
	assert.Contains(t, s, "Optimized Algorithm: ")

	results := r.Tracker().Results()
	require.Len(t, results, 4)
	assert.Equal(t, "Standard", results[0].Algorithm)
	assert.Equal(t, "Optimized", results[1].Algorithm)
	assert.Equal(t, results[0].Result, results[1].Result)
	assert.Equal(t, results[0].Metrics, results[1].Metrics)
	assert.Empty(t, r.Tracker().ResultsFor("Stale"))
}

func TestSweep(t *testing.T) {
	r, out := newTestRunner(t, "")

	n := r.Sweep()
	assert.Equal(t, 8, n)

	s := out.String()
	assert.Contains(t, s, "Progress: 1/8 - Testing Standard Algorithm (size=5, range=[-5,5])")
	assert.Contains(t, s, "Progress: 8/8 - Testing Optimized Algorithm (size=10, range=[-10,10])")
	assert.Contains(t, s, "Benchmark completed!")
	assert.Contains(t, s, "Total tests run: 8")
}

func TestExportCSV(t *testing.T) {
	t.Run("nothing to export", func(t *testing.T) {
		r, out := newTestRunner(t, "")
		path, err := r.ExportCSV()
		require.NoError(t, err)
		assert.Empty(t, path)
		assert.Contains(t, out.String(), msgNoResults)
	})

	t.Run("after sweep", func(t *testing.T) {
		r, out := newTestRunner(t, "")
		r.Sweep()

		path, err := r.ExportCSV()
		require.NoError(t, err)
		assert.Equal(t, "benchmark_results_2025-06-01_12-30-00.csv", filepath.Base(path))
		assert.Contains(t, out.String(), "Results exported to: "+path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		assert.Len(t, lines, 9)
	})
}

func TestFullReport(t *testing.T) {
	r, out := newTestRunner(t, "")
	r.Comparison()

	require.NoError(t, r.FullReport())

	s := out.String()
	assert.Contains(t, s, "- Markdown: ")
	assert.Contains(t, s, "- HTML: ")

	entries, err := os.ReadDir(r.cfg.ResultsDir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{
		"benchmark_results_2025-06-01_12-30-00.csv",
		"benchmark_report_2025-06-01_12-30-00.md",
		"benchmark_report_2025-06-01_12-30-00.html",
	}, names)
}

func TestHistory(t *testing.T) {
	st, err := store.NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	var out bytes.Buffer
	tr := tracker.New(tracker.WithSink(st))
	r := NewRunner(strings.NewReader(""), &out, testConfig(t), tr, WithHistory(st), WithRand(NewRand(7)))

	_, err = r.RunArray([]int32{1, 2}, "x")
	require.NoError(t, err)
	require.NoError(t, r.History(context.Background(), 10))
	assert.Contains(t, out.String(), "No runs recorded yet.")

	r.Comparison()
	for _, limit := range []int{0, -1} {
		err = r.History(context.Background(), limit)
		require.Error(t, err)
		assert.True(t, errors.IsCategory(err, errors.CategoryInput))
	}

	out.Reset()
	require.NoError(t, r.History(context.Background(), 3))

	s := out.String()
	assert.Equal(t, 3, strings.Count(s, tr.SessionID()[:8]))
	assert.Contains(t, s, "* current session")
}

type failingHistory struct{}

func (failingHistory) Recent(context.Context, int) ([]store.Run, error) {
	return nil, assert.AnError
}

func TestHistoryStoreFailureIsReported(t *testing.T) {
	r, out := newTestRunner(t, "9\n\n10\n", WithHistory(failingHistory{}))
	require.NoError(t, r.Run(context.Background()))
	assert.Contains(t, out.String(), "Error: history store read failed: "+assert.AnError.Error())
}
