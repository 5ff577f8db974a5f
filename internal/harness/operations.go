package harness

import (
	"context"
	"fmt"
	"time"

	"git.home.luguber.info/inful/kadanebench/internal/errors"
	"git.home.luguber.info/inful/kadanebench/internal/kadane"
	"git.home.luguber.info/inful/kadanebench/internal/logfields"
	"git.home.luguber.info/inful/kadanebench/internal/report"
	"git.home.luguber.info/inful/kadanebench/internal/tracker"
)

const (
	previewLimit = 20
	msgNoResults = "No benchmark results available. Run a benchmark first."
)

func (r *Runner) promptCustomArray() error {
	line, err := r.prompt("Enter array elements separated by spaces: ")
	if err != nil {
		return endOfInput(err)
	}
	seq, err := ParseInts(line)
	if err != nil {
		return err
	}
	_, _ = r.RunArray(seq, "Custom Array")
	return nil
}

func (r *Runner) promptRandomArray() error {
	maxSize := r.cfg.Random.MaxSize
	line, err := r.prompt(fmt.Sprintf("Enter array size (1-%d): ", maxSize))
	if err != nil {
		return endOfInput(err)
	}
	size := parseChoice(line)
	if size < 1 || size > maxSize {
		return errors.InvalidInput(fmt.Sprintf("Size must be between 1 and %d.", maxSize), nil)
	}

	line, err = r.prompt("Enter range for random numbers (min max): ")
	if err != nil {
		return endOfInput(err)
	}
	bounds, err := ParseInts(line)
	if err != nil {
		return err
	}
	if len(bounds) != 2 {
		return errors.InvalidInput("Please enter exactly two numbers for min and max.", nil)
	}
	if bounds[0] >= bounds[1] {
		return errors.InvalidInput("Min must be less than max.", nil)
	}

	seq := GenerateArray(r.rng, size, bounds[0], bounds[1])
	r.con.Printf("Generated array: %s", formatInts(seq, previewLimit))
	if len(seq) > previewLimit {
		r.con.Println("... (showing first 20 elements)")
	} else {
		r.con.Println()
	}

	_, _ = r.RunArray(seq, "Random Array")
	return nil
}

// RunArray size-checks seq, runs the standard scan and prints the outcome.
// Short inputs also get the maximal subarray printed. Failures are printed
// as "Error processing <description>: <message>" and returned.
func (r *Runner) RunArray(seq []int32, description string) (kadane.Result, error) {
	return r.RunVariant(kadane.Standard, seq, description)
}

// RunVariant is RunArray with an explicit implementation.
func (r *Runner) RunVariant(v kadane.Variant, seq []int32, description string) (kadane.Result, error) {
	res, err := runValidated(v, seq)
	if err != nil {
		r.tracker.Rejected(v.Name())
		r.con.Error("Error processing " + description + ": " + errors.Message(err))
		return kadane.Result{}, err
	}

	r.logger.Debug("Scan completed",
		logfields.Algorithm(v.Name()),
		logfields.ArraySize(len(seq)),
		logfields.MaxSum(res.MaxSum))

	r.con.Println("Result: " + res.String())
	if len(seq) <= previewLimit {
		r.con.Println("Subarray: " + formatInts(seq[res.StartIndex:res.EndIndex+1], res.Len()))
	}
	return res, nil
}

func runValidated(v kadane.Variant, seq []int32) (kadane.Result, error) {
	if err := kadane.ValidateInput(seq); err != nil {
		return kadane.Result{}, err
	}
	return v.Find(seq)
}

// timeVariant runs v once for its result and once more under the stopwatch.
func timeVariant(v kadane.Variant, seq []int32) (kadane.Result, time.Duration, error) {
	res, err := v.Find(seq)
	if err != nil {
		return kadane.Result{}, 0, err
	}
	elapsed := tracker.Measure(func() {
		_, _ = v.Find(seq)
	})
	return res, elapsed, nil
}

// benchmark times every variant on seq and records each run.
func (r *Runner) benchmark(seq []int32, before func(v kadane.Variant)) ([]tracker.BenchmarkResult, error) {
	out := make([]tracker.BenchmarkResult, 0, len(kadane.Variants()))
	for _, v := range kadane.Variants() {
		if before != nil {
			before(v)
		}
		res, elapsed, err := timeVariant(v, seq)
		if err != nil {
			r.tracker.Rejected(v.Name())
			return out, err
		}
		out = append(out, r.tracker.Add(v.Name(), len(seq), elapsed, res.Metrics, res.MaxSum))
	}
	return out, nil
}

// Comparison times both variants on one random array per configured size.
// It starts from an empty results log.
func (r *Runner) Comparison() {
	cc := r.cfg.Comparison
	r.tracker.Clear()

	for _, size := range cc.Sizes {
		r.con.Println()
		r.con.Printf("Array size: %d\n", size)

		seq := GenerateArray(r.rng, size, cc.Min, cc.Max)
		runs, err := r.benchmark(seq, nil)
		if err != nil {
			r.report(err)
			continue
		}

		std, opt := runs[0].ExecutionTime, runs[1].ExecutionTime
		r.con.Printf("Standard Algorithm: %d ns\n", std.Nanoseconds())
		r.con.Printf("Optimized Algorithm: %d ns\n", opt.Nanoseconds())
		if opt > 0 {
			r.con.Printf("Speedup: %.2fx\n", float64(std)/float64(opt))
		} else {
			r.con.Println("Speedup: n/a")
		}
	}

	r.printComparison()
}

// EdgeCases runs the fixed suite through RunArray.
func (r *Runner) EdgeCases() {
	r.con.Section("Edge Case Tests")
	for i, ec := range EdgeCases() {
		r.con.Println()
		r.con.Printf("Test case %d: %s\n", i+1, ec.Description)
		_, _ = r.RunArray(ec.Input, ec.Description)
	}
}

// Sweep benchmarks both variants over every configured size and value
// range, starting from an empty results log, and returns the number of
// recorded runs.
func (r *Runner) Sweep() int {
	sc := r.cfg.Sweep
	r.con.Section("Comprehensive Benchmark")
	r.con.Println("Running benchmark with multiple array sizes and configurations...")

	r.tracker.Clear()

	total := len(sc.Sizes) * len(sc.Ranges) * len(kadane.Variants())
	current := 0
	start := time.Now()

	for _, size := range sc.Sizes {
		for _, vr := range sc.Ranges {
			seq := GenerateArray(r.rng, size, vr.Min, vr.Max)
			_, err := r.benchmark(seq, func(v kadane.Variant) {
				current++
				r.con.Printf("Progress: %d/%d - Testing %s Algorithm (size=%d, range=[%d,%d])\n",
					current, total, v.Name(), size, vr.Min, vr.Max)
			})
			if err != nil {
				r.report(err)
			}
		}
	}

	r.con.Println()
	r.con.Success("Benchmark completed!")
	r.con.Printf("Total tests run: %s\n", r.con.Count(uint64(r.tracker.Len())))
	r.printSummary()

	r.logger.Info("Sweep completed",
		logfields.Count(r.tracker.Len()),
		logfields.DurationMS(time.Since(start)))
	return r.tracker.Len()
}

// ViewResults prints every run and the per-size comparison.
func (r *Runner) ViewResults() {
	r.con.Section("Benchmark Results")
	if r.tracker.Len() == 0 {
		r.con.Warning(msgNoResults)
		return
	}
	r.printSummary()
	r.printComparison()
}

// ExportCSV writes the session's runs to a timestamped CSV file in the
// results directory. It returns "" when there is nothing to export.
func (r *Runner) ExportCSV() (string, error) {
	r.con.Section("Export Results to CSV")
	if r.tracker.Len() == 0 {
		r.con.Warning(msgNoResults)
		return "", nil
	}

	path, err := r.tracker.ExportCSVWithTimestamp(r.cfg.ResultsDir)
	if err != nil {
		return "", err
	}
	r.con.Success("Results exported to: " + path)
	return path, nil
}

// FullReport exports the CSV and renders the Markdown and HTML summaries.
func (r *Runner) FullReport() error {
	r.con.Section("Full Report")
	if r.tracker.Len() == 0 {
		r.con.Warning(msgNoResults)
		return nil
	}

	csvPath, err := r.tracker.ExportCSVWithTimestamp(r.cfg.ResultsDir)
	if err != nil {
		return err
	}
	paths, err := report.Write(r.cfg.ResultsDir, r.tracker.Results(), r.tracker.Comparison(), r.tracker.Now())
	if err != nil {
		return err
	}

	r.con.Println("- CSV: " + csvPath)
	r.con.Println("- Markdown: " + paths.Markdown)
	r.con.Println("- HTML: " + paths.HTML)
	r.con.Println("- Metrics directory: " + r.cfg.ResultsDir)
	r.logger.Info("Report written", logfields.Path(paths.HTML))
	return nil
}

// History prints the most recent persisted runs across sessions. limit must
// be positive.
func (r *Runner) History(ctx context.Context, limit int) error {
	r.con.Section("Run History")
	if limit < 1 {
		return errors.InvalidInput(fmt.Sprintf("History limit must be at least 1, got %d.", limit), nil)
	}
	if r.history == nil {
		r.con.Warning("Run history is disabled. Set history.path in the configuration.")
		return nil
	}

	runs, err := r.history.Recent(ctx, limit)
	if err != nil {
		return errors.StoreError("read", err)
	}
	if len(runs) == 0 {
		r.con.Warning("No runs recorded yet.")
		return nil
	}

	for _, run := range runs {
		session := run.SessionID
		if len(session) > 8 {
			session = session[:8]
		}
		marker := " "
		if run.SessionID == r.tracker.SessionID() {
			marker = "*"
		}
		r.con.Printf("%s %s %s  %s\n", marker, run.Timestamp.Format(time.DateTime), session, run.BenchmarkResult.String())
	}
	r.con.Muted("* current session")
	return nil
}

func (r *Runner) printSummary() {
	if r.tracker.Len() == 0 {
		r.con.Println("No benchmark results available.")
		return
	}
	for _, res := range r.tracker.Results() {
		r.con.Println(res.String())
	}
}

func (r *Runner) printComparison() {
	if r.tracker.Len() < 2 {
		r.con.Println("Need at least 2 results for comparison.")
		return
	}
	for _, g := range r.tracker.Comparison() {
		r.con.Println()
		r.con.Printf("Array size: %d\n", g.ArraySize)
		for _, e := range g.Entries {
			r.con.Printf("  %s: %.3f ms (%.2fx)\n", e.Result.Algorithm, e.Result.Millis(), e.Speedup)
		}
	}
}
