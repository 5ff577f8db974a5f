// Package report renders a session's benchmark runs as a Markdown summary and
// an HTML page converted from it.
package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"git.home.luguber.info/inful/kadanebench/internal/errors"
	"git.home.luguber.info/inful/kadanebench/internal/tracker"
)

// Markdown builds the summary document.
func Markdown(results []tracker.BenchmarkResult, groups []tracker.SizeGroup, generated time.Time) []byte {
	var b strings.Builder

	b.WriteString("# Kadane benchmark report\n\n")
	fmt.Fprintf(&b, "Generated %s, %d runs.\n\n", generated.Format(tracker.TimestampLayout), len(results))

	b.WriteString("## Runs\n\n")
	b.WriteString("| Algorithm | Array size | Time (ms) | Comparisons | Array accesses | Allocations | Assignments | Max sum |\n")
	b.WriteString("|---|---:|---:|---:|---:|---:|---:|---:|\n")
	for _, r := range results {
		fmt.Fprintf(&b, "| %s | %d | %.3f | %d | %d | %d | %d | %d |\n",
			r.Algorithm, r.ArraySize, r.Millis(),
			r.Metrics.Comparisons, r.Metrics.ArrayAccesses, r.Metrics.MemoryAllocations, r.Metrics.Assignments,
			r.Result)
	}

	if len(groups) > 0 {
		b.WriteString("\n## Comparison\n\n")
		b.WriteString("| Array size | Algorithm | Time (ms) | Relative to fastest |\n")
		b.WriteString("|---:|---|---:|---:|\n")
		for _, g := range groups {
			for _, e := range g.Entries {
				fmt.Fprintf(&b, "| %d | %s | %.3f | %.2fx |\n", g.ArraySize, e.Result.Algorithm, e.Result.Millis(), e.Speedup)
			}
		}
	}

	return []byte(b.String())
}

// HTML converts Markdown to a standalone HTML page.
func HTML(md []byte) ([]byte, error) {
	gm := goldmark.New(goldmark.WithExtensions(extension.Table))

	var body bytes.Buffer
	if err := gm.Convert(md, &body); err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}

	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>Kadane benchmark report</title>\n</head>\n<body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	return page.Bytes(), nil
}

// Paths of a written report.
type Paths struct {
	Markdown string
	HTML     string
}

// Write stores benchmark_report_<timestamp>.md and .html in dir.
func Write(dir string, results []tracker.BenchmarkResult, groups []tracker.SizeGroup, now time.Time) (Paths, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Paths{}, errors.FileSystemError("create results directory", dir, err)
	}

	base := filepath.Join(dir, "benchmark_report_"+now.Format(tracker.FileTimestampLayout))
	paths := Paths{Markdown: base + ".md", HTML: base + ".html"}

	md := Markdown(results, groups, now)
	if err := os.WriteFile(paths.Markdown, md, 0o644); err != nil {
		return Paths{}, errors.FileSystemError("write report", paths.Markdown, err)
	}

	html, err := HTML(md)
	if err != nil {
		return Paths{}, errors.InternalError("render report", err)
	}
	if err := os.WriteFile(paths.HTML, html, 0o644); err != nil {
		return Paths{}, errors.FileSystemError("write report", paths.HTML, err)
	}
	return paths, nil
}
