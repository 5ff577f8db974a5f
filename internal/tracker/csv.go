package tracker

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/kadanebench/internal/errors"
	"git.home.luguber.info/inful/kadanebench/internal/logfields"
)

// FileTimestampLayout is used in generated export file names.
const FileTimestampLayout = "2006-01-02_15-04-05"

// WriteCSV writes the header and one row per recorded run.
func (t *Tracker) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, r := range t.results {
		if err := cw.Write(r.CSVRecord()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportCSV writes all runs to dir/filename, creating dir on first use, and
// returns the written path.
func (t *Tracker) ExportCSV(dir, filename string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.FileSystemError("create results directory", dir, err)
	}

	path := filepath.Join(dir, filename)
	f, err := os.Create(path)
	if err != nil {
		return "", errors.FileSystemError("export csv", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := t.WriteCSV(f); err != nil {
		return "", errors.FileSystemError("export csv", path, err)
	}
	if err := f.Close(); err != nil {
		return "", errors.FileSystemError("export csv", path, err)
	}

	t.logger.Info("Exported results", logfields.Path(path), logfields.Count(len(t.results)))
	return path, nil
}

// ExportCSVWithTimestamp writes benchmark_results_<timestamp>.csv into dir.
func (t *Tracker) ExportCSVWithTimestamp(dir string) (string, error) {
	name := fmt.Sprintf("benchmark_results_%s.csv", t.now().Format(FileTimestampLayout))
	return t.ExportCSV(dir, name)
}

// Now returns the tracker clock's current time.
func (t *Tracker) Now() time.Time { return t.now() }
