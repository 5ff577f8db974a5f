// Package harness implements the interactive benchmarking menu and the
// operations behind it. Every operation is also callable directly so the
// one-shot CLI subcommands share the same code.
package harness

import (
	"bufio"
	"context"
	stdErrors "errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"git.home.luguber.info/inful/kadanebench/internal/config"
	"git.home.luguber.info/inful/kadanebench/internal/console"
	"git.home.luguber.info/inful/kadanebench/internal/errors"
	"git.home.luguber.info/inful/kadanebench/internal/kadane"
	"git.home.luguber.info/inful/kadanebench/internal/logfields"
	"git.home.luguber.info/inful/kadanebench/internal/store"
	"git.home.luguber.info/inful/kadanebench/internal/tracker"
)

// maxLineBytes fits kadane.MaxInputSize values of up to 11 characters plus
// a separator each.
const maxLineBytes = kadane.MaxInputSize*12 + 1024

// History reads persisted runs. *store.SQLiteStore satisfies it.
type History interface {
	Recent(ctx context.Context, limit int) ([]store.Run, error)
}

// Runner owns one harness session. It is strictly sequential.
type Runner struct {
	in      *bufio.Reader
	maxLine int
	con     *console.Console
	cfg     *config.Config
	tracker *tracker.Tracker
	history History
	rng     *rand.Rand
	logger  *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithHistory enables the history menu entry.
func WithHistory(h History) Option {
	return func(r *Runner) { r.history = h }
}

// WithRand overrides the generator used for random arrays.
func WithRand(rng *rand.Rand) Option {
	return func(r *Runner) { r.rng = rng }
}

// WithLogger sets the logger used for dispatch diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRunner wires a session reading from in and writing to out.
func NewRunner(in io.Reader, out io.Writer, cfg *config.Config, tr *tracker.Tracker, opts ...Option) *Runner {
	if cfg == nil {
		cfg = config.Default()
	}
	r := &Runner{
		in:      bufio.NewReader(in),
		maxLine: maxLineBytes,
		con:     console.New(out),
		cfg:     cfg,
		tracker: tr,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.rng == nil {
		r.rng = NewRand(cfg.Seed)
	}
	return r
}

// NewRand seeds a PCG generator; seed 0 uses the current time.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Tracker returns the session's results log.
func (r *Runner) Tracker() *tracker.Tracker { return r.tracker }

// readLine returns the next input line without its line ending, or io.EOF
// once input is exhausted. A line over the length limit is consumed and
// rejected with an input error, leaving the reader at the following line.
func (r *Runner) readLine() (string, error) {
	var (
		buf     []byte
		read    int
		tooLong bool
	)
	for {
		chunk, err := r.in.ReadSlice('\n')
		read += len(chunk)
		if !tooLong {
			buf = append(buf, chunk...)
			tooLong = len(buf) > r.maxLine+len("\r\n")
		}
		if stdErrors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if err != nil && (!stdErrors.Is(err, io.EOF) || read == 0) {
			return "", err
		}
		break
	}

	line := strings.TrimSuffix(strings.TrimSuffix(string(buf), "\n"), "\r")
	if tooLong || len(line) > r.maxLine {
		return "", errors.InvalidInput(fmt.Sprintf("Input line exceeds maximum length of %d bytes.", r.maxLine), nil)
	}
	return line, nil
}

// prompt writes text without a newline and reads the reply.
func (r *Runner) prompt(text string) (string, error) {
	r.con.Printf("%s", text)
	return r.readLine()
}

// endOfInput maps io.EOF to nil; a prompt cut short by the end of input is
// not a failure.
func endOfInput(err error) error {
	if stdErrors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// report prints a one-line message for err at the command boundary.
func (r *Runner) report(err error) {
	if err == nil {
		return
	}
	r.logger.Debug("Command failed", logfields.Error(err))
	if errors.IsCategory(err, errors.CategoryInput) || errors.IsInvalidArgument(err) {
		r.con.Error(errors.Message(err))
		return
	}
	msg := errors.Message(err)
	if be, ok := errors.As(err); ok && be.Cause != nil {
		msg += ": " + be.Cause.Error()
	}
	r.con.Error("Error: " + msg)
}
