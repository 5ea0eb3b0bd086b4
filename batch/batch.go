// Package batch converts one directory of legacy-encoded files into a
// directory of UTF-8 files. The scan is deliberately flat: only direct
// children of the source directory are considered, subdirectories are
// never entered, and one unconvertible file skips rather than aborts.
package batch

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/skrymets/radatext"
	"github.com/skrymets/radatext/internal/transcode"
	"github.com/skrymets/radatext/internal/wildcard"
)

// Summary reports what a completed run did.
type Summary struct {
	// Matched counts regular files whose name matched the task mask.
	Matched int
	// Converted counts files written to the destination directory.
	Converted int
	// Skipped counts matching files left unconverted after a read,
	// decode or write failure.
	Skipped int
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger the runner reports progress and per-file
// failures to. The default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(r *Runner) {
		r.log = log
	}
}

// WithUTF8Fallback makes the runner retry a file as UTF-8 when the legacy
// decode fails, for archives that earlier runs already partially
// converted. Off by default: normally a file that is not valid
// Windows-1251 is corrupt and should be skipped, not copied through.
func WithUTF8Fallback(enabled bool) Option {
	return func(r *Runner) {
		r.utf8Fallback = enabled
	}
}

// Runner executes conversion tasks. The zero-value configuration converts
// silently; use WithLogger to see progress.
type Runner struct {
	log          *zap.Logger
	utf8Fallback bool
}

// NewRunner creates a Runner with the given options applied.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ValidateTask checks that both task directories exist and are
// directories. It does not create anything.
func ValidateTask(task radatext.Task) error {
	for _, dir := range []string{task.InputDir, task.OutputDir} {
		info, err := os.Stat(dir)
		if err != nil {
			return fmt.Errorf("directory does not exist: %s", dir)
		}
		if !info.IsDir() {
			return fmt.Errorf("not a directory: %s", dir)
		}
	}
	return nil
}

// Run lists the direct children of the task's input directory and
// converts every regular file whose name matches the mask, writing each
// result to the output directory under the same filename. Files that fail
// to convert are logged and skipped. The returned error is non-nil only
// when the directory listing itself fails; per-file failures are counted
// in the summary instead.
func (r *Runner) Run(task radatext.Task) (Summary, error) {
	var sum Summary

	entries, err := os.ReadDir(task.InputDir)
	if err != nil {
		r.log.Error("cannot list source directory",
			zap.String("dir", task.InputDir),
			zap.Error(err))
		return sum, fmt.Errorf("list %s: %w", task.InputDir, err)
	}

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		name := entry.Name()
		if !wildcard.Match(name, task.Mask) {
			continue
		}
		sum.Matched++

		src := filepath.Join(task.InputDir, name)
		dst := filepath.Join(task.OutputDir, name)
		r.log.Info("converting",
			zap.String("src", src),
			zap.String("dst", dst))

		if err := r.convert(src, dst); err != nil {
			sum.Skipped++
			r.log.Error("file skipped",
				zap.String("file", src),
				zap.Error(err))
			continue
		}
		sum.Converted++
	}

	r.log.Info("batch finished",
		zap.Int("matched", sum.Matched),
		zap.Int("converted", sum.Converted),
		zap.Int("skipped", sum.Skipped))
	return sum, nil
}

func (r *Runner) convert(src, dst string) error {
	lines, err := transcode.ReadLines(src)
	if err != nil && r.utf8Fallback {
		r.log.Warn("legacy decode failed, retrying as UTF-8",
			zap.String("file", src),
			zap.Error(err))
		lines, err = transcode.ReadLinesUTF8(src)
	}
	if err != nil {
		return err
	}
	return transcode.WriteLines(dst, lines)
}
