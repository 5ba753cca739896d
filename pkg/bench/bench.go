// Package bench times repeated runs of a workload and reports the fastest.
package bench

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/willbeason/mandelbrot-bench/pkg/logging"
)

// Runs is how many times a workload is timed by default.
const Runs = 20

// Result holds the per-run times in seconds, in run order, and the smallest of them.
type Result struct {
	Times []float64
	Best  float64
}

// Runner times a workload Runs times, printing each run as it completes.
//
// Every run counts towards Best, including the first.
type Runner struct {
	// Runs defaults to the package constant Runs when zero.
	Runs int

	// Label names the implementation in the banner and summary, e.g. "Go".
	Label string

	// Out receives the report. Defaults to os.Stdout.
	Out io.Writer

	Logger *slog.Logger

	// Now defaults to time.Now. Readings must carry a monotonic clock for
	// the differences to be meaningful.
	Now func() time.Time
}

func (r *Runner) runs() int {
	if r.Runs <= 0 {
		return Runs
	}
	return r.Runs
}

func (r *Runner) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return logging.Discard()
	}
	return r.Logger
}

func (r *Runner) now() time.Time {
	if r.Now == nil {
		return time.Now()
	}
	return r.Now()
}

// Banner prints the line announcing the benchmark.
func (r *Runner) Banner() error {
	_, err := fmt.Fprintf(r.out(), "Benchmarking Mandelbrot Set (%s with %d iterations)...\n", r.Label, r.runs())
	if err != nil {
		return fmt.Errorf("writing banner: %w", err)
	}
	return nil
}

// Run times work r.Runs times and prints one line per run followed by the summary.
func (r *Runner) Run(work func()) (Result, error) {
	runs := r.runs()
	out := r.out()
	log := r.logger()

	result := Result{
		Times: make([]float64, 0, runs),
		Best:  math.Inf(1),
	}

	for i := 1; i <= runs; i++ {
		start := r.now()
		work()
		elapsed := r.now().Sub(start).Seconds()

		if elapsed < result.Best {
			result.Best = elapsed
		}
		result.Times = append(result.Times, elapsed)

		log.Debug("run", "run", i, "seconds", elapsed)

		_, err := fmt.Fprint(out, RunLine(i, elapsed))
		if err != nil {
			return result, fmt.Errorf("writing run %d: %w", i, err)
		}
	}

	log.Info("finished", "runs", runs, "best", result.Best)

	_, err := fmt.Fprint(out, SummaryLine(r.Label, result.Best, runs))
	if err != nil {
		return result, fmt.Errorf("writing summary: %w", err)
	}

	return result, nil
}

// RunLine formats the report line for run i (1-based).
func RunLine(i int, seconds float64) string {
	return fmt.Sprintf("  Run %2d: %.4f seconds\n", i, seconds)
}

// SummaryLine formats the best-of-n line. The label is padded so the times of
// different implementations line up, e.g. "Go Time:    " and "Java Time:  ".
func SummaryLine(label string, best float64, runs int) string {
	return fmt.Sprintf("%-12s%.4f seconds (best of %d)\n", label+" Time:", best, runs)
}
