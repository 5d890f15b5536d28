package query

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/ville03/programming-for-performance/set"
	"github.com/ville03/programming-for-performance/set/hashset"
)

// Options contains configuration options for the runner.
type Options struct {
	// Validate mirrors every operation into a reference hash set and
	// aborts the run with a ValidationError on the first disagreement.
	Validate bool

	// Interactive replaces the one-line-per-query output with
	// descriptive messages and mode-transition prompts.
	Interactive bool

	// Logger receives structured operation traces.
	Logger *Logger

	// Metrics receives per-operation timings and counters.
	Metrics MetricsCollector
}

// Runner drives one structure through an operation stream.
//
// The stream is a whitespace-delimited sequence of integers. Non-negative
// tokens are values; negative tokens toggle between insert and query mode.
// A run starts in insert mode and ends at end of input or at the first token
// that does not parse as an integer. Query answers are written one line per
// query, in query order, with no output for insertions.
type Runner struct {
	set    set.Set
	oracle *hashset.HashSet
	out    *bufio.Writer
	opts   Options

	inserts uint64
	queries uint64
	hits    uint64
}

// NewRunner creates a runner driving s and writing query results to w.
func NewRunner(s set.Set, w io.Writer, optFns ...func(o *Options)) *Runner {
	opts := Options{
		Logger:  NoopLogger(),
		Metrics: NoopMetricsCollector{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	r := &Runner{
		set:  s,
		out:  bufio.NewWriter(w),
		opts: opts,
	}
	if opts.Validate {
		r.oracle = hashset.New()
	}

	return r
}

// Run consumes the operation stream from rd until it is exhausted.
//
// End of input and unparsable tokens end the run cleanly with a nil error.
// A structural rejection from the set (a value outside a bit-indexed set's
// range) or an oracle disagreement in validation mode aborts the run with
// the corresponding error; no further tokens are processed.
func (r *Runner) Run(rd io.Reader) error {
	defer r.out.Flush()

	sc := bufio.NewScanner(rd)
	sc.Split(bufio.ScanWords)

	insert := true
	if r.opts.Interactive {
		fmt.Fprintln(r.out, "Enter values to add")
		r.flushLive()
	}

	for sc.Scan() {
		// Values are ints in the original stream format, so tokens
		// outside int32 count as malformed and end the run.
		tok, err := strconv.ParseInt(sc.Text(), 10, 32)
		if err != nil {
			break
		}

		if tok < 0 {
			insert = !insert
			r.opts.Logger.LogModeChange(insert)
			if r.opts.Interactive {
				if insert {
					fmt.Fprintln(r.out, "Enter values to add")
				} else {
					fmt.Fprintln(r.out, "Enter queries")
				}
				r.flushLive()
			}
			continue
		}

		v := uint32(tok)
		if insert {
			if err := r.runInsert(v); err != nil {
				r.finish(err)
				return err
			}
		} else {
			if err := r.runQuery(v); err != nil {
				r.finish(err)
				return err
			}
		}
	}

	err := sc.Err()
	r.finish(err)
	return err
}

func (r *Runner) runInsert(v uint32) error {
	start := time.Now()
	err := r.set.Insert(v)
	r.opts.Metrics.RecordInsert(time.Since(start), err)
	if err != nil {
		return err
	}

	r.inserts++
	if r.oracle != nil {
		_ = r.oracle.Insert(v)
	}
	if r.opts.Interactive {
		fmt.Fprintf(r.out, " %d inserted\n", v)
		r.flushLive()
	}
	return nil
}

func (r *Runner) runQuery(v uint32) error {
	start := time.Now()
	found, err := r.set.Contains(v)
	r.opts.Metrics.RecordQuery(found, time.Since(start), err)
	if err != nil {
		return err
	}

	r.queries++
	if found {
		r.hits++
	}

	if r.oracle != nil {
		want, _ := r.oracle.Contains(v)
		r.opts.Metrics.RecordValidation(found != want)
		if found != want {
			return &ValidationError{Value: v, Got: found, Want: want}
		}
	}

	if r.opts.Interactive {
		if found {
			fmt.Fprintf(r.out, "%d : found\n", v)
		} else {
			fmt.Fprintf(r.out, "%d : not found\n", v)
		}
		r.flushLive()
	} else if found {
		fmt.Fprintln(r.out, "1")
	} else {
		fmt.Fprintln(r.out, "0")
	}
	return nil
}

// flushLive pushes buffered output out immediately. Interactive runs are
// driven live, so every emitted line must be visible before the next token
// is read; non-interactive runs keep the buffer for throughput.
func (r *Runner) flushLive() {
	if r.opts.Interactive {
		r.out.Flush()
	}
}

func (r *Runner) finish(err error) {
	r.opts.Logger.LogRunEnd(r.inserts, r.queries, r.hits, err)
}
