// Command query tests and benchmarks interchangeable integer set structures.
//
// It reads a whitespace-delimited stream of integers from a file or stdin,
// applies insertions and membership queries to the chosen structure, and
// writes one result line per query to stdout.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/ville03/programming-for-performance/query"
	"github.com/ville03/programming-for-performance/set"
)

const usage = `Program to test set data structures for non-negative ints.

usage:
    query [options] [input file]

Options:
  -t <kind>      Structure kind: roaring (1), hash (2), tree (3),
                 sortedvec (4) or bitvec (5). Defaults to auto selection.
  -l <number>    Limit. Highest value that will be inserted. Defaults to 2^31 - 1.
  -s             If given, all insertions are assumed to precede all queries.
  -v             Validate answers against a reference hash set (slow).
  -d             Debug mode. Run in interactive / verbose mode.
  <input file>   File to read insertions and queries from.
                 If no input file is given, standard input is used.
                 Options must come before the input file; flag parsing
                 stops at the first positional argument.

Accepted input is a sequence of non-negative integers in the [0..<limit>]
range, with negative integers switching between insertion and query modes.
The program starts in insert mode.

Examples:
   query -t tree -d
         Interactively test the unbalanced binary tree.

   /usr/bin/time query -t hash data.txt >> /dev/null
         Benchmark the hash set with operations from the data.txt file.

   /usr/bin/time query -s -l 10000 limited_sorted.txt >> /dev/null
         Benchmark with a bounded, build-then-query input sequence,
         letting the program select the structure kind.
`

func main() {
	fs := flag.NewFlagSet("query", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
	}

	var (
		kindName    = fs.String("t", "auto", "structure kind")
		limit       = fs.Uint64("l", query.DefaultLimit, "highest value that will be inserted")
		separated   = fs.Bool("s", false, "all insertions precede all queries")
		validate    = fs.Bool("v", false, "validate against a reference hash set")
		interactive = fs.Bool("d", false, "interactive / verbose mode")
	)

	_ = fs.Parse(os.Args[1:])

	kind, err := set.ParseKind(*kindName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		os.Exit(2)
	}

	cfg := query.Config{
		Kind:        kind,
		Limit:       *limit,
		Separated:   *separated,
		Validate:    *validate,
		Interactive: *interactive,
	}

	logger := query.NoopLogger()
	if cfg.Interactive {
		logger = query.NewTextLogger(slog.LevelDebug)
	}

	s, err := query.Select(cfg)
	logger.LogSelect(cfg, name(s), err)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger = logger.WithStructure(s.Name()).WithLimit(cfg.Limit)

	in := os.Stdin
	if fs.NArg() > 0 {
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		defer f.Close()
		in = f
	}

	r := query.NewRunner(s, os.Stdout, func(o *query.Options) {
		o.Validate = cfg.Validate
		o.Interactive = cfg.Interactive
		o.Logger = logger
	})

	if err := r.Run(in); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var ve *query.ValidationError
		if errors.As(err, &ve) {
			os.Exit(1)
		}
		os.Exit(2)
	}
}

func name(s set.Set) string {
	if s == nil {
		return ""
	}
	return s.Name()
}
