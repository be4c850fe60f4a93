// Package main generates the reference TSP distance matrices.
//
// With no arguments it prints the instances for n = 10..20, each seeded
// with n, in the "data: <n>" block format. Flags narrow or widen the range
// and change the weight modulus; their defaults reproduce the reference run.
//
// Usage:
//
//	tspgen                       # sizes 10..20, weights in [1,99]
//	tspgen --from 5 --to 8       # sizes 5..8
//	tspgen --max-weight 9        # weights in [1,9]
//	tspgen --scaled              # weights in [1,10·n]
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/tspdata/distmatrix"
)

// errUsage marks a rejected command line; the message has already been printed.
var errUsage = errors.New("usage")

// options is the parsed command line.
type options struct {
	from      int
	to        int
	maxWeight int
	scaled    bool
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("tspgen: ")

	err := run(os.Args[1:], os.Stdout, os.Stderr)
	switch {
	case err == nil, errors.Is(err, pflag.ErrHelp):
	case errors.Is(err, errUsage):
		os.Exit(2)
	default:
		log.Fatal(err)
	}
}

// run parses args and writes the requested blocks to stdout.
func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	var genOpts []distmatrix.Option
	if opts.scaled {
		genOpts = append(genOpts, distmatrix.WithSizeScaledWeights())
	} else {
		genOpts = append(genOpts, distmatrix.WithMaxWeight(opts.maxWeight))
	}

	return distmatrix.WriteRange(stdout, opts.from, opts.to, genOpts...)
}

// parseFlags reads the command line into options; usage problems are
// reported on stderr and returned as errUsage.
func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := pflag.NewFlagSet("tspgen", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVarP(&opts.from, "from", "f", distmatrix.DefaultFirstSize, "smallest matrix order (also its seed)")
	fs.IntVarP(&opts.to, "to", "t", distmatrix.DefaultLastSize, "largest matrix order, inclusive")
	fs.IntVarP(&opts.maxWeight, "max-weight", "m", distmatrix.DefaultMaxWeight, "off-diagonal weights fall in [1,max-weight]")
	fs.BoolVar(&opts.scaled, "scaled", false, "use weights in [1,10*n] instead of --max-weight")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return opts, err
		}
		// ContinueOnError leaves reporting to the caller.
		fmt.Fprintln(stderr, err)
		fs.PrintDefaults()
		return opts, fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %v\n", fs.Args())
		return opts, errUsage
	}
	if opts.maxWeight < 1 {
		fmt.Fprintf(stderr, "--max-weight must be >= 1, got %d\n", opts.maxWeight)
		return opts, errUsage
	}

	return opts, nil
}
