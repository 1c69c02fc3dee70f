// Command lvlgrid solves the grid puzzles of this module for one or more
// input files and prints both answers per file.
//
// Usage:
//
//	lvlgrid -puzzle claims input.txt
//	lvlgrid -puzzle regions [-threshold 10000] [-exclude-unbounded] [-render] input.txt
//
// Any parse error or broken invariant aborts the run with a non-zero exit.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pkg/profile"
)

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}

	log.SetFlags(0)
	log.SetPrefix("lvlgrid: ")
	log.SetOutput(io.Discard)
	if cfg.verbose {
		log.SetOutput(os.Stderr)
	}

	var prof interface{ Stop() }
	if cfg.profile {
		prof = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet)
	}
	err = run(cfg, os.Stdout)
	if prof != nil {
		prof.Stop()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "lvlgrid: %v\n", err)
		os.Exit(1)
	}
}

// config holds the parsed command line.
type config struct {
	puzzle           string
	threshold        int
	excludeUnbounded bool
	render           bool
	profile          bool
	verbose          bool
	files            []string
}

func parseFlags(args []string, errOut io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("lvlgrid", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&cfg.puzzle, "puzzle", "claims", "puzzle to solve: claims or regions")
	fs.IntVar(&cfg.threshold, "threshold", 10000, "regions: summed-distance threshold for part 2")
	fs.BoolVar(&cfg.excludeUnbounded, "exclude-unbounded", false, "regions: skip regions touching the bounding box edge")
	fs.BoolVar(&cfg.render, "render", false, "regions: draw the partition before the answers")
	fs.BoolVar(&cfg.profile, "profile", false, "write a CPU profile to the current directory")
	fs.BoolVar(&cfg.verbose, "v", false, "trace progress to stderr")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	cfg.files = fs.Args()
	if len(cfg.files) == 0 {
		cfg.files = []string{"input.txt"}
	}

	return cfg, nil
}

// run solves cfg.puzzle for every file, writing answers to out.
func run(cfg config, out io.Writer) error {
	solve, ok := solvers[cfg.puzzle]
	if !ok {
		return fmt.Errorf("unknown puzzle %q (want claims or regions)", cfg.puzzle)
	}
	for _, path := range cfg.files {
		log.Printf("solving %s for %s", cfg.puzzle, path)
		if len(cfg.files) > 1 {
			fmt.Fprintf(out, "%s:\n", path)
		}
		if err := solve(cfg, path, out); err != nil {
			return err
		}
	}
	return nil
}
