package main

import (
	"fmt"
	"io"
	"log"

	"github.com/katalvlaran/lvlgrid/claims"
	"github.com/katalvlaran/lvlgrid/geom"
	"github.com/katalvlaran/lvlgrid/input"
	"github.com/katalvlaran/lvlgrid/nearest"
)

// solvers maps a -puzzle name to its driver.
var solvers = map[string]func(cfg config, path string, out io.Writer) error{
	"claims":  solveClaims,
	"regions": solveRegions,
}

func solveClaims(_ config, path string, out io.Writer) error {
	cs, err := input.ReadFile(path, claims.ParseClaim)
	if err != nil {
		return err
	}
	log.Printf("read %d claims", len(cs))

	overlaps := claims.CountOverlaps(cs)
	id, err := claims.FindUntouched(cs)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	fmt.Fprintf(out, "Part1: %d\n", overlaps)
	fmt.Fprintf(out, "Part2: %d\n", id)
	return nil
}

func solveRegions(cfg config, path string, out io.Writer) error {
	pts, err := input.ReadFile(path, geom.ParsePoint)
	if err != nil {
		return err
	}
	log.Printf("read %d points", len(pts))

	if cfg.render {
		pic, err := nearest.Render(pts)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		fmt.Fprint(out, pic)
	}
	largest, err := nearest.LargestFiniteRegion(pts, nearest.Options{ExcludeUnbounded: cfg.excludeUnbounded})
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	safe, err := nearest.CountCellsUnderThreshold(pts, cfg.threshold)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	fmt.Fprintf(out, "Part1: %d\n", largest)
	fmt.Fprintf(out, "Part2: %d\n", safe)
	return nil
}
