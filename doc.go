// Package lvlgrid solves small grid puzzles over integer-coordinate records:
// rectangle-claim overlap accounting and nearest-point region partitioning.
//
// What is in here?
//
//	geom/    — Point, Bounds, Manhattan distance, "<x>,<y>" parsing
//	grid/    — Arena, a dense cell store laid over any Bounds
//	claims/  — CountOverlaps, FindUntouched, "#id @ x,y: wxh" parsing
//	nearest/ — Owner, Partition, LargestFiniteRegion, CountCellsUnderThreshold
//	input/   — line-oriented record reader
//	cmd/lvlgrid — command-line driver printing both answers per input file
//
// Every operation is a pure, single-threaded batch computation: it owns its
// grid, set or map for the duration of the call and keeps nothing afterwards.
//
// Quick ASCII example (three claims, X = shared cells):
//
//	...2222.
//	...2222.
//	.11XX22.
//	.11XX22.
//	.111133.
//	.111133.
//
// CountOverlaps reports 4 and FindUntouched reports claim 3.
//
//	go get github.com/katalvlaran/lvlgrid
package lvlgrid
