// Package groupsum computes the largest group sum and the top-3 total of a
// blank-line separated payload of integers.
//
// Example usage:
//
//	part1, err := groupsum.MaxGroupSum(payload)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	part2, err := groupsum.TopGroupSum(payload)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The full API, including the configurable Solver, lives in
// github.com/bft-labs/groupsum/pkg/groupsum.
package groupsum

import (
	"github.com/bft-labs/groupsum/pkg/groupsum"
)

// Result holds both answers for one payload.
type Result = groupsum.Result

// Solver computes both answers from one pass over a payload.
type Solver = groupsum.Solver

// Option configures a Solver.
type Option = groupsum.Option

// Errors returned by the computation. Check them with errors.Is.
var (
	ErrParse              = groupsum.ErrParse
	ErrEmptyInput         = groupsum.ErrEmptyInput
	ErrInsufficientGroups = groupsum.ErrInsufficientGroups
	ErrOverflow           = groupsum.ErrOverflow
)

// MaxGroupSum returns the largest group sum in payload.
func MaxGroupSum(payload string) (uint64, error) {
	return groupsum.MaxGroupSum(payload)
}

// TopGroupSum returns the total of the three largest group sums in payload.
func TopGroupSum(payload string) (uint64, error) {
	return groupsum.TopGroupSum(payload)
}

// New creates a Solver. See the pkg/groupsum options.
func New(opts ...Option) *Solver {
	return groupsum.New(opts...)
}
