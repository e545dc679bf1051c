package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/bft-labs/groupsum/internal/ports"
	"github.com/bft-labs/groupsum/pkg/groupsum"
	"github.com/bft-labs/groupsum/pkg/log"
)

// Runner loads a payload, solves it and writes the result.
type Runner struct {
	source ports.PayloadSource
	solver *groupsum.Solver
	writer ports.ResultWriter
	logger ports.Logger

	// mu serialises runs so watch-triggered re-runs never interleave output.
	mu sync.Mutex
}

// NewRunner creates a Runner with the given dependencies.
// A nil logger discards log output.
func NewRunner(
	source ports.PayloadSource,
	solver *groupsum.Solver,
	writer ports.ResultWriter,
	logger ports.Logger,
) *Runner {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Runner{
		source: source,
		solver: solver,
		writer: writer,
		logger: logger,
	}
}

// RunOnce solves the payload once. Nothing is written unless both parts
// were computed.
func (r *Runner) RunOnce(ctx context.Context) (groupsum.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rc, err := r.source.Open(ctx)
	if err != nil {
		return groupsum.Result{}, err
	}
	defer rc.Close()

	res, err := r.solver.Solve(rc)
	if err != nil {
		return groupsum.Result{}, fmt.Errorf("solve %s: %w", r.source.Name(), err)
	}

	if err := r.writer.Write(res); err != nil {
		return groupsum.Result{}, err
	}

	r.logger.Info("solved",
		log.String("source", r.source.Name()),
		log.Int("groups", res.Groups),
		log.Uint64("part1", res.Part1),
		log.Uint64("part2", res.Part2))
	return res, nil
}
