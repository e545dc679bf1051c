package groupsum

import (
	"io"
	"strings"

	"github.com/bft-labs/groupsum/internal/domain"
	"github.com/bft-labs/groupsum/pkg/log"
)

// Group is one blank-line delimited run of integers and its sum.
type Group = domain.Group

// Re-exported domain errors for callers outside this module.
var (
	ErrParse              = domain.ErrParse
	ErrEmptyInput         = domain.ErrEmptyInput
	ErrInsufficientGroups = domain.ErrInsufficientGroups
	ErrOverflow           = domain.ErrOverflow
)

// ParseError reports a line that is not a non-negative decimal integer.
type ParseError = domain.ParseError

// Result holds both answers for one payload.
type Result struct {
	// Part1 is the largest group sum.
	Part1 uint64 `json:"part1"`

	// Part2 is the total of the top-k group sums.
	Part2 uint64 `json:"part2"`

	// Groups is the number of groups in the payload.
	Groups int `json:"groups"`

	// Top lists the sums that make up Part2, largest first.
	Top []uint64 `json:"top"`
}

// Option configures a Solver.
type Option func(*Solver)

// WithTopK sets how many of the largest groups Part2 totals.
// Values below 1 are ignored.
func WithTopK(k int) Option {
	return func(s *Solver) {
		if k > 0 {
			s.topK = k
		}
	}
}

// WithStrict makes Part2 fail with ErrInsufficientGroups when the payload
// has fewer than k groups, instead of totalling the groups it has.
func WithStrict(strict bool) Option {
	return func(s *Solver) {
		s.strict = strict
	}
}

// WithLogger sets the logger used for debug output.
// If not provided, a no-op logger is used.
func WithLogger(logger log.Logger) Option {
	return func(s *Solver) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Solver computes both answers from one pass over a payload.
// A Solver holds no per-payload state and may be reused.
type Solver struct {
	topK   int
	strict bool
	logger log.Logger
}

// New creates a Solver. Without options it totals the top 3 groups and
// degrades gracefully on short payloads.
func New(opts ...Option) *Solver {
	s := &Solver{
		topK:   DefaultTopK,
		logger: log.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Solve parses r and computes both parts. On error the Result is zero.
func (s *Solver) Solve(r io.Reader) (Result, error) {
	groups, err := ReadGroups(r)
	if err != nil {
		return Result{}, err
	}
	s.logger.Debug("parsed payload",
		log.Int("groups", len(groups)),
		log.Int("top_k", s.topK),
		log.Bool("strict", s.strict))

	sums := sumsOf(groups)
	part1, err := Max(sums)
	if err != nil {
		return Result{}, err
	}
	part2, top, err := TopTotal(sums, s.topK, s.strict)
	if err != nil {
		return Result{}, err
	}
	if len(sums) < s.topK {
		s.logger.Warn("fewer groups than top-k, totalling all groups",
			log.Int("groups", len(sums)),
			log.Int("top_k", s.topK))
	}
	s.logger.Debug("ranked groups", log.Uint64("part2", part2), log.Any("top", top))

	return Result{
		Part1:  part1,
		Part2:  part2,
		Groups: len(groups),
		Top:    top,
	}, nil
}

// SolveString is Solve for an in-memory payload.
func (s *Solver) SolveString(payload string) (Result, error) {
	return s.Solve(strings.NewReader(payload))
}
