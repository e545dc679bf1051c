// Package groupsum sums blank-line separated groups of integers and ranks
// the totals.
//
// A payload is a block of text with one non-negative decimal integer per
// line. Blank lines separate groups:
//
//	1000
//	2000
//	3000
//
//	4000
//
// Two answers are derived from the group sums: the largest sum
// ([MaxGroupSum]) and the total of the three largest sums ([TopGroupSum]).
// A [Solver] computes both from a single pass over an [io.Reader] and can be
// tuned with options:
//
//	s := groupsum.New(groupsum.WithTopK(3), groupsum.WithStrict(true))
//	res, err := s.Solve(f)
//
// # Errors
//
// Malformed lines fail with a *domain.ParseError (errors.Is(err,
// ErrParse)). A payload without any group fails with ErrEmptyInput. With
// fewer than k groups the top-k total sums every group that exists, unless
// the solver is strict, in which case it fails with ErrInsufficientGroups.
// Sums are 64-bit; a total that does not fit fails with ErrOverflow.
package groupsum
