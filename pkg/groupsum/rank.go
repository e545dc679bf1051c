package groupsum

import (
	"fmt"

	"github.com/bft-labs/groupsum/internal/domain"
)

// DefaultTopK is the number of largest groups totalled by TopGroupSum.
const DefaultTopK = 3

// Max returns the largest value in sums.
func Max(sums []uint64) (uint64, error) {
	if len(sums) == 0 {
		return 0, domain.ErrEmptyInput
	}
	m := sums[0]
	for _, s := range sums[1:] {
		if s > m {
			m = s
		}
	}
	return m, nil
}

// TopK returns the k largest values of sums in descending order.
// It keeps a running selection of at most k values, so it runs in O(n·k)
// and never reorders sums. Fewer than k values are returned when sums is
// shorter than k.
func TopK(sums []uint64, k int) []uint64 {
	if k <= 0 {
		return nil
	}
	top := make([]uint64, 0, min(k, len(sums)))
	for _, s := range sums {
		if len(top) < k {
			top = append(top, 0)
		} else if s <= top[len(top)-1] {
			continue
		}
		i := len(top) - 1
		for i > 0 && top[i-1] < s {
			top[i] = top[i-1]
			i--
		}
		top[i] = s
	}
	return top
}

// TopTotal sums the k largest values of sums and returns them alongside the
// total. With fewer than k values it totals all of them, or fails with
// ErrInsufficientGroups when strict is set.
func TopTotal(sums []uint64, k int, strict bool) (uint64, []uint64, error) {
	if len(sums) == 0 {
		return 0, nil, domain.ErrEmptyInput
	}
	if strict && len(sums) < k {
		return 0, nil, fmt.Errorf("%w: have %d, need %d", domain.ErrInsufficientGroups, len(sums), k)
	}
	top := TopK(sums, k)
	total, err := domain.Total(top)
	if err != nil {
		return 0, nil, fmt.Errorf("top %d total: %w", k, err)
	}
	return total, top, nil
}

// MaxGroupSum returns the largest group sum in payload.
func MaxGroupSum(payload string) (uint64, error) {
	sums, err := GroupSums(payload)
	if err != nil {
		return 0, err
	}
	return Max(sums)
}

// TopGroupSum returns the total of the three largest group sums in payload.
// Payloads with one or two groups total what they have.
func TopGroupSum(payload string) (uint64, error) {
	sums, err := GroupSums(payload)
	if err != nil {
		return 0, err
	}
	total, _, err := TopTotal(sums, DefaultTopK, false)
	return total, err
}
