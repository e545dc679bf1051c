package domain

import "math/bits"

// Group is one blank-line delimited run of integers from a payload.
type Group struct {
	// Index is the 0-based position of the group in the payload.
	Index int

	// Line is the 1-based line number of the group's first value.
	Line int

	// Count is the number of values in the group.
	Count int

	// Sum is the total of all values in the group.
	Sum uint64
}

// Add folds v into the group's sum.
// It returns ErrOverflow and leaves the group unchanged if the sum would wrap.
func (g *Group) Add(v uint64) error {
	sum, carry := bits.Add64(g.Sum, v, 0)
	if carry != 0 {
		return ErrOverflow
	}
	g.Sum = sum
	g.Count++
	return nil
}

// Total adds up values, failing with ErrOverflow instead of wrapping.
func Total(values []uint64) (uint64, error) {
	var total uint64
	for _, v := range values {
		var carry uint64
		total, carry = bits.Add64(total, v, 0)
		if carry != 0 {
			return 0, ErrOverflow
		}
	}
	return total, nil
}
