package groupsum

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bft-labs/groupsum/internal/domain"
)

// maxLineBytes bounds a single payload line.
const maxLineBytes = 1 << 20

// ReadGroups parses r into groups in payload order.
// Lines are trimmed of surrounding whitespace; a line that is empty after
// trimming ends the current group. Consecutive blank lines never produce an
// empty group.
func ReadGroups(r io.Reader) ([]Group, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)

	var groups []Group
	open := false
	lineNo := 0
	for sc.Scan() {
		lineNo++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			open = false
			continue
		}

		v, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return nil, &domain.ParseError{Line: lineNo, Text: text, Err: err}
		}

		if !open {
			groups = append(groups, Group{Index: len(groups), Line: lineNo})
			open = true
		}
		g := &groups[len(groups)-1]
		if err := g.Add(v); err != nil {
			return nil, fmt.Errorf("group %d at line %d: %w", g.Index, g.Line, err)
		}
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &domain.ParseError{
				Line: lineNo + 1,
				Text: fmt.Sprintf("<line longer than %d bytes>", maxLineBytes),
				Err:  err,
			}
		}
		return nil, fmt.Errorf("read payload: %w", err)
	}
	return groups, nil
}

// ReadGroupSums parses r and returns one sum per group, in payload order.
func ReadGroupSums(r io.Reader) ([]uint64, error) {
	groups, err := ReadGroups(r)
	if err != nil {
		return nil, err
	}
	return sumsOf(groups), nil
}

// GroupSums is ReadGroupSums for an in-memory payload.
func GroupSums(payload string) ([]uint64, error) {
	return ReadGroupSums(strings.NewReader(payload))
}

func sumsOf(groups []Group) []uint64 {
	sums := make([]uint64, len(groups))
	for i, g := range groups {
		sums[i] = g.Sum
	}
	return sums
}
