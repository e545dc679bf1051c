package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/bft-labs/groupsum/internal/ports"
	"github.com/bft-labs/groupsum/pkg/groupsum"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Formats lists the names accepted by NewWriter.
var Formats = []string{FormatText, FormatJSON}

// TextWriter writes "part1=<v>" and "part2=<v>" lines.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a TextWriter on w.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// Write emits both lines in one write.
func (t *TextWriter) Write(res groupsum.Result) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "part1=%d\npart2=%d\n", res.Part1, res.Part2)
	if _, err := t.w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}

// JSONWriter writes one JSON object per result, newline terminated.
type JSONWriter struct {
	w io.Writer
}

// NewJSONWriter creates a JSONWriter on w.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// Write emits res as a single JSON line.
func (j *JSONWriter) Write(res groupsum.Result) error {
	if res.Top == nil {
		res.Top = []uint64{}
	}
	b, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	b = append(b, '\n')
	if _, err := j.w.Write(b); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}

// NewWriter returns the writer for format.
func NewWriter(format string, w io.Writer) (ports.ResultWriter, error) {
	switch format {
	case FormatText:
		return NewTextWriter(w), nil
	case FormatJSON:
		return NewJSONWriter(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
