package ports

import "github.com/bft-labs/groupsum/pkg/groupsum"

// ResultWriter renders a result to its destination.
// Implementations write nothing when they return an error before output
// starts, and must write a result in a single call to the underlying writer.
type ResultWriter interface {
	Write(res groupsum.Result) error
}
