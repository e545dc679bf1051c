// Package log provides the logging abstraction used by groupsum.
//
// The solver and the runner only depend on the [Logger] interface. The
// command wires in a zerolog-backed [ZerologAdapter]; library callers that
// want silence get [NoopLogger], which is also the default.
//
//	logger := log.NewZerologAdapter(os.Stderr, zerolog.InfoLevel)
//	solver := groupsum.New(groupsum.WithLogger(logger))
//
// Log output never goes to stdout, which is reserved for results.
package log
