// Package ports defines the interfaces that connect the runner to
// infrastructure adapters.
//
// # Port Interfaces
//
//   - [PayloadSource]: opens the payload text (file, stdin, bundled example)
//   - [ResultWriter]: renders a computed result (text lines, JSON)
//   - [Logger]: structured logging abstraction
//
// The runner (internal/app) depends only on these interfaces. Adapters in
// internal/adapters implement them, which keeps the runner testable with
// in-memory sources and writers.
package ports
