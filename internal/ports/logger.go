package ports

import "github.com/bft-labs/groupsum/pkg/log"

// Logger is the structured logging port. It is the pkg/log interface so the
// command's zerolog adapter plugs in directly.
type Logger = log.Logger
