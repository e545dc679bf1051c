package domain

import "time"

// DefaultDebounce is the quiet period after an input change before watch
// mode re-runs.
const DefaultDebounce = 100 * time.Millisecond
