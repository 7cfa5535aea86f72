// Package lifecycle holds shared timing constants for fx start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers, publishers and database pools.
const DefaultTimeout = 10 * time.Second
