// Package lifecycle holds shared constants for component start and stop.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown of infrastructure
// components (database ping, HTTP server drain, broker close).
const DefaultTimeout = 10 * time.Second
