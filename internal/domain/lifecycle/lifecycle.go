// Package lifecycle holds shared constants for application startup and
// shutdown handling.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown operations such as
// database pings and HTTP server drain.
const DefaultTimeout = 10 * time.Second
