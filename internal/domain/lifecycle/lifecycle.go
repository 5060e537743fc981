// Package lifecycle holds shared constants for application lifecycle management.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown operations such as database
// pings and HTTP server drain.
const DefaultTimeout = 10 * time.Second
