// Package lifecycle holds shared constants for process startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown operations such as
// pinging the database on start and draining the HTTP server on stop.
const DefaultTimeout = 10 * time.Second
