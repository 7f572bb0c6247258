// Package lifecycle holds shared constants for application start and shutdown handling.
package lifecycle

import "time"

// DefaultTimeout bounds startup and graceful shutdown hooks.
const DefaultTimeout = 10 * time.Second
