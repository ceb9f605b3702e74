// Package lifecycle defines shared timeouts for startup and shutdown hooks.
package lifecycle

import "time"

// DefaultTimeout bounds fx lifecycle hooks and graceful shutdown.
const DefaultTimeout = 10 * time.Second
