// Package lifecycle holds shared server lifecycle constants.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of the delivery servers.
const DefaultTimeout = 10 * time.Second
