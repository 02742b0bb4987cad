// Package delivery defines the transports that expose the admin application.
package delivery

import "context"

// Delivery is one externally reachable server of the application.
type Delivery interface {
	// Serve runs the server until it fails or is shut down.
	Serve(ctx context.Context) error
}
