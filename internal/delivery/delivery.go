// Package delivery defines the contract every transport-level server
// (HTTP, worker, ...) fulfills so main can start them uniformly.
package delivery

import "context"

// Delivery is a long-running server that blocks in Serve until it stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
