// Package delivery defines the contract every transport entry point satisfies.
package delivery

import "context"

// Delivery is a transport entry point (HTTP today) that blocks in Serve until
// the process shuts down.
type Delivery interface {
	Serve(ctx context.Context) error
}
