// Package delivery defines the contract every transport front end satisfies.
package delivery

import "context"

// Delivery is a running transport surface, such as the HTTP API. Serve blocks
// until the server stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
