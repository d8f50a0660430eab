// Package delivery defines the contract every transport front-end fulfils.
package delivery

import "context"

// Delivery is a serving surface (HTTP today). Implementations block in
// Serve until the listener fails or is shut down.
type Delivery interface {
	Serve(ctx context.Context) error
}
