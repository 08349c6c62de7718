// Package delivery defines the contract for inbound transports.
package delivery

import "context"

// Delivery is a server that accepts requests until its context ends or the
// fx lifecycle shuts it down.
type Delivery interface {
	Serve(ctx context.Context) error
}
