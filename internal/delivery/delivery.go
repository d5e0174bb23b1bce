// Package delivery defines the contract every transport entrypoint implements.
package delivery

import "context"

// Delivery is a serving surface of the application, started by main and
// stopped through the Fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
