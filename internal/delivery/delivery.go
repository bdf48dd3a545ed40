// Package delivery defines the contract every transport server implements.
package delivery

import "context"

// Delivery is a runnable transport server collected by fx into the
// "deliveries" group and started together.
type Delivery interface {
	Serve(ctx context.Context) error
}
