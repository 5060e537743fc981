// Package delivery defines the contract every transport implementation
// (HTTP today, more later) has to satisfy.
package delivery

import "context"

// Delivery is a serving surface started by the application container.
type Delivery interface {
	Serve(ctx context.Context) error
}
