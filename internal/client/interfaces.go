package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until the user quits,
	// the input ends or a fatal error occurs.
	Run(ctx context.Context) error
}
