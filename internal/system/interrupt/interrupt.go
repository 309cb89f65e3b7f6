// Released under an MIT license. See LICENSE.

// Package interrupt stops a running reduction when the user asks.
package interrupt

import (
	"context"
	"os/signal"
)

// Context returns a context that is cancelled when the process receives one
// of the platform's interrupt signals. Call stop to stop listening.
func Context(parent context.Context) (ctx context.Context, stop context.CancelFunc) {
	return signal.NotifyContext(parent, platform...)
}
