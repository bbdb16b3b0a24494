package database

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// WithShutdown returns a context that is cancelled on SIGTERM or SIGINT,
// so in-flight queries are abandoned. onSignal, if not nil, runs before
// the cancel. The returned cancel func stops listening for signals.
func WithShutdown(parent context.Context, onSignal func(os.Signal)) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		defer signal.Stop(sigChan)
		select {
		case sig := <-sigChan:
			if onSignal != nil {
				onSignal(sig)
			}
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
