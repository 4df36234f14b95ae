package bridge

import "time"

// BridgeBuilderOption is a functional option for configuring a Bridge.
// Use the With* functions to create options that are applied directly to the bridge instance.
type BridgeBuilderOption func(*bridgeImpl)

// WithListenAddr sets the address the bridge server listens on.
// Defaults to ":8384".
//
// Parameters:
//   - addr: listen address in host:port form
//
// Returns:
//   - BridgeBuilderOption: option function to apply
func WithListenAddr(addr string) BridgeBuilderOption {
	return func(b *bridgeImpl) {
		if addr != "" {
			b.listenAddr = addr
		}
	}
}

// WithWriteTimeout sets the per-message write deadline for client sends.
// Clients that miss the deadline during a broadcast are dropped.
// Defaults to 200ms.
//
// Parameters:
//   - timeout: write deadline per message
//
// Returns:
//   - BridgeBuilderOption: option function to apply
func WithWriteTimeout(timeout time.Duration) BridgeBuilderOption {
	return func(b *bridgeImpl) {
		if timeout > 0 {
			b.writeTimeout = timeout
		}
	}
}
