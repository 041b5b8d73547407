// ABOUTME: Sink and Channel interface definitions
// ABOUTME: Common contract for fixed-rate audio output backends
package sink

import "time"

// Sink creates playback channels at a fixed sample rate and channel mode.
type Sink interface {
	// Create configures a new output channel. The channel is exclusively
	// owned by the caller until Destroy.
	Create(rateHz, channels int) (Channel, error)
}

// Channel is a configured hardware output channel.
type Channel interface {
	// Enable starts the channel clock. Must be called before Write.
	Enable() error

	// Write pushes samples to the hardware, blocking until accepted or
	// the timeout elapses. A timeout <= 0 blocks indefinitely. Returns
	// the number of samples written.
	Write(samples []int16, timeout time.Duration) (int, error)

	// Disable stops the channel clock.
	Disable() error

	// Destroy releases the channel. The channel cannot be reused after.
	Destroy() error
}
