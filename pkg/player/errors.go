// ABOUTME: Playback outcome taxonomy
// ABOUTME: Sentinel errors classifying session failures by stage
package player

import "errors"

// All session errors are terminal: nothing is retried internally and full
// resource cleanup precedes the return. Callers classify with errors.Is.
var (
	// ErrSourceUnavailable indicates the source file is missing or
	// unreadable. No sink channel is ever created.
	ErrSourceUnavailable = errors.New("player: source unavailable")

	// ErrUnsupportedFormat indicates a truncated header or a bit depth
	// other than 16. No sink channel is ever created.
	ErrUnsupportedFormat = errors.New("player: unsupported format")

	// ErrSink indicates a channel create, enable, or write failure.
	ErrSink = errors.New("player: sink failure")
)
