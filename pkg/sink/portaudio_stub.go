//go:build !portaudio

// ABOUTME: PortAudio stub when library not available
// ABOUTME: Provides compile-time placeholder when PortAudio not installed
package sink

import (
	"fmt"
)

// PortAudio sink implementation (stub)
type PortAudio struct{}

// NewPortAudio creates a new PortAudio sink
func NewPortAudio() Sink {
	return &PortAudio{}
}

// Create configures an output channel
func (p *PortAudio) Create(rateHz, channels int) (Channel, error) {
	return nil, fmt.Errorf("PortAudio support not enabled (build with -tags portaudio)")
}
