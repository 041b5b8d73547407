//go:build portaudio

// ABOUTME: PortAudio sink implementation
// ABOUTME: Cross-platform audio output using PortAudio
package sink

import (
	"fmt"
	"time"

	"github.com/gordonklaus/portaudio"
)

// framesPerWrite is the bound-buffer size handed to PortAudio.
const framesPerWrite = 1024

// PortAudio is a Sink backed by the PortAudio library.
type PortAudio struct{}

// NewPortAudio creates a new PortAudio sink.
func NewPortAudio() Sink {
	return &PortAudio{}
}

// Create initializes PortAudio and opens a blocking output stream.
func (p *PortAudio) Create(rateHz, channels int) (Channel, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize portaudio: %w", err)
	}

	ch := &portAudioChannel{
		buffer:   make([]int16, framesPerWrite*channels),
		channels: channels,
	}

	stream, err := portaudio.OpenDefaultStream(0, channels, float64(rateHz), framesPerWrite, ch.buffer)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("failed to open stream: %w", err)
	}

	ch.stream = stream
	return ch, nil
}

// portAudioChannel writes samples through PortAudio's bound-buffer API.
type portAudioChannel struct {
	stream   *portaudio.Stream
	buffer   []int16
	channels int
}

// Enable starts the stream.
func (c *portAudioChannel) Enable() error {
	return c.stream.Start()
}

// Write pushes samples in bound-buffer sized slabs, zero-filling the tail
// of the final slab. The stream paces itself; timeout is not used.
func (c *portAudioChannel) Write(samples []int16, _ time.Duration) (int, error) {
	if c.stream == nil {
		return 0, fmt.Errorf("channel destroyed")
	}

	written := 0
	for written < len(samples) {
		n := copy(c.buffer, samples[written:])
		for i := n; i < len(c.buffer); i++ {
			c.buffer[i] = 0
		}

		if err := c.stream.Write(); err != nil {
			return written, fmt.Errorf("stream write failed: %w", err)
		}
		written += n
	}

	return written, nil
}

// Disable stops the stream.
func (c *portAudioChannel) Disable() error {
	return c.stream.Stop()
}

// Destroy closes the stream and terminates PortAudio.
func (c *portAudioChannel) Destroy() error {
	if c.stream != nil {
		if err := c.stream.Close(); err != nil {
			return err
		}
		c.stream = nil
	}
	return portaudio.Terminate()
}
