// ABOUTME: Oto-based sink implementation
// ABOUTME: Feeds a persistent pipe-backed oto player with 16-bit PCM
package sink

import (
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/Pulseplay-Audio/pulseplay-go/pkg/audio"
	"github.com/ebitengine/oto/v3"
)

// Oto is a Sink backed by the oto library.
type Oto struct {
	mu         sync.Mutex
	otoCtx     *oto.Context
	sampleRate int
	channels   int
}

// NewOto creates a new oto sink.
func NewOto() Sink {
	return &Oto{}
}

// Create configures an output channel at the given rate and channel mode.
// oto allows one context per process, so the first Create pins the clock;
// a later format change keeps the existing context with a warning.
func (o *Oto) Create(rateHz, channels int) (Channel, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.otoCtx == nil {
		op := &oto.NewContextOptions{
			SampleRate:   rateHz,
			ChannelCount: channels,
			Format:       oto.FormatSignedInt16LE,
		}

		ctx, readyChan, err := oto.NewContext(op)
		if err != nil {
			return nil, fmt.Errorf("failed to create oto context: %w", err)
		}

		<-readyChan

		o.otoCtx = ctx
		o.sampleRate = rateHz
		o.channels = channels

		log.Printf("Audio sink initialized: %dHz, %d channels", rateHz, channels)
	} else if o.sampleRate != rateHz || o.channels != channels {
		log.Printf("Warning: format change (%dHz %dch -> %dHz %dch) but oto doesn't support reinitialization. Continuing with existing context.",
			o.sampleRate, o.channels, rateHz, channels)
	}

	pipeReader, pipeWriter := io.Pipe()

	return &otoChannel{
		otoCtx:     o.otoCtx,
		pipeReader: pipeReader,
		pipeWriter: pipeWriter,
	}, nil
}

// otoChannel streams samples through an io.Pipe into a persistent player.
type otoChannel struct {
	otoCtx     *oto.Context
	player     *oto.Player
	pipeReader *io.PipeReader
	pipeWriter *io.PipeWriter
}

// Enable creates the persistent player and starts playback.
func (c *otoChannel) Enable() error {
	if c.player != nil {
		return fmt.Errorf("channel already enabled")
	}

	c.player = c.otoCtx.NewPlayer(c.pipeReader)
	c.player.Play()

	return nil
}

type writeResult struct {
	n   int
	err error
}

// Write pushes samples into the pipe feeding the player.
func (c *otoChannel) Write(samples []int16, timeout time.Duration) (int, error) {
	if c.player == nil {
		return 0, fmt.Errorf("channel not enabled")
	}

	raw := make([]byte, len(samples)*audio.BytesPerSample)
	audio.EncodeInt16LE(raw, samples)

	if timeout <= 0 {
		n, err := c.pipeWriter.Write(raw)
		if err != nil {
			return n / audio.BytesPerSample, fmt.Errorf("pipe write failed: %w", err)
		}
		return n / audio.BytesPerSample, nil
	}

	done := make(chan writeResult, 1)
	go func() {
		n, err := c.pipeWriter.Write(raw)
		done <- writeResult{n: n, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			return res.n / audio.BytesPerSample, fmt.Errorf("pipe write failed: %w", res.err)
		}
		return res.n / audio.BytesPerSample, nil
	case <-time.After(timeout):
		// Destroy closes the pipe, which unblocks the pending writer.
		return 0, fmt.Errorf("sink write timed out after %s", timeout)
	}
}

// Disable pauses the player.
func (c *otoChannel) Disable() error {
	if c.player != nil {
		c.player.Pause()
	}
	return nil
}

// Destroy releases the player and the pipe.
func (c *otoChannel) Destroy() error {
	if c.pipeWriter != nil {
		c.pipeWriter.Close()
		c.pipeWriter = nil
	}
	if c.player != nil {
		c.player.Close()
		c.player = nil
	}
	if c.pipeReader != nil {
		c.pipeReader.Close()
		c.pipeReader = nil
	}
	return nil
}
