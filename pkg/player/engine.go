// ABOUTME: Playback engine public API
// ABOUTME: Owns the speed multiplier and drives sessions against the sink
package player

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/Pulseplay-Audio/pulseplay-go/pkg/sink"
)

// Speed multiplier bounds. Values outside the range are clamped; values
// <= 0 are invalid and replaced with DefaultSpeed.
const (
	MinSpeed     = 0.25
	MaxSpeed     = 4.0
	DefaultSpeed = 1.0
)

const (
	// DefaultChunkSize is the session buffer size in samples.
	DefaultChunkSize = 2048

	// DefaultWriteTimeout bounds a single sink write. A stalled sink is
	// treated as a write failure rather than waited on indefinitely.
	DefaultWriteTimeout = 5 * time.Second
)

// Progress is published to the OnProgress callback after each chunk.
type Progress struct {
	SessionID string
	Path      string
	Speed     float64
	Plan      RatePlan
	Stats     Stats
}

// Options configures an Engine.
type Options struct {
	// ChunkSize is the session buffer size in samples (default 2048).
	ChunkSize int

	// CarryPhase carries the decimation phase across chunk boundaries
	// instead of resetting it per chunk.
	CarryPhase bool

	// WriteTimeout bounds each sink write (default 5s).
	WriteTimeout time.Duration

	// OnProgress, when set, receives per-chunk progress updates.
	OnProgress func(Progress)
}

// Engine plays PCM files against a sink at a configurable speed.
type Engine struct {
	snk  sink.Sink
	opts Options

	mu    sync.RWMutex // guards speed
	speed float64

	playMu sync.Mutex // serializes sessions; the channel is exclusively owned
}

// New creates an engine over the given sink.
func New(s sink.Sink, opts Options) *Engine {
	if opts.ChunkSize <= 0 {
		opts.ChunkSize = DefaultChunkSize
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = DefaultWriteTimeout
	}

	return &Engine{
		snk:   s,
		opts:  opts,
		speed: DefaultSpeed,
	}
}

// SetSpeed sets the playback speed multiplier. Values <= 0 are invalid and
// reset the speed to 1.0; out-of-range values clamp to [0.25, 4.0]. Speed
// must be set before Play; a session in progress keeps the speed it
// started with.
func (e *Engine) SetSpeed(multiplier float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch {
	case multiplier <= 0:
		log.Printf("Invalid playback speed %.2f, using %.2f", multiplier, DefaultSpeed)
		e.speed = DefaultSpeed
	case multiplier < MinSpeed:
		log.Printf("Playback speed %.2f below minimum, clamping to %.2f", multiplier, MinSpeed)
		e.speed = MinSpeed
	case multiplier > MaxSpeed:
		log.Printf("Playback speed %.2f above maximum, clamping to %.2f", multiplier, MaxSpeed)
		e.speed = MaxSpeed
	default:
		e.speed = multiplier
	}
}

// Speed returns the current speed multiplier.
func (e *Engine) Speed() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.speed
}

// Play streams the file at path until end of stream, a terminal error, or
// ctx cancellation (checked at each chunk boundary). It is synchronous and
// returns the session's cumulative stats, which are valid even on early
// termination. The sink channel is released on every exit path.
func (e *Engine) Play(ctx context.Context, path string) (Stats, error) {
	e.playMu.Lock()
	defer e.playMu.Unlock()

	sess, err := e.newSession(path)
	if err != nil {
		return Stats{}, err
	}
	defer sess.close()

	return sess.run(ctx)
}
