// ABOUTME: Playback session lifecycle
// ABOUTME: Owns the reader, the sink channel, and the read-decimate-write loop
package player

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Pulseplay-Audio/pulseplay-go/pkg/sink"
	"github.com/Pulseplay-Audio/pulseplay-go/pkg/wav"
	"github.com/google/uuid"
)

// session owns one playback's resources: the open reader, the exclusively
// held sink channel, the sample buffer, and the decimation cursor.
type session struct {
	id      string
	path    string
	speed   float64
	reader  *wav.Reader
	channel sink.Channel
	enabled bool
	plan    RatePlan
	dec     *Decimator
	buf     []int16
	timeout time.Duration
	stats   Stats

	onProgress func(Progress)
}

// newSession opens the source, computes the rate plan, and acquires an
// enabled sink channel. On any failure the partially acquired resources
// are released before returning.
func (e *Engine) newSession(path string) (*session, error) {
	reader, err := wav.Open(path)
	if err != nil {
		switch {
		case errors.Is(err, wav.ErrTruncated), errors.Is(err, wav.ErrUnsupportedBitDepth):
			log.Printf("Header parse failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
		default:
			log.Printf("Open failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
		}
	}

	desc := reader.Descriptor()
	speed := e.Speed()
	plan := PlanRate(desc.SampleRate, speed)

	sess := &session{
		id:         uuid.New().String(),
		path:       path,
		speed:      speed,
		reader:     reader,
		plan:       plan,
		dec:        NewDecimator(plan.Ratio, e.opts.CarryPhase),
		buf:        make([]int16, e.opts.ChunkSize),
		timeout:    e.opts.WriteTimeout,
		onProgress: e.opts.OnProgress,
	}

	log.Printf("Session %s: %s %dHz %dch, speed %.2fx -> desired %.0fHz, sink %dHz, ratio %.4f",
		sess.id, path, desc.SampleRate, desc.Channels, speed, plan.Desired, plan.SinkRate, plan.Ratio)

	channel, err := e.snk.Create(plan.SinkRate, int(desc.Channels))
	if err != nil {
		reader.Close()
		log.Printf("Channel configure failed: %v", err)
		return nil, fmt.Errorf("%w: create channel: %v", ErrSink, err)
	}
	sess.channel = channel

	if err := channel.Enable(); err != nil {
		channel.Destroy()
		reader.Close()
		log.Printf("Channel enable failed: %v", err)
		return nil, fmt.Errorf("%w: enable channel: %v", ErrSink, err)
	}
	sess.enabled = true

	return sess, nil
}

// run executes the chunked read-decimate-write loop until end of stream,
// a terminal error, or ctx cancellation.
func (s *session) run(ctx context.Context) (Stats, error) {
	for {
		select {
		case <-ctx.Done():
			log.Printf("Session %s cancelled after %d chunks", s.id, s.stats.Chunks)
			return s.stats, ctx.Err()
		default:
		}

		n, err := s.reader.ReadChunk(s.buf)
		if err != nil {
			log.Printf("Stream read failed: %v", err)
			return s.stats, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
		}
		if n == 0 {
			log.Printf("Session %s complete: %d chunks, %d played, %d skipped (%.1f%%)",
				s.id, s.stats.Chunks, s.stats.SamplesPlayed, s.stats.SamplesSkipped, s.stats.SkippedPercent())
			return s.stats, nil
		}

		written := s.dec.Compact(s.buf[:n])
		s.stats.SamplesSkipped += int64(n - written)
		s.stats.SamplesPlayed += int64(written)
		s.stats.Chunks++

		if written > 0 {
			if _, err := s.channel.Write(s.buf[:written], s.timeout); err != nil {
				log.Printf("Stream write failed: %v", err)
				return s.stats, fmt.Errorf("%w: write: %v", ErrSink, err)
			}
		}

		if s.onProgress != nil {
			s.onProgress(Progress{
				SessionID: s.id,
				Path:      s.path,
				Speed:     s.speed,
				Plan:      s.plan,
				Stats:     s.stats,
			})
		}
	}
}

// close releases the channel and the reader. Safe on every exit path.
func (s *session) close() {
	if s.channel != nil {
		if s.enabled {
			if err := s.channel.Disable(); err != nil {
				log.Printf("Channel disable failed: %v", err)
			}
		}
		if err := s.channel.Destroy(); err != nil {
			log.Printf("Channel destroy failed: %v", err)
		}
		s.channel = nil
	}
	if s.reader != nil {
		s.reader.Close()
		s.reader = nil
	}
}
