// ABOUTME: Per-session rate planning
// ABOUTME: Clamps the sink clock and derives the residual decimation ratio
package player

import "math"

// Sink clock limits. These mirror the hardware's supported range and are
// fixed engine constants, not probed at runtime.
const (
	MinSinkRate = 8000
	MaxSinkRate = 48000
)

// RatePlan is the one-time computation, per playback session, of the
// achievable sink rate plus the residual decimation ratio needed to
// approximate the requested speed.
type RatePlan struct {
	Desired  float64 // source rate x speed, before rounding
	SinkRate int     // clamped to [MinSinkRate, MaxSinkRate]
	Ratio    float64 // >= 1.0; 1.0 means no decimation
}

// PlanRate computes the rate plan for a source sample rate and speed
// multiplier. When the desired rate is below MinSinkRate the clock is
// clamped up without compensation, so pitch will be off; that is an
// accepted approximation.
func PlanRate(sampleRate uint32, speed float64) RatePlan {
	desired := float64(sampleRate) * speed

	sinkRate := int(math.Round(desired))
	if sinkRate < MinSinkRate {
		sinkRate = MinSinkRate
	}
	if sinkRate > MaxSinkRate {
		sinkRate = MaxSinkRate
	}

	ratio := 1.0
	if desired > MaxSinkRate {
		ratio = desired / MaxSinkRate
	}

	return RatePlan{
		Desired:  desired,
		SinkRate: sinkRate,
		Ratio:    ratio,
	}
}
