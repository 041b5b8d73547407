// ABOUTME: Playback engine package
// ABOUTME: Variable-speed PCM playback with rate-plan decimation
// Package player streams a 16-bit PCM file to a fixed-rate hardware sink at
// an arbitrary speed multiplier.
//
// The sink accepts only a bounded range of sample rates (8000-48000 Hz),
// but the desired rate (source rate x speed) may fall outside it. The
// engine combines two rate-changing mechanisms: the sink clock is
// programmed to the nearest legal rate, and any residual speed-up is
// approximated by fractional frame skipping (decimation).
//
// Example:
//
//	engine := player.New(sink.NewOto(), player.Options{})
//	engine.SetSpeed(3.0)
//
//	stats, err := engine.Play(ctx, "test.wav")
//	if err != nil {
//	    return err
//	}
//	log.Printf("skipped %.1f%% of samples", stats.SkippedPercent())
package player
