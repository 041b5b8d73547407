// ABOUTME: Playback statistics
// ABOUTME: Cumulative played/skipped sample counters per session
package player

// Stats accumulates per-session sample counters. Valid even on early
// termination.
type Stats struct {
	SamplesPlayed  int64
	SamplesSkipped int64
	Chunks         int64
}

// SkippedPercent returns the aggregate skip ratio as a percentage, 0 when
// no decimation occurred.
func (s Stats) SkippedPercent() float64 {
	total := s.SamplesPlayed + s.SamplesSkipped
	if total == 0 {
		return 0
	}
	return 100 * float64(s.SamplesSkipped) / float64(total)
}
