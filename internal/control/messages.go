// ABOUTME: Control protocol message definitions
// ABOUTME: JSON message types exchanged over the control WebSocket
package control

import "encoding/json"

// Message is the top-level wrapper for all control messages
type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// SpeedSet requests a playback speed change (speed/set) and carries the
// applied value back in the speed/ack reply.
type SpeedSet struct {
	Speed float64 `json:"speed"`
}

// PlaybackStart requests playback of a file (playback/start)
type PlaybackStart struct {
	Path string `json:"path"`
}

// PlaybackAck acknowledges an accepted playback request (playback/ack)
type PlaybackAck struct {
	SessionAccepted bool   `json:"session_accepted"`
	Path            string `json:"path"`
}

// StatusReport describes the engine state (status/report)
type StatusReport struct {
	Speed          float64 `json:"speed"`
	State          string  `json:"state"` // "playing" or "idle"
	SamplesPlayed  int64   `json:"samples_played"`
	SamplesSkipped int64   `json:"samples_skipped"`
	SkippedPercent float64 `json:"skipped_percent"`
	LastError      string  `json:"last_error,omitempty"`
}

// ErrorReply reports a rejected or failed request (error)
type ErrorReply struct {
	Message string `json:"message"`
}
