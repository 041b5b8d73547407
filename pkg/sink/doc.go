// ABOUTME: Hardware audio sink abstraction package
// ABOUTME: Fixed-rate output channels with an explicit lifecycle
// Package sink abstracts the fixed-rate hardware audio output.
//
// A Sink creates exclusively-owned Channels configured at a single sample
// rate and channel mode. A Channel walks a strict lifecycle: Create ->
// Enable -> Write... -> Disable -> Destroy. The engine owns at most one
// live channel at a time and guarantees Destroy on every exit path.
//
// Backends:
//   - Oto (default): cross-platform output via ebitengine/oto
//   - PortAudio: enabled with the "portaudio" build tag
package sink
