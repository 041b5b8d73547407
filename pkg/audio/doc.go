// ABOUTME: Audio fundamentals package providing core types and utilities
// ABOUTME: Defines the stream Format and int16 sample/byte conversions
// Package audio provides fundamental audio types and utilities for PCM playback.
//
// This package defines the core types used throughout the pulseplay library:
//   - Format: Describes a PCM stream (sample rate, channels, bit depth)
//
// It also provides utilities for moving 16-bit samples across the byte
// boundary of files and output devices:
//   - EncodeInt16LE / DecodeInt16LE for little-endian sample packing
//
// Example:
//
//	format := audio.Format{
//	    SampleRate: 44100,
//	    Channels:   2,
//	    BitDepth:   16,
//	}
//
//	raw := make([]byte, len(samples)*audio.BytesPerSample)
//	audio.EncodeInt16LE(raw, samples)
package audio
