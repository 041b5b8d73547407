// ABOUTME: Audio type definitions
// ABOUTME: Defines the PCM stream format and sample packing helpers
package audio

import "encoding/binary"

// BytesPerSample is the byte width of one 16-bit PCM sample.
const BytesPerSample = 2

// Format describes a PCM audio stream
type Format struct {
	SampleRate int
	Channels   int
	BitDepth   int
}

// Mono reports whether the stream carries a single channel
func (f Format) Mono() bool {
	return f.Channels == 1
}

// DecodeInt16LE unpacks little-endian bytes into dst and returns the
// number of samples written. A trailing odd byte is ignored.
func DecodeInt16LE(dst []int16, src []byte) int {
	n := len(src) / BytesPerSample
	if n > len(dst) {
		n = len(dst)
	}
	for i := 0; i < n; i++ {
		dst[i] = int16(binary.LittleEndian.Uint16(src[i*2:]))
	}
	return n
}

// EncodeInt16LE packs samples into dst as little-endian bytes and returns
// the number of bytes written. dst must hold len(samples)*2 bytes.
func EncodeInt16LE(dst []byte, samples []int16) int {
	for i, sample := range samples {
		binary.LittleEndian.PutUint16(dst[i*2:], uint16(sample))
	}
	return len(samples) * BytesPerSample
}
