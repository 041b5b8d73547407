// ABOUTME: WAV header parsing and sequential sample reads
// ABOUTME: Validates the 44-byte header and streams int16 chunks until EOF
package wav

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Pulseplay-Audio/pulseplay-go/pkg/audio"
)

// headerSize is the canonical PCM WAV header length.
const headerSize = 44

var (
	// ErrTruncated indicates the file ended before the 44-byte header.
	ErrTruncated = errors.New("wav: truncated header")

	// ErrUnsupportedBitDepth indicates a bit depth other than 16.
	ErrUnsupportedBitDepth = errors.New("wav: unsupported bit depth")
)

// Descriptor describes the PCM stream behind the header. Immutable once
// parsed.
type Descriptor struct {
	SampleRate    uint32
	Channels      uint16
	BitsPerSample uint16
}

// Format returns the descriptor as a generic audio format.
func (d Descriptor) Format() audio.Format {
	return audio.Format{
		SampleRate: int(d.SampleRate),
		Channels:   int(d.Channels),
		BitDepth:   int(d.BitsPerSample),
	}
}

// Reader streams 16-bit samples from an open container.
type Reader struct {
	f       *os.File
	desc    Descriptor
	scratch []byte
	eof     bool
}

// Open reads and validates the 44-byte header of the file at path.
//
// Header layout (little-endian): channel count at bytes [22,24), sample
// rate at [24,28), bits per sample at [34,36). No other fields are
// validated.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wav: open %s: %w", path, err)
	}

	header := make([]byte, headerSize)
	if _, err := io.ReadFull(f, header); err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %s", ErrTruncated, path)
	}

	desc := Descriptor{
		Channels:      binary.LittleEndian.Uint16(header[22:24]),
		SampleRate:    binary.LittleEndian.Uint32(header[24:28]),
		BitsPerSample: binary.LittleEndian.Uint16(header[34:36]),
	}

	if desc.BitsPerSample != 16 {
		f.Close()
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, desc.BitsPerSample)
	}

	return &Reader{f: f, desc: desc}, nil
}

// Descriptor returns the parsed stream descriptor.
func (r *Reader) Descriptor() Descriptor {
	return r.desc
}

// ReadChunk fills buf with up to len(buf) samples and returns the number
// read. It returns 0 at end of stream and on every call after that; a
// short final chunk is normal.
func (r *Reader) ReadChunk(buf []int16) (int, error) {
	if r.eof || len(buf) == 0 {
		return 0, nil
	}

	want := len(buf) * audio.BytesPerSample
	if len(r.scratch) < want {
		r.scratch = make([]byte, want)
	}

	n, err := io.ReadFull(r.f, r.scratch[:want])
	switch {
	case err == io.EOF || err == io.ErrUnexpectedEOF:
		r.eof = true
	case err != nil:
		return 0, fmt.Errorf("wav: read: %w", err)
	}

	return audio.DecodeInt16LE(buf, r.scratch[:n]), nil
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	return r.f.Close()
}
