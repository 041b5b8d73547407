// ABOUTME: PCM container (WAV) reading package
// ABOUTME: Parses the fixed 44-byte header and streams the sample payload
// Package wav reads 16-bit PCM WAV files the way the playback engine needs
// them: the canonical 44-byte header is parsed at fixed byte offsets and the
// remaining bytes are exposed as a sequential int16 stream.
//
// The container-size and data-chunk-size header fields are deliberately
// ignored; end of stream is the sole termination signal for the payload.
//
// Example:
//
//	r, err := wav.Open("test.wav")
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
//	buf := make([]int16, 2048)
//	for {
//	    n, err := r.ReadChunk(buf)
//	    if err != nil {
//	        return err
//	    }
//	    if n == 0 {
//	        break // end of stream
//	    }
//	    play(buf[:n])
//	}
package wav
