// The lzwin package implements a small streaming LZ77 compressor and
// decompressor.
//
// A bounded sliding window of recent input is scanned for the longest
// prefix match against a lookahead buffer. Matches longer than one byte
// become fixed-width pointers (8-bit backward distance, 4-bit length);
// everything else is a literal. Tokens are packed most significant bit
// first into a dense bitstream with no framing: one flag bit, then
// either 8 bits of literal or 12 bits of pointer, padded with zero bits
// to a byte boundary at the end of the stream.
//
// The match search is deliberately the naive window scan: offsets are
// tried in increasing order and the first longest match wins, so the
// emitted stream is a deterministic function of the input and Config.
package lzwin

import (
	"bytes"
	"io"
)

// Compress reads src until EOF, compresses it, and writes the bit-packed
// stream to dst. It returns the number of compressed bytes written.
// A nil cfg means DefaultConfig.
func Compress(dst io.Writer, src io.Reader, cfg *Config) (int64, error) {
	e, err := NewEncoder(cfg)
	if err != nil {
		return 0, err
	}
	return e.Encode(dst, src)
}

// CompressBytes compresses src in memory. A nil cfg means DefaultConfig.
func CompressBytes(src []byte, cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := Compress(&buf, bytes.NewReader(src), cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decompress decodes a complete compressed stream and returns the
// reconstructed bytes. A nil cfg means DefaultConfig.
func Decompress(src []byte, cfg *Config) ([]byte, error) {
	d, err := NewDecoder(cfg)
	if err != nil {
		return nil, err
	}
	return d.Decode(src)
}

// DecompressFromReader reads r to EOF and decodes the result. The format
// has no length framing, so decoding cannot start before the whole
// stream is available.
func DecompressFromReader(r io.Reader, cfg *Config) ([]byte, error) {
	if r == nil {
		return nil, ErrNilReader
	}
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decompress(src, cfg)
}
