package lzwin

import "fmt"

// A Decoder reconstructs the original byte sequence from a complete
// bit-packed stream. The format carries no length framing, so the whole
// stream must be materialized before decoding; trailing bits too short
// to hold a full token are padding and are discarded.
type Decoder struct {
	cfg Config
}

// NewDecoder returns a Decoder for cfg. A nil cfg means DefaultConfig.
// The token field widths are constants of the format; cfg records which
// encoder configuration produced the streams this decoder will see.
func NewDecoder(cfg *Config) (*Decoder, error) {
	c := DefaultConfig()
	if cfg != nil {
		c = *cfg
	}
	c, err := c.normalized()
	if err != nil {
		return nil, err
	}

	return &Decoder{cfg: c}, nil
}

// Decode decompresses a complete stream and returns the reconstructed
// bytes. The output is opaque: any byte values round-trip, not just
// text.
func (d *Decoder) Decode(src []byte) ([]byte, error) {
	br := bitReader{data: src}
	out := make([]byte, 0, 2*len(src))

	for br.remaining() >= literalBits {
		if br.readBits(1) == 0 {
			out = append(out, byte(br.readBits(8)))
			continue
		}

		if br.remaining() < distanceBits+lengthBits {
			return nil, ErrTruncatedPointer
		}
		distance := int(br.readBits(distanceBits))
		length := int(br.readBits(lengthBits))

		var err error
		out, err = appendCopy(out, distance, length)
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

// appendCopy resolves one back-reference: the source region starts
// distance bytes from the end of out as it stands before the copy. When
// distance < length the region overlaps the bytes being appended, and
// the copy must go byte by byte so each appended byte is visible as a
// source for the rest of the same copy (the distance-byte pattern
// repeats until length bytes are produced).
func appendCopy(out []byte, distance, length int) ([]byte, error) {
	if length == 0 {
		return nil, ErrBadLength
	}
	if distance < 1 || distance > len(out) {
		return nil, fmt.Errorf("%w: distance=%d produced=%d", ErrBadDistance, distance, len(out))
	}

	start := len(out) - distance
	if distance >= length {
		return append(out, out[start:start+length]...), nil
	}

	for i := 0; i < length; i++ {
		out = append(out, out[start+i])
	}
	return out, nil
}
