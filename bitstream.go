package lzwin

// bitWriter is an append-only bit buffer. Fields are packed most
// significant bit first with no alignment between tokens; the unused low
// bits of the final byte stay zero, which is exactly the padding the
// format requires.
type bitWriter struct {
	buf []byte
	n   int // bits written
}

// writeBit appends a single bit.
func (w *bitWriter) writeBit(b byte) {
	if w.n&7 == 0 {
		w.buf = append(w.buf, 0)
	}
	if b != 0 {
		w.buf[w.n>>3] |= 0x80 >> uint(w.n&7)
	}
	w.n++
}

// writeBits appends the width low bits of v, most significant first.
func (w *bitWriter) writeBits(v uint32, width int) {
	for i := width - 1; i >= 0; i-- {
		w.writeBit(byte(v>>uint(i)) & 1)
	}
}

// bitLen returns the number of bits written so far.
func (w *bitWriter) bitLen() int { return w.n }

// bytes returns the packed stream, zero-padded to the next byte
// boundary.
func (w *bitWriter) bytes() []byte { return w.buf }

// bitReader consumes a fully materialized bitstream from the front.
type bitReader struct {
	data []byte
	pos  int // bit position
}

// remaining returns the number of unread bits.
func (r *bitReader) remaining() int { return len(r.data)*8 - r.pos }

// readBits reads the next width bits as a big-endian value. The caller
// must check remaining first.
func (r *bitReader) readBits(width int) uint32 {
	var v uint32
	for i := 0; i < width; i++ {
		v <<= 1
		if r.data[r.pos>>3]&(0x80>>uint(r.pos&7)) != 0 {
			v |= 1
		}
		r.pos++
	}
	return v
}
