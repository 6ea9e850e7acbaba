package lzwin

import (
	"bytes"
	"testing"
)

func TestBitStreamRoundTrip(t *testing.T) {
	fields := []struct {
		v     uint32
		width int
	}{
		{1, 1},
		{0xA5, 8},
		{0, 1},
		{13, 4},
		{0xFFF, 12},
		{1, 3},
		{255, 8},
	}

	var w bitWriter
	total := 0
	for _, f := range fields {
		w.writeBits(f.v, f.width)
		total += f.width
	}
	if w.bitLen() != total {
		t.Fatalf("bitLen = %d, want %d", w.bitLen(), total)
	}
	if len(w.bytes()) != (total+7)/8 {
		t.Fatalf("len(bytes) = %d, want %d", len(w.bytes()), (total+7)/8)
	}

	r := bitReader{data: w.bytes()}
	for _, f := range fields {
		if got := r.readBits(f.width); got != f.v {
			t.Fatalf("readBits(%d) = %d, want %d", f.width, got, f.v)
		}
	}
	if r.remaining() >= 8 {
		t.Fatalf("remaining = %d, want < 8", r.remaining())
	}
}

func TestBitWriterPadsWithZeros(t *testing.T) {
	var w bitWriter
	w.writeBits(0x1FF, 9) // all ones
	got := w.bytes()
	want := []byte{0xFF, 0x80}
	if !bytes.Equal(got, want) {
		t.Fatalf("got % x, want % x", got, want)
	}
}

func TestBitReaderRemaining(t *testing.T) {
	r := bitReader{data: []byte{0xAB, 0xCD}}
	if r.remaining() != 16 {
		t.Fatalf("remaining = %d, want 16", r.remaining())
	}
	r.readBits(9)
	if r.remaining() != 7 {
		t.Fatalf("remaining = %d, want 7", r.remaining())
	}
}
