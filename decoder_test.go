package lzwin

import (
	"errors"
	"testing"
)

func TestDecodeOverlappingCopy(t *testing.T) {
	// Literal 'a', literal 'b', then a pointer with distance 2 and
	// length 5: the two-byte pattern repeats into "ababa", giving
	// "abababa" in total. A naive slice copy would read past the end of
	// the produced output.
	stream := packBits("0 01100001  0 01100010  1 00000010 0101")
	out, err := Decompress(stream, nil)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "abababa" {
		t.Fatalf("decoded %q, want %q", out, "abababa")
	}
}

func TestDecodeSelfOverlapRun(t *testing.T) {
	// Distance 1 against a single produced byte unfolds into a run.
	stream := packBits("0 01111000  1 00000001 1111")
	out, err := Decompress(stream, nil)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "xxxxxxxxxxxxxxxx" {
		t.Fatalf("decoded %q", out)
	}
}

func TestDecodeDistanceEqualsLength(t *testing.T) {
	// distance == length is a plain copy of the last distance bytes.
	stream := packBits("0 01100001  0 01100010  1 00000010 0010")
	out, err := Decompress(stream, nil)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "abab" {
		t.Fatalf("decoded %q, want %q", out, "abab")
	}
}

func TestDecodeDistanceBeyondOutput(t *testing.T) {
	// First token is a pointer reaching back 5 bytes into nothing.
	stream := packBits("1 00000101 0011")
	if _, err := Decompress(stream, nil); !errors.Is(err, ErrBadDistance) {
		t.Fatalf("want ErrBadDistance, got %v", err)
	}
}

func TestDecodeZeroDistance(t *testing.T) {
	stream := packBits("0 01100001  1 00000000 0010")
	if _, err := Decompress(stream, nil); !errors.Is(err, ErrBadDistance) {
		t.Fatalf("want ErrBadDistance, got %v", err)
	}
}

func TestDecodeZeroLength(t *testing.T) {
	stream := packBits("0 01100001  1 00000001 0000")
	if _, err := Decompress(stream, nil); !errors.Is(err, ErrBadLength) {
		t.Fatalf("want ErrBadLength, got %v", err)
	}
}

func TestDecodeTruncatedPointer(t *testing.T) {
	// Literal 'a' (9 bits), pointer distance 1 length 7 (13 bits), then a
	// pointer flag with only 9 bits left in the stream: enough to enter
	// the loop, not enough for the distance and length fields.
	stream := packBits("0 01100001  1 00000001 0111  1 000000000")
	if len(stream) != 4 {
		t.Fatalf("fixture is %d bytes, want 4", len(stream))
	}
	if _, err := Decompress(stream, nil); !errors.Is(err, ErrTruncatedPointer) {
		t.Fatalf("want ErrTruncatedPointer, got %v", err)
	}
}

func TestDecodeTrailingPadIgnored(t *testing.T) {
	// A single literal plus 7 pad bits: the pad is below the 9-bit token
	// minimum and must not decode to anything.
	stream := packBits("0 01100001")
	out, err := Decompress(stream, nil)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "a" {
		t.Fatalf("decoded %q, want %q", out, "a")
	}
}

func TestDecodeEmptyStream(t *testing.T) {
	out, err := Decompress(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 0 {
		t.Fatalf("decoded %d bytes from empty stream", len(out))
	}
}
