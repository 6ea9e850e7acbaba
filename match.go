package lzwin

// findLongestMatch scans every window offset in increasing order and
// returns the one whose suffix shares the longest common prefix with the
// lookahead, together with that length. Ties keep the first (lowest)
// offset. If either buffer is empty, or no offset matches even one byte,
// it returns (0, 0).
//
// The scan is the naive O(len(window) * len(lookahead)) comparison. Both
// buffers are small and bounded, and the offset selection order is part
// of the stream format: a faster finder that picked a different offset
// for an equal-length match would change the emitted bits.
func findLongestMatch(window, lookahead []byte) (offset, length int) {
	for i := 0; i < len(window); i++ {
		n := matchLen(window[i:], lookahead)
		if n > length {
			offset, length = i, n
		}
	}
	if length == 0 {
		return 0, 0
	}
	return offset, length
}

// matchLen returns the number of leading bytes equal between a and b.
func matchLen(a, b []byte) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}
