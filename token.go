package lzwin

import "fmt"

// Field widths and bit costs of the two token kinds. The flag bit is 0
// for a literal and 1 for a pointer; multi-bit fields are big-endian.
const (
	distanceBits = 8
	lengthBits   = 4
	literalBits  = 1 + 8
	pointerBits  = 1 + distanceBits + lengthBits
)

// A Token is the atomic unit of the compressed format: a single literal
// byte, or a pointer copying Length bytes starting Distance bytes back
// from the end of the window.
type Token struct {
	Distance int  // backward distance from the end of the window; 0 for a literal
	Length   int  // bytes to copy; 0 for a literal
	Lit      byte // literal byte; meaningful only when Length == 0
}

// Literal returns a token carrying one uncompressed byte.
func Literal(b byte) Token {
	return Token{Lit: b}
}

// Pointer returns a back-reference token.
func Pointer(distance, length int) Token {
	return Token{Distance: distance, Length: length}
}

// IsPointer reports whether t is a back-reference rather than a literal.
func (t Token) IsPointer() bool {
	return t.Length > 0
}

// Cost returns the encoded size of t in bits: 9 for a literal, 13 for a
// pointer.
func (t Token) Cost() int {
	if t.IsPointer() {
		return pointerBits
	}
	return literalBits
}

// check validates the ranges imposed by the 8-bit distance and 4-bit
// length fields. Pointers of length 1 are also rejected: they cost more
// than the literal they replace, so the encoder never emits them. A
// failure here is an encoder bug, not a property of the input.
func (t Token) check() error {
	if !t.IsPointer() {
		return nil
	}
	if t.Distance < 1 || t.Distance > MaxWindowSize {
		return fmt.Errorf("%w: pointer distance %d", ErrInternal, t.Distance)
	}
	if t.Length < 2 || t.Length > MaxCopyLength {
		return fmt.Errorf("%w: pointer length %d", ErrInternal, t.Length)
	}
	return nil
}
