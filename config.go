package lzwin

// Format ceilings fixed by the token field widths.
const (
	// MaxWindowSize is the largest usable sliding window: a distance
	// must fit in an 8-bit field.
	MaxWindowSize = 1<<distanceBits - 1
	// MaxCopyLength is the longest back-reference: a length must fit in
	// a 4-bit field.
	MaxCopyLength = 1<<lengthBits - 1
)

// Config fixes the buffer capacities of a compression pass. The encoder
// and the decoder of a stream must agree on the token field widths;
// those are constants of the format, so any Config decodes any stream,
// but WindowSize and LookaheadSize determine what the encoder emits.
type Config struct {
	// WindowSize is the requested capacity of the sliding window. The
	// effective capacity never exceeds MaxWindowSize.
	WindowSize int
	// LookaheadSize is the capacity of the lookahead buffer. It caps
	// match lengths at min(MaxCopyLength, LookaheadSize).
	LookaheadSize int
}

// DefaultConfig returns the reference configuration: a full 255-byte
// window and a 20-byte lookahead.
func DefaultConfig() Config {
	return Config{WindowSize: MaxWindowSize, LookaheadSize: 20}
}

// normalized validates both sizes and caps WindowSize at MaxWindowSize.
func (c Config) normalized() (Config, error) {
	if c.WindowSize < 1 {
		return c, ErrWindowSize
	}
	if c.LookaheadSize < 1 {
		return c, ErrLookaheadSize
	}
	if c.WindowSize > MaxWindowSize {
		c.WindowSize = MaxWindowSize
	}
	return c, nil
}

// maxCopy returns the longest match the length field and the lookahead
// capacity allow.
func (c Config) maxCopy() int {
	if c.LookaheadSize < MaxCopyLength {
		return c.LookaheadSize
	}
	return MaxCopyLength
}
