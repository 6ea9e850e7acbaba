package lzwin

import "errors"

// Sentinel errors for configuration, decoding, and internal invariants.
var (
	// ErrWindowSize is returned when Config.WindowSize is not positive.
	ErrWindowSize = errors.New("window size must be at least 1")
	// ErrLookaheadSize is returned when Config.LookaheadSize is not positive.
	ErrLookaheadSize = errors.New("lookahead size must be at least 1")
	// ErrNilReader is returned when a nil source reader is passed.
	ErrNilReader = errors.New("reader is nil")
	// ErrNilWriter is returned when a nil destination writer is passed.
	ErrNilWriter = errors.New("writer is nil")
	// ErrTruncatedPointer is returned when a pointer flag is read but the
	// stream ends before its distance and length fields.
	ErrTruncatedPointer = errors.New("unexpected end of stream inside pointer")
	// ErrBadDistance is returned when a pointer reaches back past the
	// start of the produced output, or carries a zero distance.
	ErrBadDistance = errors.New("pointer distance outside produced output")
	// ErrBadLength is returned when a pointer carries a zero length.
	ErrBadLength = errors.New("pointer length is zero")
	// ErrInternal is returned when the encoder builds a token outside the
	// representable field ranges. It indicates a bug, not bad input.
	// Callers can test for it with errors.Is(err, lzwin.ErrInternal).
	ErrInternal = errors.New("internal encoder error")
)
