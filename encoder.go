package lzwin

import "io"

// An Encoder holds the sliding window and lookahead buffers for one
// compression pass. It is not safe for concurrent use; each pass owns
// its state exclusively. Encode may be called repeatedly to compress
// independent streams with the same configuration.
type Encoder struct {
	cfg       Config
	maxCopy   int
	window    []byte // always full (len == cfg.WindowSize) while the main loop runs
	lookahead []byte
	bw        bitWriter
	eof       bool
}

// NewEncoder returns an Encoder for cfg. A nil cfg means DefaultConfig.
func NewEncoder(cfg *Config) (*Encoder, error) {
	c := DefaultConfig()
	if cfg != nil {
		c = *cfg
	}
	c, err := c.normalized()
	if err != nil {
		return nil, err
	}

	return &Encoder{
		cfg:       c,
		maxCopy:   c.maxCopy(),
		window:    make([]byte, 0, c.WindowSize),
		lookahead: make([]byte, 0, c.LookaheadSize),
	}, nil
}

// Encode reads src to EOF, compresses it, and writes the bit-packed
// stream to dst. It returns the number of compressed bytes written.
func (e *Encoder) Encode(dst io.Writer, src io.Reader) (int64, error) {
	if dst == nil {
		return 0, ErrNilWriter
	}
	if src == nil {
		return 0, ErrNilReader
	}

	e.reset()
	if err := e.seed(src); err != nil {
		return 0, err
	}

	for {
		if err := e.fill(src); err != nil {
			return 0, err
		}
		if len(e.lookahead) == 0 {
			break
		}
		if err := e.step(); err != nil {
			return 0, err
		}
	}

	n, err := dst.Write(e.bw.bytes())
	return int64(n), err
}

// reset prepares the Encoder for a new stream.
func (e *Encoder) reset() {
	e.window = e.window[:0]
	e.lookahead = e.lookahead[:0]
	e.bw = bitWriter{}
	e.eof = false
}

// seed reads the first WindowSize bytes of input into the window and
// emits each of them as an unconditional literal. No match search runs
// over the initial window itself.
func (e *Encoder) seed(src io.Reader) error {
	n, err := io.ReadFull(src, e.window[0:e.cfg.WindowSize])
	switch err {
	case nil:
	case io.EOF, io.ErrUnexpectedEOF:
		e.eof = true
	default:
		return err
	}

	e.window = e.window[:n]
	for _, b := range e.window {
		if err := e.writeToken(Literal(b)); err != nil {
			return err
		}
	}

	return nil
}

// fill tops the lookahead up to capacity, or to as much as the source
// has left.
func (e *Encoder) fill(src io.Reader) error {
	for len(e.lookahead) < e.cfg.LookaheadSize && !e.eof {
		have := len(e.lookahead)
		n, err := src.Read(e.lookahead[have:e.cfg.LookaheadSize])
		e.lookahead = e.lookahead[:have+n]
		if err == io.EOF {
			e.eof = true
		} else if err != nil {
			return err
		}
	}

	return nil
}

// step encodes one token and slides both buffers past the bytes it
// covers. The main loop only runs once the window is full, so
// WindowSize - offset is always a valid backward distance.
func (e *Encoder) step() error {
	offset, length := findLongestMatch(e.window, e.lookahead)

	// Distance is measured backward from the end of the window, not as
	// the raw window index.
	distance := e.cfg.WindowSize - offset
	if length > e.maxCopy {
		length = e.maxCopy
	}

	var t Token
	if length > 1 {
		t = Pointer(distance, length)
	} else {
		length = 1
		t = Literal(e.lookahead[0])
	}
	if err := e.writeToken(t); err != nil {
		return err
	}

	e.slide(length)
	return nil
}

// slide advances both buffers by n: the n bytes consumed from the front
// of the lookahead move to the tail of the window, and the window drops
// n bytes from its front.
func (e *Encoder) slide(n int) {
	w := e.window
	copy(w, w[n:])
	copy(w[len(w)-n:], e.lookahead[:n])

	m := copy(e.lookahead, e.lookahead[n:])
	e.lookahead = e.lookahead[:m]
}

// writeToken appends the bit-level encoding of t to the output stream.
func (e *Encoder) writeToken(t Token) error {
	if !t.IsPointer() {
		e.bw.writeBit(0)
		e.bw.writeBits(uint32(t.Lit), 8)
		return nil
	}

	if err := t.check(); err != nil {
		return err
	}
	e.bw.writeBit(1)
	e.bw.writeBits(uint32(t.Distance), distanceBits)
	e.bw.writeBits(uint32(t.Length), lengthBits)
	return nil
}
