package ablzw

import (
	"errors"
	"io"
)

// Reader decompresses an AB-LZW stream on demand: it decodes one
// dictionary symbol at a time into an internal scratch buffer and serves
// it out through Read, the way a pull-source never rewinds and never
// needs to know the total output length up front.
type Reader struct {
	br       *bitReader
	d        *dictionary
	prev     uint16
	havePrev bool
	buf      []byte
	pending  []byte
	done     bool
	err      error
}

// NewReader validates the one-byte maxbits header and returns a Reader
// ready to decompress the rest of r.
func NewReader(r io.Reader) (io.ReadCloser, error) {
	br := newBitReader(r)
	hdr, err := br.readCode(8)
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrTruncated
		}
		return nil, err
	}
	maxbits := int(hdr)
	if maxbits < 9 || maxbits > 16 {
		return nil, ErrBadHeader
	}
	return &Reader{
		br:  br,
		d:   newDictionary(maxbits),
		buf: make([]byte, 1<<maxbits+1),
	}, nil
}

// fill decodes codes until one of them produces output, or the stream
// ends. CLEAR codes are consumed silently.
func (r *Reader) fill() error {
	for {
		if r.done {
			return io.EOF
		}
		// The dictionary entry that will be completed once this code's
		// first byte is known was already counted by the encoder when it
		// picked this code's width (it inserts immediately after every
		// emission); the decoder can only fill that entry in next
		// iteration, so it must widen its own read by one slot to match.
		n := r.d.n
		if r.havePrev && !r.d.full {
			n++
		}
		codeU32, err := decodeSymbol(r.br, n)
		if err != nil {
			if errors.Is(err, io.ErrUnexpectedEOF) {
				return ErrTruncated
			}
			return err
		}
		code := uint16(codeU32)

		if code == codeEnd {
			r.done = true
			return io.EOF
		}
		if code == codeClear {
			r.d.reset()
			r.havePrev = false
			continue
		}

		kwkwk := r.havePrev && !r.d.full && int(code) == r.d.n
		if !kwkwk && int(code) >= r.d.n {
			return ErrBadCode
		}

		var s []byte
		if kwkwk {
			sub := r.d.expand(r.prev, r.buf[:len(r.buf)-1])
			s = append(sub, sub[0])
		} else {
			s = r.d.expand(code, r.buf)
		}

		if r.havePrev {
			r.d.insert(r.prev, s[0])
		}
		r.prev = code
		r.havePrev = true
		r.pending = s
		return nil
	}
}

// Read implements io.Reader.
func (r *Reader) Read(p []byte) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	if len(r.pending) == 0 {
		if err := r.fill(); err != nil {
			if err == io.EOF {
				return 0, io.EOF
			}
			r.err = err
			return 0, err
		}
	}
	n := copy(p, r.pending)
	r.pending = r.pending[n:]
	return n, nil
}

// Close releases the Reader's state. The underlying source is never
// owned by Reader and is left untouched.
func (r *Reader) Close() error {
	return nil
}
