package ablzw

import "io"

// Writer buffers everything written to it and emits the AB-LZW
// compressed form to the underlying io.Writer on Close, mirroring the
// buffer-then-process-on-Close shape of a one-shot block compressor: the
// encoder needs the whole input to decide how code widths evolve, so
// there is nothing useful to emit before Close.
type Writer struct {
	w       io.Writer
	maxbits int
	data    []byte
	closed  bool
	err     error
}

// NewWriter returns a Writer that compresses everything written to it
// using a dictionary capped at 1<<maxbits entries. maxbits must be
// between 9 and 16 inclusive.
func NewWriter(w io.Writer, maxbits int) (*Writer, error) {
	if maxbits < 9 || maxbits > 16 {
		return nil, ErrBadHeader
	}
	return &Writer{w: w, maxbits: maxbits}, nil
}

// Write appends p to the pending input. It never fails on its own; any
// error is deferred to Close, where the actual encoding happens.
func (wtr *Writer) Write(p []byte) (int, error) {
	if wtr.err != nil {
		return 0, wtr.err
	}
	wtr.data = append(wtr.data, p...)
	return len(p), nil
}

// Close encodes everything written so far and flushes it to the
// underlying writer. It is safe to call more than once; only the first
// call does any work.
func (wtr *Writer) Close() error {
	if wtr.closed {
		return wtr.err
	}
	wtr.closed = true
	if wtr.err != nil {
		return wtr.err
	}
	if _, err := wtr.w.Write([]byte{byte(wtr.maxbits)}); err != nil {
		wtr.err = err
		return err
	}
	bw := newBitWriter(wtr.w)
	if err := encode(wtr.data, wtr.maxbits, bw); err != nil {
		wtr.err = err
		return err
	}
	if err := bw.flush(); err != nil {
		wtr.err = err
		return err
	}
	return nil
}

// encode runs the AB-LZW encoding algorithm (spec.md §4.5) over src,
// writing codes to bw.
func encode(src []byte, maxbits int, bw *bitWriter) error {
	d := newDictionary(maxbits)
	if len(src) == 0 {
		return encodeSymbol(bw, codeEnd, d.n)
	}

	mon := newPerfMonitor()
	pos := 0
	wCode := uint16(src[pos])
	pos++

	for pos < len(src) {
		b := src[pos]
		if c, ok := d.lookup(wCode, b); ok {
			wCode = c
			pos++
			continue
		}

		n := d.n
		if err := encodeSymbol(bw, uint32(wCode), n); err != nil {
			return err
		}
		bitsOut := symbolWidth(uint32(wCode), n)
		bytesIn := int(d.stringLen(wCode))

		d.insert(wCode, b)
		mon.observe(bytesIn, bitsOut)

		wCode = uint16(b)
		pos++

		if d.full && mon.shouldFlush() {
			if err := encodeSymbol(bw, codeClear, d.n); err != nil {
				return err
			}
			d.reset()
			mon.resetAfterClear()
		}
	}

	if err := encodeSymbol(bw, uint32(wCode), d.n); err != nil {
		return err
	}

	// The decoder always decodes the code that follows a real code as if
	// one more dictionary slot is about to be filled in, since in the
	// normal case it is (see Reader.fill). END is the one code that
	// breaks that pattern: nothing ever completes the slot a real END
	// would have reserved, because there is no further code to supply
	// its first byte. Matching that assumption here rather than
	// special-casing the decoder keeps the decode loop uniform.
	endN := d.n
	if !d.full {
		endN++
	}
	return encodeSymbol(bw, codeEnd, endN)
}
