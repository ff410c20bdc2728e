package ablzw

import (
	"bufio"
	"io"
)

// bitWriter packs variable-width codes into a byte stream, LSB-first: the
// first code written occupies the low bits of the first output byte.
type bitWriter struct {
	w    io.Writer
	acc  uint64
	nbit uint
	buf  [1]byte
}

func newBitWriter(w io.Writer) *bitWriter {
	return &bitWriter{w: w}
}

// writeCode packs the low `width` bits of code into the stream.
func (bw *bitWriter) writeCode(code uint32, width uint) error {
	bw.acc |= (uint64(code) & (1<<width - 1)) << bw.nbit
	bw.nbit += width
	for bw.nbit >= 8 {
		bw.buf[0] = byte(bw.acc)
		if _, err := bw.w.Write(bw.buf[:]); err != nil {
			return err
		}
		bw.acc >>= 8
		bw.nbit -= 8
	}
	return nil
}

// flush pads any partial final byte with zero bits and writes it out.
func (bw *bitWriter) flush() error {
	if bw.nbit == 0 {
		return nil
	}
	bw.buf[0] = byte(bw.acc)
	if _, err := bw.w.Write(bw.buf[:]); err != nil {
		return err
	}
	bw.acc = 0
	bw.nbit = 0
	return nil
}

// bitReader is the mirror image of bitWriter: it pulls bytes from the
// source on demand and serves them back as LSB-first variable-width codes.
type bitReader struct {
	r    io.ByteReader
	acc  uint64
	nbit uint
}

func newBitReader(r io.Reader) *bitReader {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &bitReader{r: br}
}

// readCode reads exactly `width` bits and returns them as an integer. It
// returns io.ErrUnexpectedEOF if the source runs dry mid-code.
func (br *bitReader) readCode(width uint) (uint32, error) {
	for br.nbit < width {
		b, err := br.r.ReadByte()
		if err != nil {
			if err == io.EOF {
				return 0, io.ErrUnexpectedEOF
			}
			return 0, err
		}
		br.acc |= uint64(b) << br.nbit
		br.nbit += 8
	}
	code := uint32(br.acc & ((1 << width) - 1))
	br.acc >>= width
	br.nbit -= width
	return code, nil
}
