package ablzw

import (
	"bytes"
	"io"
)

// Decompress returns the original bytes for an AB-LZW stream produced by
// Compress or Writer.
func Decompress(src []byte) ([]byte, error) {
	r, err := NewReader(bytes.NewReader(src))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}
