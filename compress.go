package ablzw

import "bytes"

// Compress returns the AB-LZW compressed form of src using a dictionary
// capped at 1<<maxbits entries.
func Compress(src []byte, maxbits int) ([]byte, error) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, maxbits)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(src); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
