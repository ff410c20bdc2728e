package ablzw_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/mtrense/ablzw"
)

func TestSimpleCase(t *testing.T) {
	expected := "AIAIAIAIAIAIA"
	compressed, err := ablzw.Compress([]byte(expected), 9)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	r, err := ablzw.NewReader(bytes.NewReader(compressed))
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	decoded, err := io.ReadAll(r)
	if err != nil {
		t.Errorf("%v", err)
	}
	if string(decoded) != expected {
		t.Errorf("found=%v : expected=%v", string(decoded), expected)
	}
}

func TestInvalidHeader(t *testing.T) {
	testInput := []byte{0x2a, 0x04, 0x82}
	_, err := ablzw.NewReader(bytes.NewReader(testInput))
	if err != ablzw.ErrBadHeader {
		t.Error("failed to reject invalid header")
	}
}

func TestTruncatedStream(t *testing.T) {
	compressed, err := ablzw.Compress([]byte("AIAIAIAIAIAIA"), 9)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	truncated := compressed[:len(compressed)-1]
	r, err := ablzw.NewReader(bytes.NewReader(truncated))
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	if _, err := io.ReadAll(r); err == nil {
		t.Error("expected an error decoding a truncated stream")
	}
}

func TestEmptyInput(t *testing.T) {
	compressed, err := ablzw.Compress(nil, 9)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	decoded, err := ablzw.Decompress(compressed)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if len(decoded) != 0 {
		t.Errorf("expected empty output, got %v", decoded)
	}
}

func TestSingleByte(t *testing.T) {
	compressed, err := ablzw.Compress([]byte{0x42}, 9)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	decoded, err := ablzw.Decompress(compressed)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if !bytes.Equal(decoded, []byte{0x42}) {
		t.Errorf("found=%v : expected=%v", decoded, []byte{0x42})
	}
}
