// Package ablzw implements the Adjusted-Binary LZW streaming compressor
// and decompressor.
//
// AB-LZW is a classic LZW dictionary coder with two departures from the
// textbook algorithm: codes are packed using adjusted-binary (phase-in)
// widths instead of fixed-width codes, and once the dictionary fills it
// keeps running by recycling leaf entries instead of freezing. A
// performance monitor watches the running compression ratio and emits a
// CLEAR code to reset the dictionary outright if recycling stops paying
// for itself.
//
//	w, err := ablzw.NewWriter(dst, 12)
//	if err != nil {
//		// ...
//	}
//	if _, err := w.Write(data); err != nil {
//		// ...
//	}
//	if err := w.Close(); err != nil {
//		// ...
//	}
//
//	r, err := ablzw.NewReader(src)
//	if err != nil {
//		// ...
//	}
//	defer r.Close()
//	out, err := io.ReadAll(r)
//
// Compress and Decompress wrap the above for callers that already hold
// the whole payload in memory.
package ablzw
