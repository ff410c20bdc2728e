package ablzw

import "errors"

// Sentinel errors returned by Reader and Writer. All three correspond to
// the BAD_HEADER, BAD_CODE and TRUNCATED failure modes of the wire format;
// a sink refusing a write surfaces as whatever error the underlying
// io.Writer returned, unwrapped.
var (
	ErrBadHeader = errors.New("ablzw: invalid maxbits header")
	ErrBadCode   = errors.New("ablzw: code references an unassigned dictionary slot")
	ErrTruncated = errors.New("ablzw: truncated compressed stream")
)
