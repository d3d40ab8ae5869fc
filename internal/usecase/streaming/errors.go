package streaming

import (
	"errors"
	"fmt"
)

var (
	ErrBlobNotFound        = errors.New("streaming: blob not found")
	ErrBucketNotFound      = errors.New("streaming: bucket not found")
	ErrStoreUnavailable    = errors.New("streaming: store unavailable")
	ErrMalformedRange      = errors.New("streaming: malformed range header")
	ErrRangeNotSatisfiable = errors.New("streaming: range not satisfiable")
)

// RangeNotSatisfiableError carries the blob size so callers can emit the
// `Content-Range: bytes */<size>` advisory alongside a 416.
type RangeNotSatisfiableError struct {
	Header string
	Size   int64
}

func (e *RangeNotSatisfiableError) Error() string {
	return fmt.Sprintf("%v: %q against %d bytes", ErrRangeNotSatisfiable, e.Header, e.Size)
}

func (e *RangeNotSatisfiableError) Unwrap() error {
	return ErrRangeNotSatisfiable
}
