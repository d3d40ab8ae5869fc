package streaming

import (
	"fmt"
	"strconv"
	"strings"
)

// byteRange is the parsed form of a Range header, offsets inclusive.
type byteRange struct {
	start int64
	end   int64
}

func (r byteRange) length() int64 {
	return r.end - r.start + 1
}

func (r byteRange) contentRange(size int64) string {
	return fmt.Sprintf("bytes %d-%d/%d", r.start, r.end, size)
}

// parseRange parses a client `bytes=<start>-[<end>]` header against the blob
// size. It returns nil when no header was supplied (full delivery). The start
// offset is required; a missing end defaults to size-1 and an explicit end is
// clamped to it. Offsets past the blob, or inverted ones, are rejected with
// ErrRangeNotSatisfiable rather than producing a negative window.
func parseRange(header string, size int64) (*byteRange, error) {
	if header == "" {
		return nil, nil
	}

	spec, ok := strings.CutPrefix(header, "bytes=")
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMalformedRange, header)
	}

	parts := strings.Split(spec, "-")
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: %q", ErrMalformedRange, header)
	}

	start, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad start in %q", ErrMalformedRange, header)
	}

	end := size - 1
	if parts[1] != "" {
		end, err = strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad end in %q", ErrMalformedRange, header)
		}
		if end > size-1 {
			end = size - 1
		}
	}

	if start >= size || end < start {
		return nil, &RangeNotSatisfiableError{Header: header, Size: size}
	}

	return &byteRange{start: start, end: end}, nil
}
