// Package byterange parses single byte ranges from HTTP Range headers.
package byterange

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrMalformed means the header is not of the form "bytes=<start>-[<end>]".
	ErrMalformed = errors.New("malformed range")
	// ErrUnsatisfiable means the range does not overlap the resource.
	ErrUnsatisfiable = errors.New("range not satisfiable")
)

// Range is an inclusive byte interval.
type Range struct {
	Start int64
	End   int64
}

// Length returns the number of bytes in r.
func (r Range) Length() int64 {
	return r.End - r.Start + 1
}

// ContentRange formats r for the Content-Range response header.
func (r Range) ContentRange(size int64) string {
	return fmt.Sprintf("bytes %d-%d/%d", r.Start, r.End, size)
}

// Parse resolves header against a resource of size bytes.
//
// Only the first range of a multi-range header is used. The start offset is
// required, so suffix ranges ("bytes=-500") are rejected. An end beyond the
// resource is clamped to size-1.
func Parse(header string, size int64) (Range, error) {
	unit, spec, ok := strings.Cut(strings.TrimSpace(header), "=")
	if !ok || !strings.EqualFold(strings.TrimSpace(unit), "bytes") {
		return Range{}, fmt.Errorf("%w: unsupported unit in %q", ErrMalformed, header)
	}

	if first, _, multi := strings.Cut(spec, ","); multi {
		spec = first
	}

	startStr, endStr, ok := strings.Cut(strings.TrimSpace(spec), "-")
	if !ok {
		return Range{}, fmt.Errorf("%w: missing '-' in %q", ErrMalformed, header)
	}

	startStr = strings.TrimSpace(startStr)
	endStr = strings.TrimSpace(endStr)

	start, err := parseOffset(startStr)
	if err != nil {
		return Range{}, fmt.Errorf("%w: start: %v", ErrMalformed, err)
	}

	end := size - 1
	if endStr != "" {
		end, err = parseOffset(endStr)
		if err != nil {
			return Range{}, fmt.Errorf("%w: end: %v", ErrMalformed, err)
		}
		if end < start {
			return Range{}, fmt.Errorf("%w: end %d before start %d", ErrMalformed, end, start)
		}
	}

	if start >= size {
		return Range{}, fmt.Errorf("%w: start %d, size %d", ErrUnsatisfiable, start, size)
	}
	if end >= size {
		end = size - 1
	}

	return Range{Start: start, End: end}, nil
}

func parseOffset(s string) (int64, error) {
	if s == "" {
		return 0, errors.New("empty offset")
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("invalid offset %q", s)
		}
	}
	return strconv.ParseInt(s, 10, 64)
}
