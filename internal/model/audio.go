package model

import (
	"context"
	"io"
)

// AudioSource gives access to audio objects by file name, e.g. "1.mp3".
type AudioSource interface {
	// Stat returns the object size or ErrNotFound.
	Stat(ctx context.Context, name string) (int64, error)
	// Open returns a reader over length bytes starting at offset.
	Open(ctx context.Context, name string, offset, length int64) (io.ReadCloser, error)
	// Location describes where the object is expected to live.
	Location(name string) string
}

// AudioStream is a resolved, ready to copy audio response.
type AudioStream struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
	Start       int64
	End         int64
	Partial     bool
}

// Length returns the number of bytes the stream will produce.
func (s *AudioStream) Length() int64 {
	if s.Size == 0 {
		return 0
	}
	return s.End - s.Start + 1
}
