// Package fs serves audio objects from a local directory.
package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/dtroode/trackbox-server/internal/model"
)

var _ model.AudioSource = (*Source)(nil)

// Source reads audio files from dir.
type Source struct {
	dir string
}

// NewSource creates dir if it does not exist yet.
func NewSource(dir string) (*Source, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create audio directory: %w", err)
	}
	return &Source{dir: dir}, nil
}

// Dir returns the directory audio files are read from.
func (s *Source) Dir() string {
	return s.dir
}

func (s *Source) path(name string) (string, error) {
	if name == "" || filepath.Base(name) != name {
		return "", fmt.Errorf("invalid audio file name %q: %w", name, model.ErrNotFound)
	}
	return filepath.Join(s.dir, name), nil
}

// Stat returns the size of a regular file or model.ErrNotFound.
func (s *Source) Stat(_ context.Context, name string) (int64, error) {
	p, err := s.path(name)
	if err != nil {
		return 0, err
	}

	info, err := os.Stat(p)
	if errors.Is(err, iofs.ErrNotExist) {
		return 0, model.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to stat audio file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return 0, model.ErrNotFound
	}

	return info.Size(), nil
}

// Open returns a reader limited to [offset, offset+length). Reads fail once ctx is done.
func (s *Source) Open(ctx context.Context, name string, offset, length int64) (io.ReadCloser, error) {
	p, err := s.path(name)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(p)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file: %w", err)
	}

	return &fileReader{
		ctx:    ctx,
		reader: io.NewSectionReader(f, offset, length),
		file:   f,
	}, nil
}

// Location names the file relative to the audio directory's parent, e.g.
// "audio/1.mp3", so host paths stay out of client messages.
func (s *Source) Location(name string) string {
	return filepath.Join(filepath.Base(s.dir), name)
}

type fileReader struct {
	ctx    context.Context
	reader io.Reader
	file   *os.File
}

func (r *fileReader) Read(p []byte) (int, error) {
	if err := r.ctx.Err(); err != nil {
		return 0, err
	}
	return r.reader.Read(p)
}

func (r *fileReader) Close() error {
	return r.file.Close()
}
