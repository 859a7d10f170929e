package file

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	"github.com/mcoot/playerlist/internal/model"
	"github.com/mcoot/playerlist/internal/storage"
)

// Storage keeps the playerlist in a file on the local filesystem
type Storage struct{}

// New creates a new file storage instance
func New() *Storage {
	return &Storage{}
}

// Ensure Storage implements the interface
var _ storage.Backend = (*Storage)(nil)

func (s *Storage) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", model.ErrNotFound, err)
		}
		return nil, err
	}
	return data, nil
}

// Write replaces the file through a temp file and rename, so a failed
// write never leaves a truncated playerlist behind
func (s *Storage) Write(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return err
		}
	}
	return atomic.WriteFile(path, bytes.NewReader(data))
}

func (s *Storage) Describe(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
