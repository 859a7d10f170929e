package memory

import (
	"fmt"

	"github.com/mcoot/playerlist/internal/model"
	"github.com/mcoot/playerlist/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	files map[string][]byte

	// WriteErr, if set, is returned from every Write
	WriteErr error
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		files: make(map[string][]byte),
	}
}

// Ensure Storage implements the interface
var _ storage.Backend = (*Storage)(nil)

func (s *Storage) Read(path string) ([]byte, error) {
	data, ok := s.files[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrNotFound, path)
	}
	result := make([]byte, len(data))
	copy(result, data)
	return result, nil
}

func (s *Storage) Write(path string, data []byte) error {
	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.files[path] = make([]byte, len(data))
	copy(s.files[path], data)
	return nil
}

func (s *Storage) Describe(path string) string {
	return "memory:" + path
}

// Exists reports whether anything has been written to path
func (s *Storage) Exists(path string) bool {
	_, ok := s.files[path]
	return ok
}
