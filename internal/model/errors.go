package model

import (
	"errors"
	"fmt"
)

// Error kinds reported by the record store
var (
	// ErrNotFound means nothing is stored at the path yet (first run)
	ErrNotFound = errors.New("playerlist not found")
	// ErrIO covers read/write/permission failures other than not found
	ErrIO = errors.New("playerlist i/o error")
	// ErrFormat covers parse and serialize failures
	ErrFormat = errors.New("playerlist format error")
	// ErrDirectoryUnavailable means no config directory could be determined
	ErrDirectoryUnavailable = errors.New("config directory unavailable")
	// ErrUnrecoverable means an existing playerlist could not be loaded and
	// must not be replaced
	ErrUnrecoverable = errors.New("failed to load playerlist")

	// Parsing errors
	ErrInvalidSteamID = errors.New("invalid steamid")
	ErrInvalidVerdict = errors.New("invalid verdict")
)

// FileError ties an error kind to the path it happened on
type FileError struct {
	Kind error
	Path string
	Err  error
}

// NewFileError creates a FileError
func NewFileError(kind error, path string, err error) *FileError {
	return &FileError{Kind: kind, Path: path, Err: err}
}

func (e *FileError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Path, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %s", e.Path, e.Kind, e.Err)
}

// Unwrap exposes both the kind and the cause to errors.Is
func (e *FileError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
