package playerlist

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/mcoot/playerlist/internal/model"
	"github.com/mcoot/playerlist/internal/settings"
)

// Filename is the name of the playerlist inside the config directory, and
// the relative fallback when no config directory is available
const Filename = "playerlist.json"

// fileFormat is the persisted layout. Records are keyed by SteamID only;
// the id is not repeated inside each record.
type fileFormat struct {
	Records map[model.SteamID]*model.Record `json:"records"`
}

// LocatePlayerlistFile returns the playerlist path inside the config
// directory, or the locator's error if no directory could be determined
func LocatePlayerlistFile(locator settings.Locator) (string, error) {
	if locator == nil {
		return "", model.NewFileError(model.ErrDirectoryUnavailable, Filename, errors.New("no locator"))
	}
	dir, err := locator.ConfigDirectory()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, Filename), nil
}

// DefaultPath always returns a usable path, falling back to Filename in the
// working directory. The locator error is returned alongside so the caller
// can decide how loudly to report it.
func DefaultPath(locator settings.Locator) (string, error) {
	path, err := LocatePlayerlistFile(locator)
	if err != nil {
		return Filename, err
	}
	return path, nil
}

// NewDefault creates an empty store bound to the default path. It never
// fails; if the config directory is unavailable it warns and binds to the
// relative fallback.
func NewDefault(locator settings.Locator, opts ...Option) *Store {
	path, err := DefaultPath(locator)
	s := New(path, opts...)
	if err != nil {
		s.logger.Warn("failed to create config directory", slog.Any("error", err))
	}
	return s
}

// LoadOrCreate loads the playerlist from override, or from the default
// location if override is empty. A missing file yields an empty store bound
// to that path so the first save creates it.
//
// Any other failure (unreadable or malformed file) returns an error wrapping
// model.ErrUnrecoverable. The caller must stop rather than continue with an
// empty store, since the next save would overwrite the user's data.
func LoadOrCreate(override string, locator settings.Locator, opts ...Option) (*Store, error) {
	s := New(override, opts...)

	if s.path == "" {
		path, err := DefaultPath(locator)
		if err != nil {
			s.logger.Error("could not find a suitable location for the playerlist, "+
				"specify a file path manually with --playerlist otherwise information may not be saved",
				slog.Any("error", err))
		}
		s.SetPath(path)
	}

	err := s.load()
	switch {
	case err == nil:
		return s, nil
	case errors.Is(err, model.ErrNotFound):
		s.logger.Warn("could not locate playerlist, creating new playerlist", slog.String("path", s.Location()))
		return s, nil
	default:
		s.logger.Error("could not load playerlist", slog.Any("error", err))
		s.logger.Error("please resolve any issues or remove the file, otherwise data may be lost")
		return nil, fmt.Errorf("%w: %w", model.ErrUnrecoverable, err)
	}
}

// LoadFrom reads and parses the playerlist stored at path and binds the
// resulting store to it. Errors are *model.FileError of kind
// model.ErrNotFound, model.ErrIO or model.ErrFormat.
func LoadFrom(path string, opts ...Option) (*Store, error) {
	s := New(path, opts...)
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// load replaces the records with those stored at the bound path. On error
// the records are left untouched.
func (s *Store) load() error {
	data, err := s.backend.Read(s.path)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewFileError(model.ErrNotFound, s.path, err)
		}
		return model.NewFileError(model.ErrIO, s.path, err)
	}

	var contents fileFormat
	if err := json.Unmarshal(data, &contents); err != nil {
		return model.NewFileError(model.ErrFormat, s.path, err)
	}
	if contents.Records == nil {
		return model.NewFileError(model.ErrFormat, s.path, errors.New("missing field `records`"))
	}

	for id, r := range contents.Records {
		if r == nil {
			return model.NewFileError(model.ErrFormat, s.path, fmt.Errorf("record %s is null", id))
		}
		// Older versions wrote null custom data by default
		r.Normalize()
	}

	s.records = contents.Records
	return nil
}

// Save writes every record to the bound path, replacing what was there
func (s *Store) Save() error {
	data, err := json.Marshal(fileFormat{Records: s.records})
	if err != nil {
		return model.NewFileError(model.ErrFormat, s.path, err)
	}

	if err := s.backend.Write(s.path, data); err != nil {
		return model.NewFileError(model.ErrIO, s.path, err)
	}
	return nil
}

// SaveOK saves and logs any failure instead of returning it
func (s *Store) SaveOK() {
	if err := s.Save(); err != nil {
		s.logger.Error("failed to save playerlist", slog.Any("error", err))
		return
	}
	s.logger.Debug("playerlist saved", slog.String("path", s.Location()))
}
