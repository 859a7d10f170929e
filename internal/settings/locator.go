package settings

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/mcoot/playerlist/internal/model"
)

// DefaultAppName is the directory created under the user config directory
const DefaultAppName = "playerlist"

// Locator finds a directory suitable for storing persistent files
type Locator interface {
	// ConfigDirectory returns the directory, creating it if necessary
	ConfigDirectory() (string, error)
}

// OSLocator resolves <user config dir>/<AppName>
type OSLocator struct {
	AppName string

	// userConfigDir is swapped out in tests
	userConfigDir func() (string, error)
}

// NewOSLocator creates a locator for the given application name
func NewOSLocator(appName string) *OSLocator {
	if appName == "" {
		appName = DefaultAppName
	}
	return &OSLocator{
		AppName:       appName,
		userConfigDir: os.UserConfigDir,
	}
}

var _ Locator = (*OSLocator)(nil)

func (l *OSLocator) ConfigDirectory() (string, error) {
	userConfigDir := l.userConfigDir
	if userConfigDir == nil {
		userConfigDir = os.UserConfigDir
	}

	base, err := userConfigDir()
	if err != nil {
		return "", model.NewFileError(model.ErrDirectoryUnavailable, l.AppName, err)
	}
	if base == "" {
		return "", model.NewFileError(model.ErrDirectoryUnavailable, l.AppName, errors.New("no config directory"))
	}

	return ensureDir(filepath.Join(base, l.AppName))
}

// StaticLocator always returns Dir
type StaticLocator struct {
	Dir string
}

var _ Locator = StaticLocator{}

func (l StaticLocator) ConfigDirectory() (string, error) {
	if l.Dir == "" {
		return "", model.NewFileError(model.ErrDirectoryUnavailable, l.Dir, errors.New("no directory configured"))
	}
	return ensureDir(l.Dir)
}

func ensureDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", model.NewFileError(model.ErrDirectoryUnavailable, dir, err)
	}
	return dir, nil
}
