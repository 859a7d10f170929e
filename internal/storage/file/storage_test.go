package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/playerlist/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	dir     string
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.dir = s.T().TempDir()
}

func (s *StorageSuite) TestWriteAndRead() {
	path := filepath.Join(s.dir, "playerlist.json")

	err := s.storage.Write(path, []byte(`{"records":{}}`))
	s.Require().NoError(err)

	data, err := s.storage.Read(path)
	s.Require().NoError(err)
	s.Equal(`{"records":{}}`, string(data))
}

func (s *StorageSuite) TestWriteReplacesContents() {
	path := filepath.Join(s.dir, "playerlist.json")
	s.Require().NoError(s.storage.Write(path, []byte("a much longer first version")))
	s.Require().NoError(s.storage.Write(path, []byte("short")))

	data, err := os.ReadFile(path)
	s.Require().NoError(err)
	s.Equal("short", string(data))
}

func (s *StorageSuite) TestWriteCreatesParentDirectory() {
	path := filepath.Join(s.dir, "nested", "dir", "playerlist.json")

	err := s.storage.Write(path, []byte("{}"))
	s.Require().NoError(err)
	s.FileExists(path)
}

func (s *StorageSuite) TestReadNotFound() {
	_, err := s.storage.Read(filepath.Join(s.dir, "missing.json"))
	s.ErrorIs(err, model.ErrNotFound)
}

func (s *StorageSuite) TestReadDirectoryIsNotNotFound() {
	_, err := s.storage.Read(s.dir)
	s.Error(err)
	s.NotErrorIs(err, model.ErrNotFound)
}

func (s *StorageSuite) TestDescribeIsAbsolute() {
	s.True(filepath.IsAbs(s.storage.Describe("playerlist.json")))
}
