package playerlist

import (
	"io"
	"iter"
	"log/slog"
	"maps"
	"slices"

	"github.com/mcoot/playerlist/internal/dependencies/clock"
	"github.com/mcoot/playerlist/internal/model"
	"github.com/mcoot/playerlist/internal/storage"
	"github.com/mcoot/playerlist/internal/storage/file"
)

// Store holds every player record and the location it is persisted to.
// It is owned by a single goroutine; callers serialize access.
type Store struct {
	// path is resolved at load/create time and never persisted
	path    string
	records map[model.SteamID]*model.Record

	backend storage.Backend
	clock   clock.Clock
	logger  *slog.Logger
}

// Option configures a Store
type Option func(*Store)

// WithBackend sets where the store reads and writes. Defaults to the local
// filesystem.
func WithBackend(b storage.Backend) Option {
	return func(s *Store) { s.backend = b }
}

// WithClock sets the clock used to timestamp new and edited records
func WithClock(c clock.Clock) Option {
	return func(s *Store) { s.clock = c }
}

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// New creates an empty store bound to path
func New(path string, opts ...Option) *Store {
	s := &Store{
		path:    path,
		records: make(map[model.SteamID]*model.Record),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.backend == nil {
		s.backend = file.New()
	}
	if s.clock == nil {
		s.clock = clock.New()
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

// Path returns the location the store will be saved to
func (s *Store) Path() string {
	return s.path
}

// SetPath rebinds the location the next Save writes to. Records are untouched.
func (s *Store) SetPath(path string) {
	s.path = path
}

// Location describes the bound path for humans
func (s *Store) Location() string {
	return s.backend.Describe(s.path)
}

// Map access

// Get returns the record for id
func (s *Store) Get(id model.SteamID) (*model.Record, bool) {
	r, ok := s.records[id]
	return r, ok
}

// Set inserts or replaces the record for id
func (s *Store) Set(id model.SteamID, record *model.Record) {
	s.records[id] = record
}

// Remove deletes the record for id, if any
func (s *Store) Remove(id model.SteamID) {
	delete(s.records, id)
}

// Contains reports whether a record exists for id
func (s *Store) Contains(id model.SteamID) bool {
	_, ok := s.records[id]
	return ok
}

// Len returns the number of records
func (s *Store) Len() int {
	return len(s.records)
}

// All iterates over every record in no particular order
func (s *Store) All() iter.Seq2[model.SteamID, *model.Record] {
	return maps.All(s.records)
}

// IDs returns every id in ascending order
func (s *Store) IDs() []model.SteamID {
	return slices.Sorted(maps.Keys(s.records))
}

// GetOrCreate returns the record for id, inserting a default one if needed
func (s *Store) GetOrCreate(id model.SteamID) *model.Record {
	if r, ok := s.records[id]; ok {
		return r
	}
	r := model.NewRecord(s.clock.Now())
	s.records[id] = r
	return r
}

// Mutations

// UpdateName records a newly observed name for an existing record. Unknown
// ids are ignored. This is an automatic update and does not touch Modified.
func (s *Store) UpdateName(id model.SteamID, name string) {
	if r, ok := s.records[id]; ok {
		r.AddName(name)
	}
}

// SetVerdict is a manual edit: it creates the record if needed and advances
// Modified
func (s *Store) SetVerdict(id model.SteamID, verdict model.Verdict) *model.Record {
	r := s.GetOrCreate(id)
	r.Verdict = verdict
	r.Modified = s.clock.Now().UTC()
	return r
}

// SetCustomData is a manual edit: it creates the record if needed and
// advances Modified. Nil data is stored as an empty object.
func (s *Store) SetCustomData(id model.SteamID, data any) *model.Record {
	r := s.GetOrCreate(id)
	r.CustomData = data
	r.Normalize()
	r.Modified = s.clock.Now().UTC()
	return r
}

// PruneEmpty removes records that hold no information and returns how
// many were removed. The store never calls this on its own.
func (s *Store) PruneEmpty() int {
	removed := 0
	for id, r := range s.records {
		if r.IsEmpty() {
			delete(s.records, id)
			removed++
		}
	}
	return removed
}
