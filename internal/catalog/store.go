package catalog

import (
	"sync"

	"github.com/jonathan/career-compass/internal/types"
)

// Store memoizes a loaded catalog for the process lifetime. The load runs at
// most once; every caller afterwards sees the same immutable rows and
// vocabulary, so repeated analyses never re-read the source.
type Store struct {
	load func() ([]types.JobProfile, error)

	once       sync.Once
	jobs       []types.JobProfile
	vocabulary []string
	err        error
}

// NewStore creates a Store backed by an arbitrary loader.
func NewStore(load func() ([]types.JobProfile, error)) *Store {
	return &Store{load: load}
}

// NewFileStore creates a Store backed by a CSV file on disk.
func NewFileStore(path string) *Store {
	return NewStore(func() ([]types.JobProfile, error) {
		return LoadFile(path)
	})
}

// NewDefaultStore creates a Store backed by the embedded catalog.
func NewDefaultStore() *Store {
	return NewStore(Default)
}

func (s *Store) init() {
	s.once.Do(func() {
		s.jobs, s.err = s.load()
		if s.err == nil {
			s.vocabulary = Vocabulary(s.jobs)
		}
	})
}

// Jobs returns the loaded catalog rows. Callers must treat the slice as
// read-only.
func (s *Store) Jobs() ([]types.JobProfile, error) {
	s.init()
	return s.jobs, s.err
}

// Vocabulary returns the sorted global skill vocabulary for the catalog.
func (s *Store) Vocabulary() ([]string, error) {
	s.init()
	return s.vocabulary, s.err
}
