package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/showroom/internal/catalog"
)

// Snapshot represents the latest catalog available to the UI.
type Snapshot struct {
	Catalog             *catalog.Catalog
	HasCatalog          bool
	Version             uint64 // Incremented on every successful load
	LastLoaded          time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive failed reloads
}

// IsStale returns true when the displayed catalog is older than the file on
// disk because the latest reload failed.
func (s Snapshot) IsStale() bool {
	return s.HasCatalog && s.ConsecutiveFailures > 0
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored catalog. When err is non-nil the previous catalog
// is kept but the error is recorded for visibility.
func (s *Store) Update(cat *catalog.Catalog, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}

	s.snapshot.Catalog = cat.Clone()
	s.snapshot.HasCatalog = cat != nil
	s.snapshot.Version++
	s.snapshot.LastError = nil
	s.snapshot.LastLoaded = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

// Version returns the current catalog version without copying the snapshot.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Version
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Catalog = s.snapshot.Catalog.Clone()
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
