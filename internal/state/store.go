package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/davess/kview/internal/kube"
)

// Snapshot is the latest resource data available to the UI.
type Snapshot struct {
	Workloads           []kube.Workload
	Events              []kube.Event
	Namespaces          []string
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
}

// IsOffline returns true when the backend has been unreachable for
// multiple polls in a row.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot between the
// poller and the UI.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored snapshot. When err is non-nil the previous
// data is kept but the error is recorded for visibility.
func (s *Store) Update(workloads []kube.Workload, events []kube.Event, namespaces []string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		s.snapshot.ConsecutiveFailures++
		return
	}

	s.snapshot.Workloads = cloneSlice(workloads)
	s.snapshot.Events = cloneSlice(events)
	s.snapshot.Namespaces = cloneSlice(namespaces)
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Workloads = cloneSlice(s.snapshot.Workloads)
	snap.Events = cloneSlice(s.snapshot.Events)
	snap.Namespaces = cloneSlice(s.snapshot.Namespaces)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneSlice[T any](items []T) []T {
	if len(items) == 0 {
		return nil
	}
	dup := make([]T, len(items))
	copy(dup, items)
	return dup
}
