// Package session keeps the per-client working state: the current chunk
// sequence and whether a summarization is in flight.
package session

import (
	"sync"
	"time"
)

// State is a snapshot of one client's working state.
type State struct {
	Chunks    []string
	Loading   bool
	UpdatedAt time.Time
}

// Store holds State per client ID in memory. It is safe for concurrent use.
// Writes are last-writer-wins: when two summarizations for the same client
// overlap, whichever finishes last replaces the chunks.
type Store struct {
	mu     sync.Mutex
	states map[string]*entry
	now    func() time.Time
}

type entry struct {
	chunks    []string
	inFlight  int
	updatedAt time.Time
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		states: make(map[string]*entry),
		now:    time.Now,
	}
}

// Get returns a copy of the client's state. Unknown clients have an empty state.
func (s *Store) Get(clientID string) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.states[clientID]
	if !ok {
		return State{Chunks: []string{}}
	}
	return State{
		Chunks:    cloneChunks(e.chunks),
		Loading:   e.inFlight > 0,
		UpdatedAt: e.updatedAt,
	}
}

// SetChunks replaces the client's chunk sequence.
func (s *Store) SetChunks(clientID string, chunks []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.entry(clientID)
	e.chunks = cloneChunks(chunks)
	e.updatedAt = s.now()
}

// Begin marks a summarization as started and returns the function that marks
// it finished. The loading flag stays set while any task is in flight.
func (s *Store) Begin(clientID string) (done func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.entry(clientID)
	e.inFlight++
	e.updatedAt = s.now()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			e := s.entry(clientID)
			if e.inFlight > 0 {
				e.inFlight--
			}
			e.updatedAt = s.now()
		})
	}
}

// Reset clears the client's chunk sequence.
func (s *Store) Reset(clientID string) {
	s.SetChunks(clientID, nil)
}

// Prune removes clients idle since before now-maxAge with nothing in flight
// and returns how many were removed.
func (s *Store) Prune(maxAge time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-maxAge)
	removed := 0
	for id, e := range s.states {
		if e.inFlight == 0 && e.updatedAt.Before(cutoff) {
			delete(s.states, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked clients.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.states)
}

// entry returns the client's entry, creating it. Callers hold s.mu.
func (s *Store) entry(clientID string) *entry {
	e, ok := s.states[clientID]
	if !ok {
		e = &entry{updatedAt: s.now()}
		s.states[clientID] = e
	}
	return e
}

func cloneChunks(chunks []string) []string {
	out := make([]string, len(chunks))
	copy(out, chunks)
	return out
}
