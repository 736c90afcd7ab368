package canvas

import "sync"

// Store guards a Document for concurrent readers and the single writer the
// command engine serializes. Readers get deep copies; writers mutate in
// place under an exclusive lock.
type Store struct {
	mu  sync.RWMutex
	doc Document
}

// NewStore creates a Store holding doc.
func NewStore(doc Document) *Store {
	return &Store{doc: doc.Clone()}
}

// Snapshot returns a deep copy of the current document under a read lock.
func (s *Store) Snapshot() Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Clone()
}

// Update applies fn under the write lock. If fn returns an error the
// document is left exactly as it was; otherwise Revision is incremented.
func (s *Store) Update(fn func(*Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft := s.doc.Clone()
	if err := fn(&draft); err != nil {
		return err
	}
	draft.Revision = s.doc.Revision + 1
	s.doc = draft
	return nil
}
