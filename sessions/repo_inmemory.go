package sessions

import (
	"maps"
	"sync"
)

// InMemoryRepo keeps sessions for the lifetime of the process.
type InMemoryRepo struct {
	mu       sync.RWMutex
	sessions map[string]Record
}

var _ Repo = (*InMemoryRepo)(nil)

func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{
		sessions: make(map[string]Record),
	}
}

// Put creates or replaces a session
func (r *InMemoryRepo) Put(sessionID string, record Record) error {
	if sessionID == "" {
		return ErrMissingID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[sessionID] = copyRecord(record)
	return nil
}

// Get retrieves a session by id
func (r *InMemoryRepo) Get(sessionID string) (Record, error) {
	if sessionID == "" {
		return Record{}, ErrMissingID
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.sessions[sessionID]
	if !ok {
		return Record{}, ErrNotFound
	}
	return copyRecord(record), nil
}

// Delete removes a session. Deleting an unknown session is not an error.
func (r *InMemoryRepo) Delete(sessionID string) error {
	if sessionID == "" {
		return ErrMissingID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, sessionID)
	return nil
}

// Update applies mutate to the stored session under the write lock
func (r *InMemoryRepo) Update(sessionID string, mutate func(*Record)) error {
	if sessionID == "" {
		return ErrMissingID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.sessions[sessionID]
	if !ok {
		return ErrNotFound
	}
	mutate(&record)
	r.sessions[sessionID] = copyRecord(record)
	return nil
}

// copyRecord keeps callers from mutating the stored profile map
func copyRecord(record Record) Record {
	if record.Profile != nil {
		record.Profile = maps.Clone(record.Profile)
	}
	return record
}
