package sessions

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// ExpiringRepo is a bounded session store whose entries expire after a fixed TTL.
// Abandoned login attempts are evicted instead of living for the whole process.
type ExpiringRepo struct {
	mu    sync.Mutex // serialises Update's read-modify-write
	cache *expirable.LRU[string, Record]
}

var _ Repo = (*ExpiringRepo)(nil)

func NewExpiringRepo(maxEntries int, ttl time.Duration) *ExpiringRepo {
	return &ExpiringRepo{
		cache: expirable.NewLRU[string, Record](maxEntries, nil, ttl),
	}
}

func (r *ExpiringRepo) Put(sessionID string, record Record) error {
	if sessionID == "" {
		return ErrMissingID
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cache.Add(sessionID, copyRecord(record))
	return nil
}

func (r *ExpiringRepo) Get(sessionID string) (Record, error) {
	if sessionID == "" {
		return Record{}, ErrMissingID
	}
	record, ok := r.cache.Get(sessionID)
	if !ok {
		return Record{}, ErrNotFound
	}
	return copyRecord(record), nil
}

func (r *ExpiringRepo) Delete(sessionID string) error {
	if sessionID == "" {
		return ErrMissingID
	}
	r.cache.Remove(sessionID)
	return nil
}

func (r *ExpiringRepo) Update(sessionID string, mutate func(*Record)) error {
	if sessionID == "" {
		return ErrMissingID
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.cache.Get(sessionID)
	if !ok {
		return ErrNotFound
	}
	// Get reads stored records without the lock, so mutate works on a copy.
	record = copyRecord(record)
	mutate(&record)
	r.cache.Add(sessionID, record)
	return nil
}

// Len reports the number of live sessions.
func (r *ExpiringRepo) Len() int {
	return r.cache.Len()
}
