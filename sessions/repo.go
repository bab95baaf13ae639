package sessions

import "errors"

var (
	ErrNotFound  = errors.New("session not found")
	ErrMissingID = errors.New("session id is required")
)

// Repo stores session records keyed by session id.
// Get and Update return ErrNotFound for unknown ids.
type Repo interface {
	Put(sessionID string, record Record) error
	Get(sessionID string) (Record, error)
	Delete(sessionID string) error
	Update(sessionID string, mutate func(*Record)) error
}
