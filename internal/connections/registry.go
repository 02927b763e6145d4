package connections

import (
	"sync"

	"sshdeck/internal/logger"
	"sshdeck/internal/ssh"
)

// Session is the registry's view of one live, authenticated connection.
// *ssh.Service is the production implementation.
type Session interface {
	Execute(command string) (*ssh.CommandResult, error)
	CurrentDirectory() string
	Close() error
}

// Registry owns every live session; external components hold only IDs and
// reach sessions through it. The map lock covers map access only; command
// round trips run outside it, serialized per connection by the session's own
// locking, so commands on distinct connections proceed concurrently.
type Registry struct {
	mu       sync.RWMutex
	sessions map[ID]Session
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[ID]Session),
	}
}

// Insert registers a session under the given ID. An existing entry with the
// same ID is closed and replaced; the replacement is logged because it
// usually means two connects raced for the same (user, host, port).
func (r *Registry) Insert(id ID, session Session) {
	r.mu.Lock()
	displaced, exists := r.sessions[id]
	r.sessions[id] = session
	r.mu.Unlock()

	if exists {
		logger.Warn("Replacing existing connection %s; closing the displaced session", id)

		if err := displaced.Close(); err != nil {
			logger.Warn("Failed to close displaced session %s: %v", id, err)
		}
	}
}

func (r *Registry) lookup(id ID) (Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, exists := r.sessions[id]
	return session, exists
}

// WithSession resolves the ID and invokes fn against the session. The map
// lock is released before fn runs; the session's own locking serializes
// commands against the same connection.
func (r *Registry) WithSession(id ID, fn func(Session) error) error {
	session, exists := r.lookup(id)

	if !exists {
		return ErrConnectionNotFound
	}

	return fn(session)
}

// CurrentDirectory returns the tracked working directory for the connection.
func (r *Registry) CurrentDirectory(id ID) (string, error) {
	session, exists := r.lookup(id)

	if !exists {
		return "", ErrConnectionNotFound
	}

	return session.CurrentDirectory(), nil
}

// Remove drops the entry and closes its transport. Reports whether an entry
// existed; a second Remove for the same ID returns false.
func (r *Registry) Remove(id ID) bool {
	r.mu.Lock()
	session, exists := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if !exists {
		return false
	}

	if err := session.Close(); err != nil {
		logger.Warn("Failed to close session %s: %v", id, err)
	}

	return true
}

// IDs returns a snapshot of the registered connection IDs; order is not
// meaningful.
func (r *Registry) IDs() []ID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]ID, 0, len(r.sessions))

	for id := range r.sessions {
		ids = append(ids, id)
	}

	return ids
}

// Len reports the number of live connections.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// CloseAll tears down every session, for process shutdown.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[ID]Session)
	r.mu.Unlock()

	for id, session := range sessions {
		if err := session.Close(); err != nil {
			logger.Warn("Failed to close session %s: %v", id, err)
		}
	}
}
