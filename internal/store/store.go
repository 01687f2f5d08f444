package store

import (
	"log"
	"sync"

	"github.com/solairajan18/solai-gateway/internal/model/chat"
)

// Backend persists session histories. Implementations must tolerate ids
// they have never seen: Load for an unknown id returns an empty history.
type Backend interface {
	Load(id string) ([]chat.Turn, error)
	Save(id string, history []chat.Turn) error
}

// Store keeps session histories in memory, lazily loading them from the
// backend and writing them back on Persist. A loaded history is the sole
// source of truth until process exit; nothing reconciles it with disk.
//
// The mutex makes individual operations atomic, nothing more: if two
// connections drive the same session id concurrently, their turns interleave
// in arrival order and the last Persist wins. Accepted limitation.
type Store struct {
	mu       sync.RWMutex
	backend  Backend
	sessions map[string][]chat.Turn
}

// New creates a Store on top of the supplied backend.
func New(backend Backend) *Store {
	return &Store{
		backend:  backend,
		sessions: make(map[string][]chat.Turn),
	}
}

// GetOrLoad returns a copy of the session's history, materializing it from
// the backend on first access. A missing or unreadable persisted copy yields
// an empty history, not an error.
func (s *Store) GetOrLoad(id string) []chat.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, ok := s.sessions[id]
	if !ok {
		loaded, err := s.backend.Load(id)
		if err != nil {
			log.Printf("[store] failed to load session %s: %v", id, err)
			loaded = nil
		}
		s.sessions[id] = loaded
		history = loaded
	}

	return copyTurns(history)
}

// Append adds a turn to the session's in-memory history.
func (s *Store) Append(id string, turn chat.Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = append(s.sessions[id], turn)
}

// Persist overwrites the session's persisted file with the full in-memory
// history. Persistence is best-effort: failures are logged and swallowed so
// an unwritable disk never blocks a response.
func (s *Store) Persist(id string) {
	s.mu.RLock()
	history := copyTurns(s.sessions[id])
	s.mu.RUnlock()

	if err := s.backend.Save(id, history); err != nil {
		log.Printf("[store] failed to persist session %s: %v", id, err)
		return
	}
	log.Printf("[store] persisted session %s (%d turns)", id, len(history))
}

// History returns a copy of the session's history without materializing the
// session: non-resident ids are read straight from the backend, so history
// queries never create in-memory state.
func (s *Store) History(id string) []chat.Turn {
	s.mu.RLock()
	history, ok := s.sessions[id]
	if ok {
		defer s.mu.RUnlock()
		return copyTurns(history)
	}
	s.mu.RUnlock()

	loaded, err := s.backend.Load(id)
	if err != nil {
		log.Printf("[store] failed to load history for session %s: %v", id, err)
		return nil
	}
	return loaded
}

func copyTurns(history []chat.Turn) []chat.Turn {
	copied := make([]chat.Turn, len(history))
	copy(copied, history)
	return copied
}
