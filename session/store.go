package session

import (
	"sync"

	"github.com/tailored-agentic-units/dialogue/core/protocol"
)

// Store owns the mapping from session key to Session. Sessions are created
// lazily on first contact and live for the process lifetime; there is no
// TTL or explicit deletion. Safe for concurrent use: the map lock is held
// only for lookup and creation, never across a turn, so unrelated sessions
// proceed in parallel.
type Store struct {
	mu           sync.RWMutex
	sessions     map[string]*Session
	protocolTurn protocol.Message
	cfg          Config
}

// NewStore creates a Store whose sessions all start from protocolTurn.
func NewStore(cfg Config, protocolTurn protocol.Message) *Store {
	return &Store{
		sessions:     make(map[string]*Session),
		protocolTurn: protocolTurn,
		cfg:          cfg,
	}
}

// Window returns the configured recency window.
func (st *Store) Window() int {
	return st.cfg.Window
}

// GetOrCreate returns the session for key, creating it with a log of
// [protocolTurn] on first contact. An empty key maps to DefaultKey.
func (st *Store) GetOrCreate(key string) *Session {
	if key == "" {
		key = DefaultKey
	}

	st.mu.RLock()
	s, ok := st.sessions[key]
	st.mu.RUnlock()
	if ok {
		return s
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	// Recheck: another goroutine may have created it between locks.
	if s, ok := st.sessions[key]; ok {
		return s
	}

	s = New(key, st.protocolTurn)
	st.sessions[key] = s
	return s
}

// Reset truncates the keyed session back to its protocol turn and clears its
// intent state. Reports whether the session existed; resetting an absent key
// is a no-op, never an error.
func (st *Store) Reset(key string) bool {
	if key == "" {
		key = DefaultKey
	}

	st.mu.RLock()
	s, ok := st.sessions[key]
	st.mu.RUnlock()
	if !ok {
		return false
	}

	s.Lock()
	defer s.Unlock()
	s.Reset()
	return true
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
