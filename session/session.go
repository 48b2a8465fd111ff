// Package session manages per-key conversation state for the dialogue
// engine: the ordered message log, the bounded recency window, and the
// intent-tracking fields.
package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/tailored-agentic-units/dialogue/core/protocol"
	"github.com/tailored-agentic-units/dialogue/intent"
)

// Session is the unit of conversation state for one opaque key. The first
// log entry is always the protocol turn (the immutable system message) and
// survives both window trimming and Reset.
//
// Session embeds a Mutex that the engine holds across an entire turn,
// including the completion call, so that window trimming and intent
// transitions are atomic with the append that triggered them. The state
// methods below assume the caller holds that lock; they do not lock
// internally.
type Session struct {
	sync.Mutex

	// Intent holds the focal-intent state machine fields. Guarded by the
	// embedded mutex, like the log.
	Intent intent.State

	key      string
	id       string
	messages []protocol.Message
}

// New creates a Session for key whose log contains only the protocol turn.
// The session is assigned a unique UUIDv7 identifier.
func New(key string, protocolTurn protocol.Message) *Session {
	return &Session{
		key:      key,
		id:       uuid.Must(uuid.NewV7()).String(),
		Intent:   intent.NewState(),
		messages: []protocol.Message{protocolTurn},
	}
}

// Key returns the caller-supplied session key.
func (s *Session) Key() string {
	return s.key
}

// ID returns the unique internal session identifier.
func (s *Session) ID() string {
	return s.id
}

// Append adds a message to the conversation log.
func (s *Session) Append(msg protocol.Message) {
	s.messages = append(s.messages, msg)
}

// Messages returns a defensive copy of the conversation log.
func (s *Session) Messages() []protocol.Message {
	copied := make([]protocol.Message, len(s.messages))
	copy(copied, s.messages)
	return copied
}

// Len returns the number of messages in the log, protocol turn included.
func (s *Session) Len() int {
	return len(s.messages)
}

// ProtocolTurn returns the immutable first log entry.
func (s *Session) ProtocolTurn() protocol.Message {
	return s.messages[0]
}

// Reset truncates the log back to the protocol turn and clears the derived
// intent state. Resetting a fresh session is a no-op.
func (s *Session) Reset() {
	s.messages = s.messages[:1:1]
	s.Intent.Reset()
}
