package session

import "github.com/tailored-agentic-units/dialogue/core/protocol"

// Trim enforces the bounded recency window: when the log holds more than
// window non-protocol turns, it is rewritten as the protocol turn followed by
// the most recent window turns. Call after every append so the bound is an
// invariant of the log, not an eventual property. A window of zero or less
// leaves the log untouched.
func (s *Session) Trim(window int) {
	if window <= 0 || len(s.messages) <= window+1 {
		return
	}

	trimmed := make([]protocol.Message, 0, window+1)
	trimmed = append(trimmed, s.messages[0])
	trimmed = append(trimmed, s.messages[len(s.messages)-window:]...)
	s.messages = trimmed
}
