// Package intent implements the focal-intent state machine for a dialogue
// session. A session explores freely until a detected focus is confirmed by
// the user, after which the intent is locked and steering becomes sticky.
//
// All model-output parsing (the suggestion delimiter) and user confirmation
// matching live here so the string protocol can change without touching
// callers.
package intent

// Sentinel values for intent fields that have not been populated yet.
const (
	SentinelSuggested = "not yet detected"
	SentinelLocked    = "not yet locked"
)

// Phase identifies the tracking mode of a session.
type Phase string

const (
	// PhaseExploring probes each turn for an underlying motive.
	PhaseExploring Phase = "exploring"
	// PhaseLocked steers every reply toward the confirmed intent.
	PhaseLocked Phase = "locked"
)

// State holds the intent-tracking fields of one session. The zero value is
// not ready for use; call NewState. State is not self-synchronizing; the
// owning session's lock guards it.
type State struct {
	Suggested string
	Locked    string
	Confirmed bool
}

// NewState returns a State in the exploring phase with sentinel intents.
func NewState() State {
	return State{
		Suggested: SentinelSuggested,
		Locked:    SentinelLocked,
	}
}

// Phase derives the current phase from the confirmation flag.
func (s *State) Phase() Phase {
	if s.Confirmed {
		return PhaseLocked
	}
	return PhaseExploring
}

// HasSuggestion reports whether a candidate intent is pending confirmation.
func (s *State) HasSuggestion() bool {
	return s.Suggested != SentinelSuggested && s.Suggested != ""
}

// Suggest records a new candidate intent. Suggestions only move while
// exploring; once locked the tracker ignores further candidates.
func (s *State) Suggest(candidate string) {
	if s.Confirmed || candidate == "" {
		return
	}
	s.Suggested = candidate
}

// Confirm promotes the pending suggestion to the locked intent. The
// transition only exists while exploring: once locked, Confirm returns
// ErrAlreadyLocked and only Force may change the intent. Returns
// ErrNoSuggestion when nothing is pending. On either error the caller
// treats the input as a normal turn.
func (s *State) Confirm() error {
	if s.Confirmed {
		return ErrAlreadyLocked
	}
	if !s.HasSuggestion() {
		return ErrNoSuggestion
	}
	s.Locked = s.Suggested
	s.Confirmed = true
	return nil
}

// Force sets the locked intent directly, regardless of phase. Idempotent and
// always succeeds; this is the explicit override path.
func (s *State) Force(v string) {
	s.Locked = v
	s.Confirmed = true
}

// Reset returns the state to the exploring phase with sentinel intents.
func (s *State) Reset() {
	*s = NewState()
}
