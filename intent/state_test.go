package intent_test

import (
	"errors"
	"testing"

	"github.com/tailored-agentic-units/dialogue/intent"
)

func TestNewState(t *testing.T) {
	s := intent.NewState()

	if s.Phase() != intent.PhaseExploring {
		t.Errorf("got phase %q, want %q", s.Phase(), intent.PhaseExploring)
	}
	if s.Suggested != intent.SentinelSuggested {
		t.Errorf("got suggested %q, want sentinel", s.Suggested)
	}
	if s.Locked != intent.SentinelLocked {
		t.Errorf("got locked %q, want sentinel", s.Locked)
	}
	if s.HasSuggestion() {
		t.Error("fresh state should have no pending suggestion")
	}
}

func TestState_Suggest(t *testing.T) {
	s := intent.NewState()
	s.Suggest("partnership control")

	if !s.HasSuggestion() {
		t.Fatal("suggestion should be pending")
	}
	if s.Suggested != "partnership control" {
		t.Errorf("got suggested %q, want %q", s.Suggested, "partnership control")
	}
	if s.Phase() != intent.PhaseExploring {
		t.Errorf("suggesting should not change phase, got %q", s.Phase())
	}
}

func TestState_Suggest_EmptyIgnored(t *testing.T) {
	s := intent.NewState()
	s.Suggest("")

	if s.HasSuggestion() {
		t.Error("empty candidate should not register as a suggestion")
	}
}

func TestState_Suggest_IgnoredWhenLocked(t *testing.T) {
	s := intent.NewState()
	s.Suggest("first")
	if err := s.Confirm(); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}

	s.Suggest("second")
	if s.Suggested != "first" {
		t.Errorf("locked state accepted a new suggestion: got %q", s.Suggested)
	}
}

func TestState_Confirm(t *testing.T) {
	s := intent.NewState()
	s.Suggest("equity split")

	if err := s.Confirm(); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if s.Phase() != intent.PhaseLocked {
		t.Errorf("got phase %q, want %q", s.Phase(), intent.PhaseLocked)
	}
	if s.Locked != "equity split" {
		t.Errorf("got locked %q, want %q", s.Locked, "equity split")
	}
}

func TestState_Confirm_NoSuggestion(t *testing.T) {
	s := intent.NewState()

	err := s.Confirm()
	if !errors.Is(err, intent.ErrNoSuggestion) {
		t.Fatalf("got %v, want ErrNoSuggestion", err)
	}
	if s.Confirmed {
		t.Error("failed confirm must not set the confirmed flag")
	}
	if s.Locked != intent.SentinelLocked {
		t.Errorf("failed confirm mutated locked intent: %q", s.Locked)
	}
}

func TestState_Confirm_AlreadyLocked(t *testing.T) {
	s := intent.NewState()
	s.Suggest("old focus")
	s.Force("new focus")

	// The stale suggestion must not be re-promotable once locked.
	err := s.Confirm()
	if !errors.Is(err, intent.ErrAlreadyLocked) {
		t.Fatalf("got %v, want ErrAlreadyLocked", err)
	}
	if s.Locked != "new focus" {
		t.Errorf("confirm reverted the locked intent: got %q, want %q", s.Locked, "new focus")
	}
}

func TestState_Force(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*intent.State)
	}{
		{"fresh state", func(*intent.State) {}},
		{"pending suggestion", func(s *intent.State) { s.Suggest("other") }},
		{"already locked", func(s *intent.State) {
			s.Suggest("other")
			_ = s.Confirm()
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := intent.NewState()
			tt.setup(&s)

			s.Force("equity split")

			if !s.Confirmed {
				t.Error("force must set confirmed")
			}
			if s.Locked != "equity split" {
				t.Errorf("got locked %q, want %q", s.Locked, "equity split")
			}
		})
	}
}

func TestState_Force_Idempotent(t *testing.T) {
	s := intent.NewState()
	s.Force("equity split")
	s.Force("equity split")

	if s.Locked != "equity split" || !s.Confirmed {
		t.Errorf("got locked=%q confirmed=%v after repeated force", s.Locked, s.Confirmed)
	}
}

func TestState_LockMonotonic(t *testing.T) {
	s := intent.NewState()
	s.Suggest("focus")
	if err := s.Confirm(); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}

	// No non-override mutation may clear the confirmed flag.
	s.Suggest("drift")
	if !s.Confirmed {
		t.Error("confirmed flag was cleared by a suggestion")
	}
}

func TestState_Reset(t *testing.T) {
	s := intent.NewState()
	s.Suggest("focus")
	_ = s.Confirm()

	s.Reset()

	if s.Confirmed {
		t.Error("reset should clear confirmed")
	}
	if s.Suggested != intent.SentinelSuggested || s.Locked != intent.SentinelLocked {
		t.Errorf("reset left intents %q / %q", s.Suggested, s.Locked)
	}
}
