package intent_test

import (
	"testing"

	"github.com/tailored-agentic-units/dialogue/intent"
)

func TestParseSuggestion(t *testing.T) {
	tests := []struct {
		name          string
		response      string
		wantClean     string
		wantCandidate string
		wantOK        bool
	}{
		{
			name:          "delimiter with keyword",
			response:      "Sounds like a control issue.@@@partnership control",
			wantClean:     "Sounds like a control issue.",
			wantCandidate: "partnership control",
			wantOK:        true,
		},
		{
			name:          "whitespace around candidate",
			response:      "Probing deeper. @@@  trust deficit \n",
			wantClean:     "Probing deeper.",
			wantCandidate: "trust deficit",
			wantOK:        true,
		},
		{
			name:      "no delimiter",
			response:  "Tell me more about that.",
			wantClean: "Tell me more about that.",
			wantOK:    false,
		},
		{
			name:      "delimiter with empty tail",
			response:  "Hmm.@@@   ",
			wantClean: "Hmm.@@@   ",
			wantOK:    false,
		},
		{
			name:          "only first delimiter splits",
			response:      "a@@@b@@@c",
			wantClean:     "a",
			wantCandidate: "b@@@c",
			wantOK:        true,
		},
		{
			name:      "empty response",
			response:  "",
			wantClean: "",
			wantOK:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clean, candidate, ok := intent.ParseSuggestion(tt.response)

			if ok != tt.wantOK {
				t.Fatalf("got ok=%v, want %v", ok, tt.wantOK)
			}
			if clean != tt.wantClean {
				t.Errorf("got clean %q, want %q", clean, tt.wantClean)
			}
			if candidate != tt.wantCandidate {
				t.Errorf("got candidate %q, want %q", candidate, tt.wantCandidate)
			}
		})
	}
}

func TestIsAffirmation(t *testing.T) {
	affirmations := intent.DefaultAffirmations()

	tests := []struct {
		input string
		want  bool
	}{
		{"yes", true},
		{"  yes  ", true},
		{"YES", false},
		{"correct", true},
		{"confirmed", true},
		{"lock it", true},
		{"yes please", false},
		{"maybe yes", false},
		{"y", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := intent.IsAffirmation(tt.input, affirmations); got != tt.want {
				t.Errorf("IsAffirmation(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
