package intent

import "strings"

// Delimiter separates the prose body of a model response from the short
// intent keyword the exploring prompt asks the model to append.
const Delimiter = "@@@"

// DefaultAffirmations is the closed set of inputs that confirm a pending
// suggestion. Matching is exact after trimming; partial or fuzzy matches
// deliberately do not confirm.
func DefaultAffirmations() []string {
	return []string{"yes", "correct", "confirmed", "lock it"}
}

// ParseSuggestion splits a model response on the first Delimiter occurrence.
// Returns the text before the delimiter with trailing space removed, the
// trimmed candidate after it, and whether the delimiter was present. A
// response without the delimiter is not an error; there is simply no new
// suggestion this turn.
func ParseSuggestion(response string) (clean, candidate string, ok bool) {
	before, after, found := strings.Cut(response, Delimiter)
	if !found {
		return response, "", false
	}

	candidate = strings.TrimSpace(after)
	if candidate == "" {
		return response, "", false
	}
	return strings.TrimSpace(before), candidate, true
}

// IsAffirmation reports whether the trimmed input exactly matches one of the
// affirmation phrases. The match is exact: no case folding, no partial or
// fuzzy matching.
func IsAffirmation(input string, affirmations []string) bool {
	trimmed := strings.TrimSpace(input)
	for _, phrase := range affirmations {
		if trimmed == phrase {
			return true
		}
	}
	return false
}
