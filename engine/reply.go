package engine

// Kind tags the variant of a Reply. Callers branch on Kind instead of
// scraping delimiter strings out of the text.
type Kind string

const (
	// KindPlain is an ordinary model reply with no intent activity.
	KindPlain Kind = "plain"
	// KindSuggestion carries a freshly detected candidate intent.
	KindSuggestion Kind = "suggestion"
	// KindConfirmed reports that a pending suggestion was just locked.
	KindConfirmed Kind = "confirmed"
	// KindOverride reports an explicit intent override.
	KindOverride Kind = "override"
	// KindError carries a completion failure description.
	KindError Kind = "error"
	// KindOffline reports that no completion credential is configured.
	KindOffline Kind = "offline"
)

// Wire prefixes kept for callers that still speak the historical string
// protocol via Reply.String.
const (
	suggestTag  = " |SUGGEST| "
	confirmTag  = "CONFIRMED_SIGNAL|"
	overrideTag = "SYSTEM_UPDATE|"
	errorTag    = "SYSTEM_HALT: "
)

// OfflineNotice is the fixed reply returned when no completion credential is
// configured. No network call is attempted in that state.
const OfflineNotice = "offline mode: no completion credential configured"

// Reply is the tagged result of one Infer call.
type Reply struct {
	Kind Kind `json:"kind"`
	// Text is the prose payload: the model reply (delimiter stripped for
	// suggestions), the rendered output in dual mode, the offline notice,
	// or the failure description for KindError.
	Text string `json:"text,omitempty"`
	// Intent is the candidate or locked intent for the suggestion,
	// confirmed, and override kinds.
	Intent string `json:"intent,omitempty"`
}

// String renders the reply in the legacy wire format.
func (r Reply) String() string {
	switch r.Kind {
	case KindSuggestion:
		return r.Text + suggestTag + r.Intent
	case KindConfirmed:
		return confirmTag + r.Intent
	case KindOverride:
		return overrideTag + r.Intent
	case KindError:
		return errorTag + r.Text
	default:
		return r.Text
	}
}
