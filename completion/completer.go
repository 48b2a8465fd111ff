// Package completion abstracts the external text-completion provider
// consumed by the dialogue engine. The engine depends only on the Completer
// interface; the OpenAI-backed implementation lives here alongside it.
package completion

import (
	"context"

	"github.com/tailored-agentic-units/dialogue/core/protocol"
)

// Params are the sampling parameters for a single completion call.
type Params struct {
	Temperature      float64 `json:"temperature,omitempty"`
	PresencePenalty  float64 `json:"presence_penalty,omitempty"`
	FrequencyPenalty float64 `json:"frequency_penalty,omitempty"`
}

// Completer produces a single text completion for an ordered message list.
// Implementations must be safe for concurrent use: the engine issues calls
// from independent sessions in parallel.
type Completer interface {
	// Complete returns the model's text for the given conversation. Failures
	// surface as a *ServiceError; no retries are performed at this layer.
	Complete(ctx context.Context, messages []protocol.Message, params Params) (string, error)
	// Configured reports whether a credential is present. When false, the
	// engine answers with a fixed offline notice and never calls Complete.
	Configured() bool
}
