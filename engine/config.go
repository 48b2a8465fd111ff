package engine

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tailored-agentic-units/dialogue/completion"
	"github.com/tailored-agentic-units/dialogue/intent"
	"github.com/tailored-agentic-units/dialogue/session"
)

// Pipeline selection values for Config.Pipeline.
const (
	PipelineSingle = "single"
	PipelineDual   = "dual"
)

const (
	defaultTimeoutSeconds = 30
	defaultVoidSentinel   = "LOGIC_VOID"
	defaultObserver       = "slog"
)

const defaultProtocolPrompt = "You are a focused conversation partner. You listen closely, " +
	"answer plainly, and never pad your replies."

const defaultExplorePrompt = "Probe for the underlying motive behind what the user says. " +
	"End your reply with " + intent.Delimiter + " followed by a short keyword naming the motive you detect."

const defaultLockedPrompt = "The user has confirmed their focal concern: {intent}. " +
	"Weight roughly 90% of every reply toward that concern, regardless of topic drift."

const defaultComputationPrompt = "Work strictly from the conversation record. Produce a terse, " +
	"quantitative assessment with explicit figures or probabilities. If the record does not support " +
	"a conclusion, reply with LOGIC_VOID followed by the questions whose answers you need."

const defaultRenderPrompt = "Restate the following assessment in a cool, surgical voice. " +
	"Do not alter, add, or remove any figure or logical claim. Style only."

// Prompts holds the system prompt variants used across a turn.
type Prompts struct {
	// Protocol is the immutable first message of every session.
	Protocol string `json:"protocol,omitempty"`
	// Explore directs the model to probe for a motive and append the
	// delimiter-tagged keyword.
	Explore string `json:"explore,omitempty"`
	// Locked steers replies toward the confirmed intent. The literal
	// "{intent}" is replaced with the locked intent at call time.
	Locked string `json:"locked,omitempty"`
	// Computation is the stage-one prompt of the dual pipeline.
	Computation string `json:"computation,omitempty"`
	// Render is the stage-two restyling prompt of the dual pipeline.
	Render string `json:"render,omitempty"`
}

// DefaultPrompts returns the built-in prompt set.
func DefaultPrompts() Prompts {
	return Prompts{
		Protocol:    defaultProtocolPrompt,
		Explore:     defaultExplorePrompt,
		Locked:      defaultLockedPrompt,
		Computation: defaultComputationPrompt,
		Render:      defaultRenderPrompt,
	}
}

// Merge applies non-zero values from source into p.
func (p *Prompts) Merge(source *Prompts) {
	if source.Protocol != "" {
		p.Protocol = source.Protocol
	}
	if source.Explore != "" {
		p.Explore = source.Explore
	}
	if source.Locked != "" {
		p.Locked = source.Locked
	}
	if source.Computation != "" {
		p.Computation = source.Computation
	}
	if source.Render != "" {
		p.Render = source.Render
	}
}

// Config holds initialization parameters for the engine and its subsystems.
// Each subsystem section delegates to that subsystem's config constructor.
type Config struct {
	Completion completion.Config `json:"completion"`
	Session    session.Config    `json:"session"`
	Prompts    Prompts           `json:"prompts"`

	// Pipeline selects the per-turn inference shape: "single" (one chat
	// call) or "dual" (computation stage plus rendering stage).
	Pipeline string `json:"pipeline,omitempty"`

	// TimeoutSeconds bounds each completion call. A timeout surfaces with
	// the same semantics as any other completion failure.
	TimeoutSeconds int `json:"timeout_seconds,omitempty"`

	// VoidSentinel short-circuits the dual pipeline: when the computation
	// output contains it, the rendering stage is skipped.
	VoidSentinel string `json:"void_sentinel,omitempty"`

	// Observer names a registered observability observer.
	Observer string `json:"observer,omitempty"`

	// Affirmations overrides the closed confirmation phrase set.
	Affirmations []string `json:"affirmations,omitempty"`

	// Sampling parameters per call site.
	Chat        completion.Params `json:"chat,omitempty"`
	Computation completion.Params `json:"computation,omitempty"`
	Render      completion.Params `json:"render,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults for all subsystems.
func DefaultConfig() Config {
	return Config{
		Completion:     completion.DefaultConfig(),
		Session:        session.DefaultConfig(),
		Prompts:        DefaultPrompts(),
		Pipeline:       PipelineSingle,
		TimeoutSeconds: defaultTimeoutSeconds,
		VoidSentinel:   defaultVoidSentinel,
		Observer:       defaultObserver,
		Affirmations:   intent.DefaultAffirmations(),
		Chat:           completion.Params{Temperature: 0.7},
		Computation:    completion.Params{Temperature: 0.1},
		Render:         completion.Params{Temperature: 0.6},
	}
}

// Merge applies non-zero values from source into c, delegating to each
// subsystem's Merge method.
func (c *Config) Merge(source *Config) {
	c.Completion.Merge(&source.Completion)
	c.Session.Merge(&source.Session)
	c.Prompts.Merge(&source.Prompts)

	if source.Pipeline != "" {
		c.Pipeline = source.Pipeline
	}
	if source.TimeoutSeconds > 0 {
		c.TimeoutSeconds = source.TimeoutSeconds
	}
	if source.VoidSentinel != "" {
		c.VoidSentinel = source.VoidSentinel
	}
	if source.Observer != "" {
		c.Observer = source.Observer
	}
	if len(source.Affirmations) > 0 {
		c.Affirmations = source.Affirmations
	}
	if source.Chat != (completion.Params{}) {
		c.Chat = source.Chat
	}
	if source.Computation != (completion.Params{}) {
		c.Computation = source.Computation
	}
	if source.Render != (completion.Params{}) {
		c.Render = source.Render
	}
}

// LoadConfig reads a JSON config file, merges it with defaults, and returns
// the resulting Config.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Merge(&loaded)
	return &cfg, nil
}
