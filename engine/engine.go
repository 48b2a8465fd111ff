// Package engine implements the per-session turn pipeline that composes the
// session store, intent tracker, and completion provider: append the user
// turn, select the phase prompt, call the provider, parse the suggestion,
// update memory and intent state, return a tagged reply.
//
// The engine initializes from configuration via New; functional options
// allow test overrides of any subsystem.
//
//	e, err := engine.New(&cfg)
//	reply := e.Infer(ctx, "u1", "I keep arguing with my partner", "")
package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tailored-agentic-units/dialogue/completion"
	"github.com/tailored-agentic-units/dialogue/core/protocol"
	"github.com/tailored-agentic-units/dialogue/intent"
	"github.com/tailored-agentic-units/dialogue/observability"
	"github.com/tailored-agentic-units/dialogue/session"
)

// Option configures an Engine after config-driven initialization. Options
// run last in New, so they replace the config-created subsystems.
type Option func(*Engine)

// WithCompleter overrides the config-created completion provider.
func WithCompleter(c completion.Completer) Option {
	return func(e *Engine) { e.completer = c }
}

// WithStore overrides the config-created session store.
func WithStore(st *session.Store) Option {
	return func(e *Engine) { e.store = st }
}

// WithObserver overrides the config-resolved observer.
func WithObserver(o observability.Observer) Option {
	return func(e *Engine) { e.observer = o }
}

// Engine is the conversation orchestration core. Safe for concurrent use;
// turns on distinct session keys proceed in parallel, turns on the same key
// serialize on the session lock.
type Engine struct {
	cfg       Config
	store     *session.Store
	completer completion.Completer
	observer  observability.Observer
}

// New creates an Engine from configuration. Subsystems are initialized from
// their config sections; functional options applied afterwards can override
// any of them for testing.
func New(cfg *Config, opts ...Option) (*Engine, error) {
	switch cfg.Pipeline {
	case PipelineSingle, PipelineDual:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPipeline, cfg.Pipeline)
	}

	completer, err := completion.New(&cfg.Completion)
	if err != nil {
		return nil, fmt.Errorf("failed to create completion provider: %w", err)
	}

	observer, err := observability.GetObserver(cfg.Observer)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve observer: %w", err)
	}

	protocolTurn := protocol.NewMessage(protocol.RoleSystem, cfg.Prompts.Protocol)

	e := &Engine{
		cfg:       *cfg,
		store:     session.NewStore(cfg.Session, protocolTurn),
		completer: completer,
		observer:  observer,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// Store returns the engine's session store.
func (e *Engine) Store() *session.Store {
	return e.store
}

// Infer processes one turn for the keyed session. Every outcome, including
// completion failures, is expressed as a tagged Reply; nothing escapes as a
// Go error. An empty key addresses the default session. A non-empty
// forceIntent locks that intent immediately without consulting the provider.
func (e *Engine) Infer(ctx context.Context, key, text, forceIntent string) Reply {
	e.emit(ctx, EventTurnStart, observability.LevelInfo, map[string]any{
		"session":  key,
		"text_len": len(text),
		"forced":   forceIntent != "",
	})

	if !e.completer.Configured() {
		e.emit(ctx, EventOffline, observability.LevelWarning, map[string]any{"session": key})
		return Reply{Kind: KindOffline, Text: OfflineNotice}
	}

	s := e.store.GetOrCreate(key)
	s.Lock()
	defer s.Unlock()

	if forceIntent != "" {
		s.Intent.Force(forceIntent)
		e.emit(ctx, EventOverride, observability.LevelInfo, map[string]any{
			"session": s.Key(),
			"intent":  forceIntent,
		})
		return Reply{Kind: KindOverride, Intent: forceIntent}
	}

	if intent.IsAffirmation(text, e.cfg.Affirmations) {
		if err := s.Intent.Confirm(); err == nil {
			e.emit(ctx, EventConfirmed, observability.LevelInfo, map[string]any{
				"session": s.Key(),
				"intent":  s.Intent.Locked,
			})
			return Reply{Kind: KindConfirmed, Intent: s.Intent.Locked}
		}
		// Locked phase or no suggestion pending: the affirmation is
		// just another turn.
	}

	s.Append(protocol.NewMessage(protocol.RoleUser, text))
	s.Trim(e.store.Window())

	var reply Reply
	if e.cfg.Pipeline == PipelineDual {
		reply = e.dualTurn(ctx, s)
	} else {
		reply = e.singleTurn(ctx, s)
	}

	e.emit(ctx, EventTurnComplete, observability.LevelVerbose, map[string]any{
		"session":    s.Key(),
		"session_id": s.ID(),
		"kind":       string(reply.Kind),
		"phase":      string(s.Intent.Phase()),
	})
	return reply
}

// Reset truncates the keyed session back to its protocol turn and clears its
// intent state. Idempotent; an absent key is a no-op.
func (e *Engine) Reset(ctx context.Context, key string) string {
	existed := e.store.Reset(key)
	e.emit(ctx, EventReset, observability.LevelInfo, map[string]any{
		"session": key,
		"existed": existed,
	})
	if existed {
		return "cleared"
	}
	return "no session"
}

// singleTurn runs the one-call pipeline: phase prompt, provider call,
// suggestion parse, memory write-back.
func (e *Engine) singleTurn(ctx context.Context, s *session.Session) Reply {
	out, err := e.complete(ctx, e.buildMessages(s, e.phaseDirective(&s.Intent)), e.cfg.Chat)
	if err != nil {
		return e.failTurn(ctx, s, err)
	}

	// The raw output, delimiter included, is what future turns reason over.
	s.Append(protocol.NewMessage(protocol.RoleAssistant, out))
	s.Trim(e.store.Window())

	if s.Intent.Phase() == intent.PhaseExploring {
		if clean, candidate, ok := intent.ParseSuggestion(out); ok {
			s.Intent.Suggest(candidate)
			e.emit(ctx, EventSuggestion, observability.LevelInfo, map[string]any{
				"session": s.Key(),
				"intent":  candidate,
			})
			return Reply{Kind: KindSuggestion, Text: clean, Intent: candidate}
		}
	}

	return Reply{Kind: KindPlain, Text: out}
}

// dualTurn runs the two-stage pipeline: a deterministic computation call,
// the precision gate, and a stylistic rendering call. Only the computation
// output is written back to the session log, so stage-two drift never
// contaminates later reasoning context.
func (e *Engine) dualTurn(ctx context.Context, s *session.Session) Reply {
	e.emit(ctx, EventStageStart, observability.LevelVerbose, map[string]any{
		"session": s.Key(),
		"stage":   "computation",
	})

	directive := e.cfg.Prompts.Computation
	if s.Intent.Phase() == intent.PhaseLocked {
		directive = directive + "\n\n" + e.lockedDirective(&s.Intent)
	}

	computed, err := e.complete(ctx, e.buildMessages(s, directive), e.cfg.Computation)
	if err != nil {
		return e.failTurn(ctx, s, err)
	}

	e.emit(ctx, EventStageComplete, observability.LevelVerbose, map[string]any{
		"session": s.Key(),
		"stage":   "computation",
		"voided":  strings.Contains(computed, e.cfg.VoidSentinel),
	})

	// Precision gate: the computation output is itself an inquiry for the
	// missing facts, so it goes out as-is and rendering is skipped.
	if strings.Contains(computed, e.cfg.VoidSentinel) {
		s.Append(protocol.NewMessage(protocol.RoleAssistant, computed))
		s.Trim(e.store.Window())
		return Reply{Kind: KindPlain, Text: computed}
	}

	e.emit(ctx, EventStageStart, observability.LevelVerbose, map[string]any{
		"session": s.Key(),
		"stage":   "render",
	})

	rendered, err := e.complete(ctx, []protocol.Message{
		protocol.NewMessage(protocol.RoleSystem, e.cfg.Prompts.Render),
		protocol.NewMessage(protocol.RoleUser, computed),
	}, e.cfg.Render)
	if err != nil {
		return e.failTurn(ctx, s, err)
	}

	e.emit(ctx, EventStageComplete, observability.LevelVerbose, map[string]any{
		"session": s.Key(),
		"stage":   "render",
	})

	s.Append(protocol.NewMessage(protocol.RoleAssistant, computed))
	s.Trim(e.store.Window())
	return Reply{Kind: KindPlain, Text: rendered}
}

// complete issues one provider call under the configured timeout.
func (e *Engine) complete(ctx context.Context, messages []protocol.Message, params completion.Params) (string, error) {
	if e.cfg.TimeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(e.cfg.TimeoutSeconds)*time.Second)
		defer cancel()
	}
	return e.completer.Complete(ctx, messages, params)
}

// failTurn converts a provider failure into an error-tagged reply. The log
// keeps the already-appended user turn and gains no assistant turn, so the
// error text never poisons future context.
func (e *Engine) failTurn(ctx context.Context, s *session.Session, err error) Reply {
	e.emit(ctx, EventError, observability.LevelError, map[string]any{
		"session": s.Key(),
		"error":   err.Error(),
	})
	return Reply{Kind: KindError, Text: err.Error()}
}

// buildMessages assembles the provider conversation: the protocol turn
// merged with the per-turn directive, followed by the windowed history.
func (e *Engine) buildMessages(s *session.Session, directive string) []protocol.Message {
	history := s.Messages()

	system := history[0].Content
	if directive != "" {
		system = system + "\n\n" + directive
	}

	messages := make([]protocol.Message, 0, len(history))
	messages = append(messages, protocol.NewMessage(protocol.RoleSystem, system))
	messages = append(messages, history[1:]...)
	return messages
}

// phaseDirective selects the system prompt variant for the current phase.
func (e *Engine) phaseDirective(st *intent.State) string {
	if st.Phase() == intent.PhaseLocked {
		return e.lockedDirective(st)
	}
	return e.cfg.Prompts.Explore
}

func (e *Engine) lockedDirective(st *intent.State) string {
	return strings.ReplaceAll(e.cfg.Prompts.Locked, "{intent}", st.Locked)
}

func (e *Engine) emit(ctx context.Context, t observability.EventType, level observability.Level, data map[string]any) {
	e.observer.OnEvent(ctx, observability.Event{
		Type:      t,
		Level:     level,
		Timestamp: time.Now(),
		Source:    "engine",
		Data:      data,
	})
}
