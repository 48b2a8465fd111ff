package engine

import "github.com/tailored-agentic-units/dialogue/observability"

// Engine event types emitted during turn processing.
const (
	EventTurnStart     observability.EventType = "engine.turn.start"
	EventTurnComplete  observability.EventType = "engine.turn.complete"
	EventOverride      observability.EventType = "engine.intent.override"
	EventConfirmed     observability.EventType = "engine.intent.confirmed"
	EventSuggestion    observability.EventType = "engine.intent.suggestion"
	EventStageStart    observability.EventType = "engine.stage.start"
	EventStageComplete observability.EventType = "engine.stage.complete"
	EventOffline       observability.EventType = "engine.offline"
	EventError         observability.EventType = "engine.error"
	EventReset         observability.EventType = "engine.reset"
)
