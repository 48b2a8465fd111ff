package observability_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/tailored-agentic-units/dialogue/observability"
)

type recordingObserver struct {
	events []observability.Event
}

func (r *recordingObserver) OnEvent(_ context.Context, event observability.Event) {
	r.events = append(r.events, event)
}

func TestLevel_SlogLevel(t *testing.T) {
	tests := []struct {
		level observability.Level
		want  slog.Level
	}{
		{observability.LevelVerbose, slog.LevelDebug},
		{observability.LevelInfo, slog.LevelInfo},
		{observability.LevelWarning, slog.LevelWarn},
		{observability.LevelError, slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			if got := tt.level.SlogLevel(); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSlogObserver(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	obs := observability.NewSlogObserver(logger)
	obs.OnEvent(context.Background(), observability.Event{
		Type:      "engine.turn.start",
		Level:     observability.LevelInfo,
		Timestamp: time.Now(),
		Source:    "test",
		Data:      map[string]any{"session": "u1"},
	})

	out := buf.String()
	if !strings.Contains(out, "engine.turn.start") {
		t.Errorf("log output missing event type: %q", out)
	}
	if !strings.Contains(out, "session=u1") {
		t.Errorf("log output missing data attribute: %q", out)
	}
}

func TestMultiObserver(t *testing.T) {
	a := &recordingObserver{}
	b := &recordingObserver{}

	multi := observability.NewMultiObserver(a, nil, b)
	multi.OnEvent(context.Background(), observability.Event{Type: "x"})

	if len(a.events) != 1 || len(b.events) != 1 {
		t.Errorf("got %d/%d events, want 1/1", len(a.events), len(b.events))
	}
}

func TestGetObserver(t *testing.T) {
	if _, err := observability.GetObserver("noop"); err != nil {
		t.Errorf("noop observer should be pre-registered: %v", err)
	}
	if _, err := observability.GetObserver("slog"); err != nil {
		t.Errorf("slog observer should be pre-registered: %v", err)
	}
	if _, err := observability.GetObserver("nope"); err == nil {
		t.Error("unknown observer name should fail")
	}
}

func TestRegisterObserver(t *testing.T) {
	rec := &recordingObserver{}
	observability.RegisterObserver("recording", rec)

	got, err := observability.GetObserver("recording")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if got != observability.Observer(rec) {
		t.Error("lookup returned a different observer")
	}
}
