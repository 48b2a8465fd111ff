package protocol_test

import (
	"encoding/json"
	"testing"

	"github.com/tailored-agentic-units/dialogue/core/protocol"
)

func TestNewMessage(t *testing.T) {
	msg := protocol.NewMessage(protocol.RoleUser, "hello")

	if msg.Role != protocol.RoleUser {
		t.Errorf("got role %q, want %q", msg.Role, protocol.RoleUser)
	}
	if msg.Content != "hello" {
		t.Errorf("got content %q, want %q", msg.Content, "hello")
	}
}

func TestInitMessages(t *testing.T) {
	msgs := protocol.InitMessages(protocol.RoleSystem, "you are a probe")

	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1", len(msgs))
	}
	if msgs[0].Role != protocol.RoleSystem {
		t.Errorf("got role %q, want %q", msgs[0].Role, protocol.RoleSystem)
	}
}

func TestMessage_JSON(t *testing.T) {
	msg := protocol.NewMessage(protocol.RoleAssistant, "reply text")

	data, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded protocol.Message
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if decoded != msg {
		t.Errorf("round trip mismatch: got %+v, want %+v", decoded, msg)
	}
}
