package conversation

import (
	"strings"
	"testing"

	"github.com/harborhealth/scheduling-agent/internal/routing"
)

func TestSessionLifecycle(t *testing.T) {
	m := NewSessionManager()

	created := m.Create("conv-1", "PT001")
	if created.State != StateRouting {
		t.Fatalf("new session state = %q, want routing", created.State)
	}
	if len(created.Events) != 1 || created.Events[0].Type != EventSessionStarted {
		t.Fatalf("events = %+v", created.Events)
	}

	s, err := m.Assign("conv-1", routing.AgentCardiology, "initial routing")
	if err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if s.State != StateActive || s.Agent != routing.AgentCardiology {
		t.Errorf("after assign: state=%q agent=%q", s.State, s.Agent)
	}

	s, err = m.Handoff("conv-1", routing.AgentOrthopedic, "message re-classified")
	if err != nil {
		t.Fatalf("Handoff: %v", err)
	}
	if s.Agent != routing.AgentOrthopedic {
		t.Errorf("agent after handoff = %q", s.Agent)
	}
	last := s.Events[len(s.Events)-1]
	if last.Type != EventAgentHandoff || last.FromAgent != routing.AgentCardiology || last.ToAgent != routing.AgentOrthopedic {
		t.Errorf("handoff event = %+v", last)
	}

	s, err = m.End("conv-1", "done")
	if err != nil {
		t.Fatalf("End: %v", err)
	}
	if s.State != StateEnded {
		t.Errorf("state after end = %q", s.State)
	}

	wantTypes := []EventType{EventSessionStarted, EventAgentAssigned, EventAgentHandoff, EventSessionEnded}
	if len(s.Events) != len(wantTypes) {
		t.Fatalf("got %d events, want %d", len(s.Events), len(wantTypes))
	}
	for i, w := range wantTypes {
		if s.Events[i].Type != w {
			t.Errorf("event %d = %q, want %q", i, s.Events[i].Type, w)
		}
	}
}

func TestSessionInvalidTransitions(t *testing.T) {
	m := NewSessionManager()
	m.Create("conv-1", "PT001")

	// Handoff before assignment.
	if _, err := m.Handoff("conv-1", routing.AgentCardiology, ""); err == nil {
		t.Error("handoff from routing state must fail")
	}

	if _, err := m.Assign("conv-1", routing.AgentCardiology, ""); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	// Double assignment.
	if _, err := m.Assign("conv-1", routing.AgentOrthopedic, ""); err == nil {
		t.Error("assigning an active session must fail")
	}

	if _, err := m.End("conv-1", ""); err != nil {
		t.Fatalf("End: %v", err)
	}
	// Operations on an ended session.
	if _, err := m.Handoff("conv-1", routing.AgentOrthopedic, ""); err == nil {
		t.Error("handoff on ended session must fail")
	}
	if _, err := m.End("conv-1", ""); err == nil {
		t.Error("double end must fail")
	}

	// Unknown session.
	if _, err := m.Assign("conv-404", routing.AgentCardiology, ""); err == nil || !strings.Contains(err.Error(), "unknown session") {
		t.Errorf("unknown session err = %v", err)
	}
}

func TestSessionHandoffToSameAgentIsNoOp(t *testing.T) {
	m := NewSessionManager()
	m.Create("conv-1", "PT001")
	if _, err := m.Assign("conv-1", routing.AgentCardiology, ""); err != nil {
		t.Fatalf("Assign: %v", err)
	}

	s, err := m.Handoff("conv-1", routing.AgentCardiology, "same")
	if err != nil {
		t.Fatalf("Handoff: %v", err)
	}
	for _, ev := range s.Events {
		if ev.Type == EventAgentHandoff {
			t.Error("no-op handoff must not record an event")
		}
	}
}

func TestSessionGetReturnsCopy(t *testing.T) {
	m := NewSessionManager()
	m.Create("conv-1", "PT001")

	s, ok := m.Get("conv-1")
	if !ok {
		t.Fatal("session missing")
	}
	s.Events[0].Type = "tampered"
	s.State = StateEnded

	fresh, _ := m.Get("conv-1")
	if fresh.Events[0].Type != EventSessionStarted || fresh.State != StateRouting {
		t.Error("mutating a returned session affected the manager")
	}
}
