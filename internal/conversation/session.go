package conversation

import (
	"fmt"
	"sync"
	"time"

	"github.com/harborhealth/scheduling-agent/internal/routing"
)

// SessionState is the lifecycle position of one conversation session.
type SessionState string

const (
	StateRouting SessionState = "routing" // created, no agent assigned yet
	StateActive  SessionState = "active"  // an agent owns the conversation
	StateEnded   SessionState = "ended"
)

// EventType tags session transitions.
type EventType string

const (
	EventSessionStarted EventType = "session_started"
	EventAgentAssigned  EventType = "agent_assigned"
	EventAgentHandoff   EventType = "agent_handoff"
	EventSessionEnded   EventType = "session_ended"
)

// TransitionEvent is one entry in a session's audit trail.
type TransitionEvent struct {
	Type      EventType     `json:"type"`
	FromAgent routing.Agent `json:"from_agent,omitempty"`
	ToAgent   routing.Agent `json:"to_agent,omitempty"`
	Reason    string        `json:"reason,omitempty"`
	At        time.Time     `json:"at"`
}

// Session tracks which agent owns a conversation and how it got there.
type Session struct {
	ConversationID string            `json:"conversation_id"`
	PatientID      string            `json:"patient_id"`
	State          SessionState      `json:"state"`
	Agent          routing.Agent     `json:"agent,omitempty"`
	Events         []TransitionEvent `json:"events"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// SessionManager holds live sessions in memory and enforces the session
// state machine: routing -> active -> ended, with handoffs allowed only
// while active. Safe for concurrent use.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	now      func() time.Time
}

// NewSessionManager returns an empty manager.
func NewSessionManager() *SessionManager {
	return &SessionManager{sessions: map[string]*Session{}, now: time.Now}
}

// Create registers a new session in the routing state.
func (m *SessionManager) Create(conversationID, patientID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	s := &Session{
		ConversationID: conversationID,
		PatientID:      patientID,
		State:          StateRouting,
		Events: []TransitionEvent{
			{Type: EventSessionStarted, At: now},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.sessions[conversationID] = s
	return s
}

// Get returns a copy of the session.
func (m *SessionManager) Get(conversationID string) (Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[conversationID]
	if !ok {
		return Session{}, false
	}
	return m.copyLocked(s), true
}

// Assign moves a routing session to active under the given agent.
func (m *SessionManager) Assign(conversationID string, agent routing.Agent, reason string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[conversationID]
	if !ok {
		return Session{}, fmt.Errorf("conversation: unknown session %s", conversationID)
	}
	if s.State != StateRouting {
		return Session{}, fmt.Errorf("conversation: session %s is %s, cannot assign", conversationID, s.State)
	}
	now := m.now()
	s.State = StateActive
	s.Agent = agent
	s.UpdatedAt = now
	s.Events = append(s.Events, TransitionEvent{
		Type: EventAgentAssigned, ToAgent: agent, Reason: reason, At: now,
	})
	return m.copyLocked(s), nil
}

// Handoff transfers an active session to a different agent. Handing off to
// the current agent is a no-op.
func (m *SessionManager) Handoff(conversationID string, to routing.Agent, reason string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[conversationID]
	if !ok {
		return Session{}, fmt.Errorf("conversation: unknown session %s", conversationID)
	}
	if s.State != StateActive {
		return Session{}, fmt.Errorf("conversation: session %s is %s, cannot hand off", conversationID, s.State)
	}
	if s.Agent == to {
		return m.copyLocked(s), nil
	}
	now := m.now()
	from := s.Agent
	s.Agent = to
	s.UpdatedAt = now
	s.Events = append(s.Events, TransitionEvent{
		Type: EventAgentHandoff, FromAgent: from, ToAgent: to, Reason: reason, At: now,
	})
	return m.copyLocked(s), nil
}

// End closes a session. Ending an already-ended session is an error.
func (m *SessionManager) End(conversationID string, reason string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[conversationID]
	if !ok {
		return Session{}, fmt.Errorf("conversation: unknown session %s", conversationID)
	}
	if s.State == StateEnded {
		return Session{}, fmt.Errorf("conversation: session %s already ended", conversationID)
	}
	now := m.now()
	s.State = StateEnded
	s.UpdatedAt = now
	s.Events = append(s.Events, TransitionEvent{Type: EventSessionEnded, Reason: reason, At: now})
	return m.copyLocked(s), nil
}

func (m *SessionManager) copyLocked(s *Session) Session {
	out := *s
	out.Events = make([]TransitionEvent, len(s.Events))
	copy(out.Events, s.Events)
	return out
}
