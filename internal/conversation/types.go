// Package conversation runs patient conversations end to end: routing the
// opening message to a specialty agent, driving the bounded tool-calling
// loop against the scheduling engine, and persisting transcripts between
// turns.
package conversation

import (
	"context"
	"time"

	"github.com/harborhealth/scheduling-agent/internal/routing"
	"github.com/harborhealth/scheduling-agent/internal/scheduling"
)

// Service is the conversation engine's public surface.
type Service interface {
	StartConversation(ctx context.Context, req StartRequest) (*Response, error)
	ProcessMessage(ctx context.Context, req MessageRequest) (*Response, error)
	GetHistory(ctx context.Context, conversationID string) ([]Message, error)
	EndConversation(ctx context.Context, conversationID string) (Session, error)
}

// Message is one transcript entry exposed over the API. Tool plumbing
// messages are filtered out of transcripts.
type Message struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// StartRequest opens a conversation with the patient's first message.
type StartRequest struct {
	PatientID string `json:"patient_id"`
	Message   string `json:"message"`
}

// MessageRequest is a follow-up turn in an existing conversation.
type MessageRequest struct {
	ConversationID string `json:"conversation_id"`
	Message        string `json:"message"`
}

// Response is the agent's answer for one turn.
type Response struct {
	ConversationID string                          `json:"conversation_id"`
	Agent          routing.Agent                   `json:"agent"`
	Reply          string                          `json:"reply"`
	Urgency        UrgencyLevel                    `json:"urgency,omitempty"`
	Booking        *scheduling.BookingConfirmation `json:"booking,omitempty"`
	FallbackUsed   bool                            `json:"fallback_used,omitempty"`
	HandoffFrom    routing.Agent                   `json:"handoff_from,omitempty"`
	Iterations     int                             `json:"iterations"`
	ToolsUsed      []string                        `json:"tools_used,omitempty"`
	Transient      bool                            `json:"transient,omitempty"`
	Timestamp      time.Time                       `json:"timestamp"`
}
