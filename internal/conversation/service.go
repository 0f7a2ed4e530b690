package conversation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"

	"github.com/harborhealth/scheduling-agent/internal/observability/metrics"
	"github.com/harborhealth/scheduling-agent/internal/routing"
	"github.com/harborhealth/scheduling-agent/internal/tools"
	"github.com/harborhealth/scheduling-agent/pkg/logging"
)

const transientReply = "I'm having trouble reaching our scheduling system right now. Please try again in a moment — nothing about your request was lost."

// routingContextTurns caps how many prior messages the router sees when
// re-classifying a follow-up message.
const routingContextTurns = 6

// AgentService is the production Service implementation: router in front,
// specialty agent loop behind, transcripts in the history store.
type AgentService struct {
	router        *routing.Router
	loop          *loop
	history       HistoryStore
	sessions      *SessionManager
	metrics       *metrics.AgentMetrics
	retriever     routing.PolicyRetriever
	historyWindow int
	logger        *logging.Logger
}

// ServiceConfig collects AgentService construction parameters.
type ServiceConfig struct {
	Model         string
	MaxIterations int
	CallTimeout   time.Duration
	// HistoryWindow is how many prior user turns are replayed to the model
	// on each message. Zero keeps the full transcript.
	HistoryWindow int
	// PolicyRetriever, when set, appends clinic policy snippets to the
	// agent system prompt.
	PolicyRetriever routing.PolicyRetriever
}

// NewAgentService wires the conversation engine. Router, client, dispatcher,
// and history store are required; metrics may be nil.
func NewAgentService(router *routing.Router, client chatClient, dispatcher *tools.Dispatcher,
	history HistoryStore, m *metrics.AgentMetrics, cfg ServiceConfig, logger *logging.Logger) *AgentService {
	if router == nil {
		panic("conversation: router cannot be nil")
	}
	if history == nil {
		panic("conversation: history store cannot be nil")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &AgentService{
		router:        router,
		loop:          newLoop(client, dispatcher, cfg.Model, cfg.MaxIterations, cfg.CallTimeout, logger),
		history:       history,
		sessions:      NewSessionManager(),
		metrics:       m,
		retriever:     cfg.PolicyRetriever,
		historyWindow: cfg.HistoryWindow,
		logger:        logger,
	}
}

// StartConversation routes the opening message to a specialty agent and runs
// the first agent turn.
func (s *AgentService) StartConversation(ctx context.Context, req StartRequest) (*Response, error) {
	if req.Message == "" {
		return nil, errors.New("conversation: message is required")
	}

	decision := s.router.RouteWithFallback(ctx, req.Message, nil)
	s.metrics.RecordRoutingDecision(string(decision.Agent), decision.FallbackUsed)

	conversationID := uuid.NewString()
	s.sessions.Create(conversationID, req.PatientID)
	if _, err := s.sessions.Assign(conversationID, decision.Agent, "initial routing"); err != nil {
		return nil, err
	}
	s.logger.Info("conversation started",
		"conversation_id", conversationID,
		"patient_id", req.PatientID,
		"agent", decision.Agent,
		"fallback", decision.FallbackUsed,
	)

	history := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: systemPrompt(decision.Agent, req.PatientID) + s.policyAddendum(ctx, decision.Agent, req.Message)},
		{Role: openai.ChatMessageRoleUser, Content: req.Message},
	}

	resp, err := s.runTurn(ctx, conversationID, decision.Agent, req.Message, history)
	if err != nil {
		return nil, err
	}
	resp.FallbackUsed = decision.FallbackUsed
	return resp, nil
}

// ProcessMessage continues an existing conversation. Each message is
// re-routed; a confidently different classification hands the session off to
// the other agent before the turn runs.
func (s *AgentService) ProcessMessage(ctx context.Context, req MessageRequest) (*Response, error) {
	if req.ConversationID == "" || req.Message == "" {
		return nil, errors.New("conversation: conversation_id and message are required")
	}
	session, ok := s.sessions.Get(req.ConversationID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownConversation, req.ConversationID)
	}
	if session.State == StateEnded {
		return nil, fmt.Errorf("conversation: session %s has ended", req.ConversationID)
	}

	history, err := s.history.Load(ctx, req.ConversationID)
	if err != nil {
		return nil, err
	}

	var handoffFrom routing.Agent
	decision := s.router.RouteWithFallback(ctx, req.Message, recentTurns(history, routingContextTurns))
	s.metrics.RecordRoutingDecision(string(decision.Agent), decision.FallbackUsed)
	if !decision.FallbackUsed && decision.Confidence == routing.ConfidenceHigh && decision.Agent != session.Agent {
		updated, err := s.sessions.Handoff(req.ConversationID, decision.Agent, "message re-classified")
		if err != nil {
			return nil, err
		}
		handoffFrom = session.Agent
		session = updated
		s.logger.Info("agent handoff",
			"conversation_id", req.ConversationID,
			"from", handoffFrom,
			"to", session.Agent,
		)
		// The new agent takes over the same transcript under its own prompt.
		if len(history) > 0 && history[0].Role == openai.ChatMessageRoleSystem {
			history[0].Content = systemPrompt(session.Agent, session.PatientID) + s.policyAddendum(ctx, session.Agent, req.Message)
		}
	}

	history = s.trimHistory(history)
	history = append(history, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Message,
	})

	resp, err := s.runTurn(ctx, req.ConversationID, session.Agent, req.Message, history)
	if err != nil {
		return nil, err
	}
	resp.HandoffFrom = handoffFrom
	return resp, nil
}

// policyAddendum fetches policy snippets for the agent's domain and renders
// them as a system-prompt suffix. Empty when no retriever is configured or
// nothing matches.
func (s *AgentService) policyAddendum(ctx context.Context, agent routing.Agent, message string) string {
	if s.retriever == nil {
		return ""
	}
	snippets, err := s.retriever.Retrieve(ctx, retrieverQuery(agent, message), 3)
	if err != nil {
		s.logger.Warn("policy retrieval failed, continuing without context", "agent", agent, "error", err)
		return ""
	}
	if len(snippets) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n\nClinic policies to follow:")
	for _, sn := range snippets {
		fmt.Fprintf(&b, "\n- %s: %s", sn.Title, sn.Text)
	}
	return b.String()
}

// runTurn executes the agent loop and persists the transcript. A model
// timeout produces a transient response, not an error: the turn's partial
// history is saved so the patient can simply try again.
func (s *AgentService) runTurn(ctx context.Context, conversationID string, agent routing.Agent,
	userMessage string, history []openai.ChatCompletionMessage) (*Response, error) {

	var urgency UrgencyLevel
	if agent == routing.AgentCardiology {
		urgency = ClassifyUrgency(userMessage)
	}

	result, err := s.loop.run(ctx, history)
	if err != nil {
		if errors.Is(err, ErrUpstreamTimeout) {
			s.logger.Warn("turn timed out upstream", "conversation_id", conversationID)
			if saveErr := s.history.Save(ctx, conversationID, result.History); saveErr != nil {
				s.logger.Error("failed to save partial history", "conversation_id", conversationID, "error", saveErr)
			}
			return &Response{
				ConversationID: conversationID,
				Agent:          agent,
				Reply:          transientReply,
				Urgency:        urgency,
				Transient:      true,
				Iterations:     result.Iterations,
				Timestamp:      time.Now().UTC(),
			}, nil
		}
		return nil, err
	}

	s.metrics.RecordLoopOutcome(string(agent), string(result.State), result.Iterations)
	if result.Booking != nil {
		s.metrics.RecordBooking()
	}

	reply := EnsureEmergencyNotice(result.Reply, urgency)
	if reply != result.Reply && len(result.History) > 0 {
		// Keep the stored transcript consistent with what the patient saw.
		result.History[len(result.History)-1].Content = reply
	}

	if err := s.history.Save(ctx, conversationID, result.History); err != nil {
		return nil, err
	}

	return &Response{
		ConversationID: conversationID,
		Agent:          agent,
		Reply:          reply,
		Urgency:        urgency,
		Booking:        result.Booking,
		Iterations:     result.Iterations,
		ToolsUsed:      result.ToolsUsed,
		Timestamp:      time.Now().UTC(),
	}, nil
}

// GetHistory returns the patient-visible transcript: user and assistant
// messages only, tool plumbing stripped.
func (s *AgentService) GetHistory(ctx context.Context, conversationID string) ([]Message, error) {
	history, err := s.history.Load(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	out := make([]Message, 0, len(history))
	for _, m := range history {
		if m.Role != openai.ChatMessageRoleUser && m.Role != openai.ChatMessageRoleAssistant {
			continue
		}
		if m.Content == "" {
			continue // assistant tool-call messages carry no text
		}
		out = append(out, Message{Role: m.Role, Content: m.Content})
	}
	return out, nil
}

// EndConversation closes the session. The transcript stays loadable until
// its TTL expires.
func (s *AgentService) EndConversation(_ context.Context, conversationID string) (Session, error) {
	return s.sessions.End(conversationID, "ended by caller")
}

// Session exposes the session record for a conversation.
func (s *AgentService) Session(conversationID string) (Session, bool) {
	return s.sessions.Get(conversationID)
}

// recentTurns renders the tail of the transcript as "role: content" lines
// for the router. System prompts and tool traffic are skipped; the router
// only needs what the patient and agent actually said.
func recentTurns(history []openai.ChatCompletionMessage, n int) []string {
	var turns []string
	for _, m := range history {
		if m.Role != openai.ChatMessageRoleUser && m.Role != openai.ChatMessageRoleAssistant {
			continue
		}
		if m.Content == "" {
			continue
		}
		turns = append(turns, m.Role+": "+m.Content)
	}
	if len(turns) > n {
		turns = turns[len(turns)-n:]
	}
	return turns
}

// trimHistory bounds the replayed context to the most recent historyWindow
// user turns, always keeping the system prompt. The cut never starts on a
// tool message, so assistant tool-call groups stay intact.
func (s *AgentService) trimHistory(history []openai.ChatCompletionMessage) []openai.ChatCompletionMessage {
	if s.historyWindow <= 0 || len(history) == 0 {
		return history
	}

	userTurns := 0
	start := len(history)
	for i := len(history) - 1; i > 0; i-- {
		if history[i].Role == openai.ChatMessageRoleUser {
			userTurns++
			if userTurns > s.historyWindow {
				break
			}
		}
		start = i
	}
	for start < len(history) && history[start].Role == openai.ChatMessageRoleTool {
		start++
	}

	if start <= 1 {
		return history
	}
	trimmed := make([]openai.ChatCompletionMessage, 0, 1+len(history)-start)
	trimmed = append(trimmed, history[0])
	trimmed = append(trimmed, history[start:]...)
	return trimmed
}
