// Package routing classifies incoming patient messages to the right
// specialty agent. The router asks a small LLM for the classification,
// quoting keyword evidence found in the message, and guarantees a usable
// decision even when the model is unreachable or indecisive.
package routing

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/harborhealth/scheduling-agent/pkg/logging"
)

// Agent identifies one specialty agent.
type Agent string

const (
	AgentOrthopedic  Agent = "orthopedic"
	AgentCardiology  Agent = "cardiology"
	AgentPrimaryCare Agent = "primary_care"

	// agentUnclear is internal: RouteWithFallback never surfaces it.
	agentUnclear Agent = ""
)

// Confidence grades how sure the classifier was.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Decision is the routing outcome for one message.
type Decision struct {
	Agent        Agent              `json:"agent"`
	Confidence   Confidence         `json:"confidence"`
	Reasoning    string             `json:"reasoning,omitempty"`
	Evidence     map[Agent][]string `json:"evidence,omitempty"`
	FallbackUsed bool               `json:"fallback_used"`
	Timestamp    time.Time          `json:"timestamp"`
}

type chatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Router classifies messages. Construct with NewRouter; all methods are safe
// for concurrent use.
type Router struct {
	client       chatClient
	model        string
	defaultAgent Agent
	timeout      time.Duration
	logger       *logging.Logger
	stats        *Stats
	retriever    PolicyRetriever
}

// RouterOption customizes optional router behavior.
type RouterOption func(*Router)

// WithPolicyRetriever supplies clinic policy snippets as extra routing
// context. Retrieval failures are logged and skipped, never fatal.
func WithPolicyRetriever(pr PolicyRetriever) RouterOption {
	return func(r *Router) { r.retriever = pr }
}

// NewRouter creates a router. The client and stats aggregator are required.
func NewRouter(client chatClient, stats *Stats, model string, defaultAgent Agent, timeout time.Duration, logger *logging.Logger, opts ...RouterOption) *Router {
	if client == nil {
		panic("routing: chat client is required")
	}
	if stats == nil {
		panic("routing: stats aggregator is required")
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	if defaultAgent == "" {
		defaultAgent = AgentPrimaryCare
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if logger == nil {
		logger = logging.Default()
	}
	r := &Router{
		client:       client,
		model:        model,
		defaultAgent: defaultAgent,
		timeout:      timeout,
		logger:       logger,
		stats:        stats,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

const routerSystemPrompt = `You are a triage router for a healthcare scheduling system. Classify the patient's message to exactly one department: orthopedic, cardiology, or primary care. Reply with the department name, your confidence (high confidence, or low confidence if unclear), and a one-line reason.`

// Route asks the model to classify the message, giving it the last few
// conversation turns for context. Classification never fails: a model error
// or an empty reply degrades to an unclear, low-confidence decision that
// RouteWithFallback can resolve.
func (r *Router) Route(ctx context.Context, message string, recentHistory []string) Decision {
	evidence := KeywordEvidence(message)

	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	resp, err := r.client.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
		Model: r.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: routerSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: formatRoutingPrompt(message, recentHistory, evidence, r.policyContext(callCtx, message))},
		},
	})
	if err != nil {
		r.logger.Warn("classification call failed", "error", err)
		return Decision{
			Agent:      agentUnclear,
			Confidence: ConfidenceLow,
			Reasoning:  "classifier unavailable",
			Evidence:   evidence,
			Timestamp:  time.Now().UTC(),
		}
	}
	if len(resp.Choices) == 0 {
		r.logger.Warn("classifier returned no choices")
		return Decision{
			Agent:      agentUnclear,
			Confidence: ConfidenceLow,
			Reasoning:  "classifier returned no answer",
			Evidence:   evidence,
			Timestamp:  time.Now().UTC(),
		}
	}

	reply := resp.Choices[0].Message.Content
	agent, confidence := parseRoutingReply(reply)
	return Decision{
		Agent:      agent,
		Confidence: confidence,
		Reasoning:  strings.TrimSpace(reply),
		Evidence:   evidence,
		Timestamp:  time.Now().UTC(),
	}
}

// policyContext fetches up to maxPolicySnippets snippets for the message.
func (r *Router) policyContext(ctx context.Context, message string) []PolicySnippet {
	if r.retriever == nil {
		return nil
	}
	snippets, err := r.retriever.Retrieve(ctx, message, maxPolicySnippets)
	if err != nil {
		r.logger.Warn("policy retrieval failed, routing without context", "error", err)
		return nil
	}
	return snippets
}

// RouteWithFallback always produces a routable decision: unclear or
// low-confidence classifications fall back to the default agent with
// FallbackUsed set. Every decision is recorded in the stats aggregator.
func (r *Router) RouteWithFallback(ctx context.Context, message string, recentHistory []string) Decision {
	d := r.Route(ctx, message, recentHistory)
	if d.Agent == agentUnclear || d.Confidence == ConfidenceLow {
		r.logger.Info("routing fell back on indecisive classification",
			"agent", d.Agent, "confidence", d.Confidence, "default_agent", r.defaultAgent)
		d.Agent = r.defaultAgent
		d.FallbackUsed = true
	}
	r.stats.record(d)
	return d
}

// RouteBatch classifies several messages concurrently, preserving input
// order in the result.
func (r *Router) RouteBatch(ctx context.Context, messages []string) []Decision {
	out := make([]Decision, len(messages))
	var wg sync.WaitGroup
	for i, msg := range messages {
		wg.Add(1)
		go func(i int, msg string) {
			defer wg.Done()
			out[i] = r.RouteWithFallback(ctx, msg, nil)
		}(i, msg)
	}
	wg.Wait()
	return out
}

func formatRoutingPrompt(message string, recentHistory []string, evidence map[Agent][]string, snippets []PolicySnippet) string {
	var b strings.Builder
	if len(recentHistory) > 0 {
		b.WriteString("Recent conversation:\n")
		for _, turn := range recentHistory {
			b.WriteString(turn)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString("Patient message:\n")
	b.WriteString(message)
	if len(snippets) > 0 {
		b.WriteString("\n\nRelevant clinic policies:\n")
		for _, sn := range snippets {
			fmt.Fprintf(&b, "- %s: %s\n", sn.Title, sn.Text)
		}
	}
	if len(evidence) > 0 {
		b.WriteString("\n\nKeyword evidence found in the message:\n")
		agents := make([]Agent, 0, len(evidence))
		for a := range evidence {
			agents = append(agents, a)
		}
		sort.Slice(agents, func(i, j int) bool { return agents[i] < agents[j] })
		for _, a := range agents {
			fmt.Fprintf(&b, "- %s: %s\n", a, strings.Join(evidence[a], ", "))
		}
	}
	return b.String()
}

// parseRoutingReply extracts the chosen agent and confidence from the
// model's free-text answer.
func parseRoutingReply(reply string) (Agent, Confidence) {
	text := strings.ToLower(reply)

	var agent Agent
	switch {
	case strings.Contains(text, "orthopedic"):
		agent = AgentOrthopedic
	case strings.Contains(text, "cardiology"), strings.Contains(text, "cardiac"):
		agent = AgentCardiology
	case strings.Contains(text, "primary"):
		agent = AgentPrimaryCare
	default:
		agent = agentUnclear
	}

	confidence := ConfidenceMedium
	switch {
	case strings.Contains(text, "high confidence"), strings.Contains(text, "clearly"):
		confidence = ConfidenceHigh
	case strings.Contains(text, "low confidence"), strings.Contains(text, "unclear"), strings.Contains(text, "uncertain"):
		confidence = ConfidenceLow
	}
	return agent, confidence
}
