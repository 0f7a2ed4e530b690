package conversation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/harborhealth/scheduling-agent/internal/scheduling"
	"github.com/harborhealth/scheduling-agent/internal/tools"
	"github.com/harborhealth/scheduling-agent/pkg/logging"
)

// LoopState is the controller's position in the tool-calling cycle.
type LoopState string

const (
	StateAwaitingModel  LoopState = "awaiting_model"
	StateExecutingTools LoopState = "executing_tools"
	StateDone           LoopState = "done"
	StateIterationLimit LoopState = "aborted_iteration_limit"
)

// ErrUpstreamTimeout marks a model call that ran out of time. The service
// converts it into a transient patient-facing response rather than a 500.
var ErrUpstreamTimeout = errors.New("conversation: model call timed out")

type chatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// LoopResult is the outcome of one agent turn.
type LoopResult struct {
	Reply      string
	State      LoopState
	Iterations int
	// Booking holds the most recent successful booking made during the
	// turn, if any. A later booking in the same turn overwrites an earlier
	// one, matching what the patient ends up holding.
	Booking *scheduling.BookingConfirmation
	// ToolsUsed lists executed tool names in call order, duplicates kept.
	ToolsUsed []string
	// History is the full transcript including tool plumbing, ready to
	// persist.
	History []openai.ChatCompletionMessage
}

// loop drives one agent turn: model round-trips interleaved with tool
// execution, capped at maxIterations model calls.
type loop struct {
	client        chatClient
	dispatcher    *tools.Dispatcher
	model         string
	maxIterations int
	callTimeout   time.Duration
	logger        *logging.Logger
}

func newLoop(client chatClient, dispatcher *tools.Dispatcher, model string, maxIterations int, callTimeout time.Duration, logger *logging.Logger) *loop {
	if client == nil {
		panic("conversation: chat client cannot be nil")
	}
	if dispatcher == nil {
		panic("conversation: tool dispatcher cannot be nil")
	}
	if maxIterations <= 0 {
		maxIterations = 10
	}
	if callTimeout <= 0 {
		callTimeout = 30 * time.Second
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &loop{
		client:        client,
		dispatcher:    dispatcher,
		model:         model,
		maxIterations: maxIterations,
		callTimeout:   callTimeout,
		logger:        logger,
	}
}

// run executes the loop over the given history. The returned history always
// includes everything appended during the turn, even on the iteration-limit
// path, so the persisted transcript matches what the model saw.
func (l *loop) run(ctx context.Context, history []openai.ChatCompletionMessage) (LoopResult, error) {
	res := LoopResult{State: StateAwaitingModel}
	defs := tools.Definitions()

	for res.Iterations < l.maxIterations {
		res.Iterations++
		res.State = StateAwaitingModel

		resp, err := l.complete(ctx, history, defs)
		if err != nil {
			res.History = history
			return res, err
		}
		msg := resp.Choices[0].Message
		history = append(history, msg)

		if len(msg.ToolCalls) == 0 {
			res.Reply = strings.TrimSpace(msg.Content)
			res.State = StateDone
			res.History = history
			return res, nil
		}

		// Execute the proposed calls in proposal order; each result is
		// keyed back to its call id.
		res.State = StateExecutingTools
		for _, call := range msg.ToolCalls {
			result := l.dispatcher.Execute(ctx, call.Function.Name, call.Function.Arguments)
			res.ToolsUsed = append(res.ToolsUsed, call.Function.Name)
			if conf := extractBooking(result); conf != nil {
				res.Booking = conf
			}
			history = append(history, openai.ChatCompletionMessage{
				Role:       openai.ChatMessageRoleTool,
				ToolCallID: call.ID,
				Content:    result.JSON(),
			})
		}
	}

	// The model kept asking for tools past the cap. Surface a safe reply
	// instead of looping forever.
	l.logger.Warn("agent loop hit iteration limit", "iterations", res.Iterations)
	res.State = StateIterationLimit
	res.Reply = "I wasn't able to finish that request in one go. Could you tell me the single most important thing you need, and I'll take it from there?"
	history = append(history, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleAssistant,
		Content: res.Reply,
	})
	res.History = history
	return res, nil
}

func (l *loop) complete(ctx context.Context, history []openai.ChatCompletionMessage, defs []openai.Tool) (openai.ChatCompletionResponse, error) {
	callCtx, cancel := context.WithTimeout(ctx, l.callTimeout)
	defer cancel()

	resp, err := l.client.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
		Model:    l.model,
		Messages: history,
		Tools:    defs,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return openai.ChatCompletionResponse{}, fmt.Errorf("%w: %v", ErrUpstreamTimeout, err)
		}
		return openai.ChatCompletionResponse{}, fmt.Errorf("conversation: model call failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return openai.ChatCompletionResponse{}, errors.New("conversation: model returned no choices")
	}
	return resp, nil
}

// extractBooking pulls the confirmation out of a successful book_appointment
// result.
func extractBooking(result tools.Result) *scheduling.BookingConfirmation {
	if !result.Success || result.Tool != string(tools.KindBookAppointment) {
		return nil
	}
	conf, ok := result.Data.(scheduling.BookingConfirmation)
	if !ok {
		// Data can arrive re-decoded from JSON in some call paths.
		raw, err := json.Marshal(result.Data)
		if err != nil {
			return nil
		}
		if err := json.Unmarshal(raw, &conf); err != nil {
			return nil
		}
	}
	return &conf
}
