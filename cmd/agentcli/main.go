package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/harborhealth/scheduling-agent/internal/clinicdata"
	appconfig "github.com/harborhealth/scheduling-agent/internal/config"
	"github.com/harborhealth/scheduling-agent/internal/conversation"
	"github.com/harborhealth/scheduling-agent/internal/routing"
	"github.com/harborhealth/scheduling-agent/internal/scheduling"
	"github.com/harborhealth/scheduling-agent/internal/tools"
	"github.com/harborhealth/scheduling-agent/pkg/logging"
)

// agentcli is a terminal chat client for exercising the agent end to end
// without the HTTP surface. Useful for trying prompts against a live model.
func main() {
	cfg := appconfig.Load()
	if cfg.OpenAIAPIKey == "" {
		fmt.Fprintln(os.Stderr, "OPENAI_API_KEY is required")
		os.Exit(1)
	}
	logger := logging.New("warn")

	now := time.Now()
	patients, providers, policies, protocols := clinicdata.Seed(now)
	dir := clinicdata.NewDirectory(patients, providers, policies, protocols)
	slots := clinicdata.GenerateSlots(providers, now, cfg.SlotHorizonDays, cfg.SlotSeed)
	engine := scheduling.NewEngine(dir, scheduling.NewSlotStore(slots), logger)

	clientCfg := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		clientCfg.BaseURL = cfg.OpenAIBaseURL
	}
	llmClient := openai.NewClientWithConfig(clientCfg)

	stats := routing.NewStats()
	policyRetriever := routing.NewStaticPolicyRetriever()
	intentRouter := routing.NewRouter(llmClient, stats, cfg.RouterModel,
		routing.Agent(cfg.DefaultAgent), cfg.LLMTimeout, logger,
		routing.WithPolicyRetriever(policyRetriever))
	dispatcher := tools.NewDispatcher(engine, logger, nil)

	service := conversation.NewAgentService(intentRouter, llmClient, dispatcher,
		conversation.NewMemoryHistoryStore(), nil, conversation.ServiceConfig{
			Model:           cfg.AgentModel,
			MaxIterations:   cfg.MaxToolIterations,
			CallTimeout:     cfg.LLMTimeout,
			HistoryWindow:   cfg.HistoryWindow,
			PolicyRetriever: policyRetriever,
		}, logger)

	patientID := "PT001"
	if len(os.Args) > 1 {
		patientID = os.Args[1]
	}
	fmt.Printf("Scheduling agent (patient %s). Type a message, or 'quit' to exit.\n", patientID)

	scanner := bufio.NewScanner(os.Stdin)
	ctx := context.Background()
	var conversationID string

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}

		var resp *conversation.Response
		var err error
		if conversationID == "" {
			resp, err = service.StartConversation(ctx, conversation.StartRequest{
				PatientID: patientID,
				Message:   line,
			})
		} else {
			resp, err = service.ProcessMessage(ctx, conversation.MessageRequest{
				ConversationID: conversationID,
				Message:        line,
			})
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		conversationID = resp.ConversationID

		fmt.Printf("\n[%s", resp.Agent)
		if resp.HandoffFrom != "" {
			fmt.Printf(", handed off from %s", resp.HandoffFrom)
		}
		if resp.FallbackUsed {
			fmt.Print(", fallback")
		}
		fmt.Printf("] %s\n", resp.Reply)
		if resp.Booking != nil {
			fmt.Printf("booked: %s with %s on %s %s\n",
				resp.Booking.ConfirmationNumber, resp.Booking.ProviderName,
				resp.Booking.Date, resp.Booking.Time)
		}
		fmt.Println()
	}

	if conversationID != "" {
		if _, err := service.EndConversation(ctx, conversationID); err != nil {
			logger.Warn("ending conversation", "error", err)
		}
	}
}
