package conversation

import (
	"fmt"

	"github.com/harborhealth/scheduling-agent/internal/routing"
)

const promptCommon = `You are a scheduling assistant for Harbor Health. Use the available tools to look up patients, providers, insurance, referrals, clinical protocols, and open appointment slots, and to book appointments when the patient confirms a slot. Never invent data: every provider, slot, or coverage detail you state must come from a tool result. When a tool reports a failure, explain it to the patient and offer an alternative. Keep replies short and concrete.`

var agentPrompts = map[routing.Agent]string{
	routing.AgentOrthopedic: promptCommon + `

You handle orthopedic scheduling: joint replacements, fractures, sports injuries, and post-operative follow-ups. For post-op patients, check the clinical protocol for the recommended follow-up window before searching slots, and consider the surgeon's PA/NP team when the surgeon has no timely openings.`,

	routing.AgentCardiology: promptCommon + `

You handle cardiology scheduling. Check referral requirements before booking: many plans require a current referral for cardiology. Treat scheduling urgency seriously; abnormal test results and symptomatic patients should be offered the earliest appropriate slot. You do not diagnose, and you never discourage a patient from seeking emergency care.`,

	routing.AgentPrimaryCare: promptCommon + `

You handle primary care scheduling: annual physicals, wellness visits, chronic condition follow-ups, and sick visits. You are also the default agent for unclear requests; if the conversation turns out to need a specialist, say so and continue helping with what you can.`,
}

// agentQueryPrefixes seed policy retrieval with each agent's domain terms
// so short patient messages still pull the right policies.
var agentQueryPrefixes = map[routing.Agent]string{
	routing.AgentOrthopedic:  "orthopedic specialist referral follow-up scheduling",
	routing.AgentCardiology:  "cardiology referral urgent emergency scheduling",
	routing.AgentPrimaryCare: "primary care new patient insurance scheduling",
}

func retrieverQuery(agent routing.Agent, message string) string {
	prefix, ok := agentQueryPrefixes[agent]
	if !ok {
		prefix = agentQueryPrefixes[routing.AgentPrimaryCare]
	}
	return prefix + " " + message
}

// systemPrompt builds the per-agent system prompt, annotated with the
// patient id when known so the agent passes it to tools instead of asking.
func systemPrompt(agent routing.Agent, patientID string) string {
	prompt, ok := agentPrompts[agent]
	if !ok {
		prompt = agentPrompts[routing.AgentPrimaryCare]
	}
	if patientID != "" {
		prompt += fmt.Sprintf("\n\nThe patient you are speaking with has patient ID %s.", patientID)
	}
	return prompt
}
