package routing

import "strings"

// Specialty keyword lists used as classification evidence. The router quotes
// matches to the model and uses them to sanity-check its answer; they are
// hints, not a rules engine.
var specialtyKeywords = map[Agent][]string{
	AgentOrthopedic: {
		"knee", "hip", "joint", "bone", "fracture", "orthopedic",
		"sports injury", "arthritis", "surgery", "replacement",
	},
	AgentCardiology: {
		"heart", "chest pain", "cardiology", "cardiac", "afib", "a-fib",
		"stress test", "pacemaker", "stent",
	},
	AgentPrimaryCare: {
		"physical", "wellness", "checkup", "annual", "preventive",
		"diabetes", "hypertension", "blood pressure",
	},
}

// KeywordEvidence returns the specialty keywords present in the message,
// keyed by agent. Agents with no matches are omitted.
func KeywordEvidence(message string) map[Agent][]string {
	text := strings.ToLower(message)
	out := map[Agent][]string{}
	for agent, words := range specialtyKeywords {
		for _, w := range words {
			if strings.Contains(text, w) {
				out[agent] = append(out[agent], w)
			}
		}
	}
	return out
}
