package scheduling

import (
	"fmt"
	"strings"
)

// ProtocolAdvice is a clinical protocol lookup result, augmented with the
// parsed follow-up interval and the scheduling priority derived from the
// protocol's urgency level.
type ProtocolAdvice struct {
	ProtocolID          string `json:"protocol_id"`
	Name                string `json:"name"`
	Specialty           string `json:"specialty"`
	Condition           string `json:"condition"`
	RecommendedFollowUp string `json:"recommended_follow_up"`
	FollowUpDays        int    `json:"follow_up_days"`
	UrgencyLevel        string `json:"urgency_level"`
	Priority            string `json:"scheduling_priority"`
	MaxWaitDays         int    `json:"max_wait_days"`
	SpecialInstructions string `json:"special_instructions,omitempty"`
}

// GetClinicalProtocol finds the protocol matching the condition (optionally
// narrowed by specialty) and derives a concrete scheduling window from its
// free-text follow-up recommendation.
func (e *Engine) GetClinicalProtocol(condition, specialty string) (ProtocolAdvice, error) {
	proto, ok := e.dir.FindProtocol(condition, specialty)
	if !ok {
		return ProtocolAdvice{}, fmt.Errorf("%w: %q", ErrProtocolNotFound, condition)
	}

	priority, maxWait := schedulingPriority(proto.UrgencyLevel)
	return ProtocolAdvice{
		ProtocolID:          proto.ProtocolID,
		Name:                proto.Name,
		Specialty:           proto.Specialty,
		Condition:           proto.Condition,
		RecommendedFollowUp: proto.RecommendedFollowUp,
		FollowUpDays:        parseFollowUpDays(proto.RecommendedFollowUp),
		UrgencyLevel:        proto.UrgencyLevel,
		Priority:            priority,
		MaxWaitDays:         maxWait,
		SpecialInstructions: proto.SpecialInstructions,
	}, nil
}

// schedulingPriority maps a protocol urgency level to a booking priority and
// the longest acceptable wait.
func schedulingPriority(urgency string) (priority string, maxWaitDays int) {
	switch strings.ToLower(urgency) {
	case "emergent":
		return "IMMEDIATE", 1
	case "urgent":
		return "HIGH", 7
	default:
		return "NORMAL", 30
	}
}

// followUpPhrases maps recommendation phrasing to a day count. Entries are
// ordered: compound ranges must be checked before their components ("3-6
// months" before "6 months").
var followUpPhrases = []struct {
	phrase string
	days   int
}{
	{"same day", 1},
	{"urgent", 1},
	{"1 week", 7},
	{"2 week", 14},
	{"3 week", 21},
	{"4 week", 28},
	{"6 week", 42},
	{"1-3 month", 60},
	{"3-6 month", 120},
	{"1 month", 60},
	{"3 month", 120},
	{"6 month", 180},
	{"annual", 365},
	{"year", 365},
}

// parseFollowUpDays turns a free-text follow-up recommendation into the
// number of days until the earliest recommended visit. Unrecognized phrasing
// defaults to 30 days.
func parseFollowUpDays(recommendation string) int {
	text := strings.ToLower(recommendation)
	for _, p := range followUpPhrases {
		if strings.Contains(text, p.phrase) {
			return p.days
		}
	}
	return 30
}
