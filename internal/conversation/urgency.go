package conversation

import "strings"

// UrgencyLevel grades how quickly a cardiology complaint needs attention.
type UrgencyLevel string

const (
	UrgencyRoutine  UrgencyLevel = "routine"
	UrgencyUrgent   UrgencyLevel = "urgent"
	UrgencyEmergent UrgencyLevel = "emergent"
)

// Emergent phrases describe symptoms that warrant an immediate 911 redirect.
// Any emergent match wins over any urgent match.
var emergentPhrases = []string{
	"chest pain", "severe pain", "crushing pain", "radiating pain",
	"can't breathe", "shortness of breath", "passing out", "unconscious",
	"heart attack", "sweating and pain", "nausea and chest pain",
}

var urgentPhrases = []string{
	"abnormal", "stress test", "palpitations", "rapid heart",
	"irregular heartbeat", "dizzy", "lightheaded", "recent er visit",
}

// ClassifyUrgency grades a message by phrase matching. This is an advisory
// signal for the cardiology agent; it never blocks scheduling.
func ClassifyUrgency(message string) UrgencyLevel {
	text := strings.ToLower(message)
	for _, p := range emergentPhrases {
		if strings.Contains(text, p) {
			return UrgencyEmergent
		}
	}
	for _, p := range urgentPhrases {
		if strings.Contains(text, p) {
			return UrgencyUrgent
		}
	}
	return UrgencyRoutine
}

const emergencyNotice = "If you are experiencing a medical emergency, please call 911 or go to the nearest emergency room right away.\n\n"

// EnsureEmergencyNotice prepends the 911 redirect to a reply for emergent
// messages, unless the reply already points the patient to emergency care.
// The reply itself is never suppressed; the redirect is advisory.
func EnsureEmergencyNotice(reply string, urgency UrgencyLevel) string {
	if urgency != UrgencyEmergent {
		return reply
	}
	lower := strings.ToLower(reply)
	if strings.Contains(lower, "911") || strings.Contains(lower, "emergency") {
		return reply
	}
	return emergencyNotice + reply
}
