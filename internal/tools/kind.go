// Package tools exposes the scheduling engine to the LLM as a closed set of
// typed tools. The dispatcher validates and decodes arguments, executes the
// matching engine operation, and wraps every outcome in a structured result
// envelope — tool failures are data for the model, never transport errors.
package tools

import "fmt"

// Kind identifies one tool in the closed set. Adding a Kind requires adding
// a schema in definitions.go and a dispatch arm in dispatcher.go.
type Kind string

const (
	KindFindNearestProviders      Kind = "find_nearest_providers"
	KindCheckProviderAvailability Kind = "check_provider_availability"
	KindSearchAppointmentSlots    Kind = "search_appointment_slots"
	KindVerifyInsurance           Kind = "verify_insurance"
	KindCheckReferralStatus       Kind = "check_referral_status"
	KindGetPatientInfo            Kind = "get_patient_info"
	KindGetClinicalProtocol       Kind = "get_clinical_protocol"
	KindBookAppointment           Kind = "book_appointment"
	KindGetProviderTeam           Kind = "get_provider_team"
)

// AllKinds lists every tool in declaration order.
var AllKinds = []Kind{
	KindFindNearestProviders,
	KindCheckProviderAvailability,
	KindSearchAppointmentSlots,
	KindVerifyInsurance,
	KindCheckReferralStatus,
	KindGetPatientInfo,
	KindGetClinicalProtocol,
	KindBookAppointment,
	KindGetProviderTeam,
}

// ParseKind validates a tool name coming back from the model.
func ParseKind(name string) (Kind, error) {
	k := Kind(name)
	for _, known := range AllKinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("tools: unknown tool %q", name)
}
