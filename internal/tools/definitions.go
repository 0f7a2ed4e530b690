package tools

import (
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

// Argument payloads for each tool. Field names mirror the JSON schema below;
// the dispatcher decodes the model's raw arguments into these.
type (
	FindNearestProvidersArgs struct {
		PatientID string `json:"patient_id"`
		Specialty string `json:"specialty"`
		City      string `json:"city,omitempty"`
	}
	CheckProviderAvailabilityArgs struct {
		ProviderID string `json:"provider_id"`
		DateFrom   string `json:"date_from,omitempty"`
		DateTo     string `json:"date_to,omitempty"`
	}
	SearchAppointmentSlotsArgs struct {
		Specialty       string `json:"specialty,omitempty"`
		ProviderID      string `json:"provider_id,omitempty"`
		Location        string `json:"location,omitempty"`
		AppointmentType string `json:"appointment_type,omitempty"`
		DateFrom        string `json:"date_from,omitempty"`
		DateTo          string `json:"date_to,omitempty"`
		MaxResults      int    `json:"max_results,omitempty"`
	}
	VerifyInsuranceArgs struct {
		PatientID   string `json:"patient_id"`
		ServiceType string `json:"service_type"`
		Specialty   string `json:"specialty,omitempty"`
	}
	CheckReferralStatusArgs struct {
		PatientID           string `json:"patient_id"`
		Specialty           string `json:"specialty"`
		ReferringProviderID string `json:"referring_provider_id,omitempty"`
	}
	GetPatientInfoArgs struct {
		PatientID string `json:"patient_id"`
	}
	GetClinicalProtocolArgs struct {
		Condition string `json:"condition"`
		Specialty string `json:"specialty,omitempty"`
	}
	BookAppointmentArgs struct {
		SlotID          string `json:"slot_id"`
		PatientID       string `json:"patient_id"`
		ReasonForVisit  string `json:"reason_for_visit"`
		ProviderID      string `json:"provider_id,omitempty"`
		AppointmentType string `json:"appointment_type,omitempty"`
		Notes           string `json:"notes,omitempty"`
	}
	GetProviderTeamArgs struct {
		ProviderID string `json:"provider_id"`
	}
)

// validate methods back the schemas' required lists: the model can and does
// emit calls with required keys missing, and those must fail as malformed
// arguments before reaching the engine.

func (a FindNearestProvidersArgs) validate() error {
	return requireFields(field{"patient_id", a.PatientID}, field{"specialty", a.Specialty})
}

func (a CheckProviderAvailabilityArgs) validate() error {
	return requireFields(field{"provider_id", a.ProviderID})
}

func (a VerifyInsuranceArgs) validate() error {
	return requireFields(field{"patient_id", a.PatientID}, field{"service_type", a.ServiceType})
}

func (a CheckReferralStatusArgs) validate() error {
	return requireFields(field{"patient_id", a.PatientID}, field{"specialty", a.Specialty})
}

func (a GetPatientInfoArgs) validate() error {
	return requireFields(field{"patient_id", a.PatientID})
}

func (a GetClinicalProtocolArgs) validate() error {
	return requireFields(field{"condition", a.Condition})
}

func (a BookAppointmentArgs) validate() error {
	return requireFields(
		field{"slot_id", a.SlotID},
		field{"patient_id", a.PatientID},
		field{"reason_for_visit", a.ReasonForVisit},
	)
}

func (a GetProviderTeamArgs) validate() error {
	return requireFields(field{"provider_id", a.ProviderID})
}

type field struct {
	name  string
	value string
}

func requireFields(fields ...field) error {
	var missing []string
	for _, f := range fields {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("tools: malformed arguments: missing required %s", strings.Join(missing, ", "))
	}
	return nil
}

func str(desc string) jsonschema.Definition {
	return jsonschema.Definition{Type: jsonschema.String, Description: desc}
}

// Definitions returns the OpenAI tool declarations for the full tool set,
// in AllKinds order.
func Definitions() []openai.Tool {
	defs := map[Kind]openai.FunctionDefinition{
		KindFindNearestProviders: {
			Name:        string(KindFindNearestProviders),
			Description: "Find specialty providers closest to the patient's home city, including metro-area options.",
			Parameters: jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"patient_id": str("Patient identifier, e.g. PT001."),
					"specialty":  str("Provider specialty, e.g. Cardiology or Orthopedic Surgery."),
					"city":       str("Override city to search near instead of the patient's home city."),
				},
				Required: []string{"patient_id", "specialty"},
			},
		},
		KindCheckProviderAvailability: {
			Name:        string(KindCheckProviderAvailability),
			Description: "Check one provider's open slot count and next openings, optionally within a date window.",
			Parameters: jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"provider_id": str("Provider identifier, e.g. DR011."),
					"date_from":   str("Window start, YYYY-MM-DD inclusive."),
					"date_to":     str("Window end, YYYY-MM-DD inclusive."),
				},
				Required: []string{"provider_id"},
			},
		},
		KindSearchAppointmentSlots: {
			Name:        string(KindSearchAppointmentSlots),
			Description: "Search open appointment slots across providers, filtered by specialty, provider, location, type, and date range.",
			Parameters: jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"specialty":        str("Provider specialty to search within."),
					"provider_id":      str("Restrict to a single provider."),
					"location":         str("City or facility name; metro-area providers match too."),
					"appointment_type": str("Visit type, e.g. New Patient Consultation or Post-Operative Follow-up."),
					"date_from":        str("Earliest date, YYYY-MM-DD inclusive."),
					"date_to":          str("Latest date, YYYY-MM-DD inclusive."),
					"max_results":      {Type: jsonschema.Integer, Description: "Cap on returned slots, default 20."},
				},
			},
		},
		KindVerifyInsurance: {
			Name:        string(KindVerifyInsurance),
			Description: "Verify the patient's coverage for a specialty: referral requirement, prior authorization, and copay.",
			Parameters: jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"patient_id":   str("Patient identifier."),
					"service_type": str("Planned service, used for coverage and prior-authorization checks."),
					"specialty":    str("Specialty the patient wants to see; omit for primary care."),
				},
				Required: []string{"patient_id", "service_type"},
			},
		},
		KindCheckReferralStatus: {
			Name:        string(KindCheckReferralStatus),
			Description: "Check whether the patient has a valid referral to a specialty on file.",
			Parameters: jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"patient_id":            str("Patient identifier."),
					"specialty":             str("Specialty the referral must cover."),
					"referring_provider_id": str("Expected referring provider, if known."),
				},
				Required: []string{"patient_id", "specialty"},
			},
		},
		KindGetPatientInfo: {
			Name:        string(KindGetPatientInfo),
			Description: "Look up a patient's profile: demographics, insurance, conditions, and recent visits.",
			Parameters: jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"patient_id": str("Patient identifier."),
				},
				Required: []string{"patient_id"},
			},
		},
		KindGetClinicalProtocol: {
			Name:        string(KindGetClinicalProtocol),
			Description: "Look up the clinical scheduling protocol for a condition: recommended follow-up window and priority.",
			Parameters: jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"condition": str("Condition or visit reason, e.g. knee replacement."),
					"specialty": str("Optional specialty to narrow the match."),
				},
				Required: []string{"condition"},
			},
		},
		KindBookAppointment: {
			Name:        string(KindBookAppointment),
			Description: "Book a specific open slot for a patient. Returns a confirmation number on success.",
			Parameters: jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"slot_id":          str("Slot identifier from a prior search."),
					"patient_id":       str("Patient identifier."),
					"reason_for_visit": str("Reason for the visit."),
					"provider_id":      str("Provider for the visit; defaults to the slot's provider."),
					"appointment_type": str("Visit type; defaults to the slot's type."),
					"notes":            str("Extra notes to attach to the booking."),
				},
				Required: []string{"slot_id", "patient_id", "reason_for_visit"},
			},
		},
		KindGetProviderTeam: {
			Name:        string(KindGetProviderTeam),
			Description: "List the PA/NP care team practicing under a physician; team members often have sooner openings.",
			Parameters: jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"provider_id": str("Physician identifier."),
				},
				Required: []string{"provider_id"},
			},
		},
	}

	out := make([]openai.Tool, 0, len(AllKinds))
	for _, k := range AllKinds {
		def := defs[k]
		out = append(out, openai.Tool{Type: openai.ToolTypeFunction, Function: &def})
	}
	return out
}
